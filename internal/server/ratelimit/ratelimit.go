// Package ratelimit provides rate limiting functionality using token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows capacity requests at once and refills at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64, now time.Time) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
	}
}

func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill).Seconds()
	if elapsed > 0 {
		tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed*tb.refillRate)
	}
	tb.lastRefill = now
}

// take consumes one token if available and reports the remaining tokens and
// when the bucket will be full again.
func (tb *tokenBucket) take(now time.Time) (allowed bool, remaining int, resetAt time.Time) {
	tb.refill(now)
	if tb.tokens >= 1 {
		tb.tokens--
		allowed = true
	}

	remaining = int(tb.tokens)
	resetAt = now
	if missing := float64(tb.capacity) - tb.tokens; missing > 0 && tb.refillRate > 0 {
		resetAt = now.Add(time.Duration(missing / tb.refillRate * float64(time.Second)))
	}
	return allowed, remaining, resetAt
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

type bucketEntry struct {
	bucket     *tokenBucket
	lastAccess time.Time
}

// Limiter manages one token bucket per client and endpoint.
type Limiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucketEntry
	config      *Config
	now         func() time.Time
	cleanupStop chan struct{}
	stopOnce    sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    600,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			EndpointConfigs: DefaultEndpointConfigs(),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucketEntry),
		config:  config,
		now:     time.Now,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop(config.CleanupInterval)
	}
	return l
}

// Allow checks if a request from clientID to the endpoint is allowed.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Path:   endpoint,
			Method: method,
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if ec.Limit <= 0 || ec.Window <= 0 {
		return true, Info{Allowed: true}
	}

	// Patterns share one bucket, so /exports/resume/pdf and /exports/sop/pdf
	// draw from the same allowance.
	key := clientID + ":" + ec.Method + ":" + ec.Path
	now := l.now()

	l.mu.Lock()
	entry, ok := l.buckets[key]
	if !ok {
		capacity := ec.Burst
		if capacity <= 0 {
			capacity = ec.Limit
		}
		entry = &bucketEntry{bucket: newTokenBucket(capacity, float64(ec.Limit)/ec.Window.Seconds(), now)}
		l.buckets[key] = entry
	}
	entry.lastAccess = now
	allowed, remaining, resetAt := entry.bucket.take(now)
	l.mu.Unlock()

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: resetAt,
	}
	if !allowed {
		// The next token arrives after 1/refillRate seconds at most.
		info.RetryAfter = max(time.Duration(float64(ec.Window)/float64(ec.Limit)), 0)
	}
	return allowed, info
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanupBuckets(time.Hour)
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets removes buckets idle for longer than maxIdle.
func (l *Limiter) cleanupBuckets(maxIdle time.Duration) {
	cutoff := l.now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, entry := range l.buckets {
		if entry.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// bucketCount reports how many buckets are tracked.
func (l *Limiter) bucketCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
