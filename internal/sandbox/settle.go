package sandbox

import (
	"context"
	"time"
)

// SettleOptions controls how long Settle waits for layout to stop changing.
type SettleOptions struct {
	// Interval between height probes.
	Interval time.Duration
	// StableSamples is how many consecutive equal heights count as settled.
	StableSamples int
	// Timeout bounds the polling phase.
	Timeout time.Duration
	// Fallback is the fixed delay used when the surface cannot be probed.
	Fallback time.Duration
}

// DefaultSettleOptions returns the settle policy used by exports.
func DefaultSettleOptions() SettleOptions {
	return SettleOptions{
		Interval:      50 * time.Millisecond,
		StableSamples: 3,
		Timeout:       2 * time.Second,
		Fallback:      500 * time.Millisecond,
	}
}

func (o SettleOptions) withDefaults() SettleOptions {
	d := DefaultSettleOptions()
	if o.Interval <= 0 {
		o.Interval = d.Interval
	}
	if o.StableSamples <= 0 {
		o.StableSamples = d.StableSamples
	}
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.Fallback < 0 {
		o.Fallback = 0
	}
	return o
}

// Outcome says how Settle finished.
type Outcome string

const (
	OutcomeStable   Outcome = "stable"
	OutcomeTimedOut Outcome = "timed_out"
	OutcomeFallback Outcome = "fallback"
)

// SettleResult describes a finished settle.
type SettleResult struct {
	Outcome Outcome
	Height  int
	Samples int
}

// Settle polls the surface's content height until it reads the same value
// StableSamples times in a row. When polling exceeds Timeout the last layout
// is accepted. When the height cannot be probed it waits Fallback instead.
// Only cancellation of ctx is an error.
func Settle(ctx context.Context, s Surface, opts SettleOptions) (SettleResult, error) {
	opts = opts.withDefaults()

	deadline := time.NewTimer(opts.Timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	var (
		last    = -1
		streak  int
		samples int
	)
	for {
		h, err := s.ContentHeight(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return SettleResult{}, ctx.Err()
			}
			return waitFallback(ctx, opts.Fallback, samples)
		}
		samples++
		if h == last {
			streak++
		} else {
			last, streak = h, 1
		}
		if streak >= opts.StableSamples {
			return SettleResult{Outcome: OutcomeStable, Height: h, Samples: samples}, nil
		}

		select {
		case <-ctx.Done():
			return SettleResult{}, ctx.Err()
		case <-deadline.C:
			return SettleResult{Outcome: OutcomeTimedOut, Height: last, Samples: samples}, nil
		case <-ticker.C:
		}
	}
}

func waitFallback(ctx context.Context, d time.Duration, samples int) (SettleResult, error) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return SettleResult{}, ctx.Err()
	case <-t.C:
		return SettleResult{Outcome: OutcomeFallback, Samples: samples}, nil
	}
}
