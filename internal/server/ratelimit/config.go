package ratelimit

import (
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	// Path is an exact path, a prefix ending in "/", or a pattern whose "*"
	// segments match any single path segment.
	Path   string
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig reads rate limiting configuration from the environment through
// getenv (usually os.Getenv). Variables are prefixed DOCEXPORT_RATE_LIMIT_.
func LoadConfig(getenv func(string) string) *Config {
	env := envReader(getenv)
	if !env.boolean("DOCEXPORT_RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.integer("DOCEXPORT_RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   env.duration("DOCEXPORT_RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: env.duration("DOCEXPORT_RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(getenv("DOCEXPORT_RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(getenv("DOCEXPORT_RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: PDF exports start a browser per request
		{Path: "/exports/*/pdf", Method: "POST", Limit: 30, Window: time.Hour, Burst: 3},

		// Tier 2: in-process renderers
		{Path: "/exports/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/previews/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Tier 3: everything else uses the default limit
		// Tier 4: health check is unlimited, see MatchEndpoint
	}
}

type envReader func(string) string

func (e envReader) integer(key string, def int) int {
	if v := e(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (e envReader) boolean(key string, def bool) bool {
	if v := e(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (e envReader) duration(key string, def time.Duration) time.Duration {
	if v := e(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
