package ratelimit

import (
	"strings"
)

// unlimited is returned for endpoints that are never rate limited.
var unlimited = EndpointConfig{Path: "/health", Method: "GET"}

// MatchEndpoint returns the configuration governing a request, or nil when
// none matches. Exact paths win over "*" patterns, which win over prefixes.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == unlimited.Path && method == unlimited.Method {
		u := unlimited
		return &u
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method == method && strings.Contains(configs[i].Path, "*") && matchSegments(configs[i].Path, path) {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}

// matchSegments reports whether path has the same segments as pattern, with
// "*" matching any one non-empty segment.
func matchSegments(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] == "*" {
			if got[i] == "" {
				return false
			}
			continue
		}
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
