package app

import (
	"net/url"
	"strings"
)

// originMatcher accepts an Origin header when its host matches one of the
// configured patterns: "example.com", "*.example.com" or "localhost:*".
func originMatcher(patterns []string) func(origin string) bool {
	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			normalized = append(normalized, p)
		}
	}
	return func(origin string) bool {
		host := originHost(origin)
		for _, p := range normalized {
			if hostMatches(p, host) {
				return true
			}
		}
		return false
	}
}

func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return strings.ToLower(origin)
	}
	return strings.ToLower(u.Host)
}

func hostMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		// "*.example.com" covers subdomains only, never the apex.
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, strings.TrimSuffix(pattern, "*"))
	}
	return false
}
