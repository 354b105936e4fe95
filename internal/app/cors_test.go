package app

import "testing"

func TestOriginMatcher(t *testing.T) {
	allow := originMatcher([]string{"example.com", " *.Example.org ", "localhost:*", ""})
	tests := []struct {
		origin string
		want   bool
	}{
		{"https://example.com", true},
		{"https://EXAMPLE.com", true},
		{"https://blog.example.org", true},
		{"https://example.org", false},
		{"http://localhost:3000", true},
		{"http://127.0.0.1:3000", false},
		{"https://evil.com", false},
	}
	for _, tt := range tests {
		if got := allow(tt.origin); got != tt.want {
			t.Errorf("allow(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}
