package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mx-space/folio/internal/config"
)

func newTestApp(t *testing.T, env string) *App {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "---\ntitle: Hello\ndate: 2024-05-01\ntags: [go]\n---\n# Intro\n\nHi.\n"
	if err := os.WriteFile(filepath.Join(dir, "hello.md"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	site := config.DefaultSiteConfig()
	site.URL = "https://example.com"
	a, err := New(nil, &config.AppConfig{
		Port:           2333,
		Env:            env,
		ContentRoot:    root,
		CacheMaxAge:    60,
		AllowedOrigins: []string{"*.example.com"},
		Site:           site,
	})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func do(a *App, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	a := newTestApp(t, "production")

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{APIPrefix + "/ping", http.StatusOK, "pong"},
		{APIPrefix + "/posts", http.StatusOK, `"slug":"hello"`},
		{APIPrefix + "/posts/hello", http.StatusOK, `"id":"intro"`},
		{APIPrefix + "/posts/missing", http.StatusNotFound, "post not found"},
		{APIPrefix + "/tags/GO", http.StatusOK, `"tag":"go"`},
		{APIPrefix + "/daily", http.StatusOK, `"data":[]`},
		{APIPrefix + "/aggregate", http.StatusOK, `"posts":[`},
		{APIPrefix + "/health", http.StatusOK, `"status":"ok"`},
		{"/feed.xml", http.StatusOK, "<rss"},
		{"/sitemap.xml", http.StatusOK, "https://example.com/blog/hello/"},
		{"/nope", http.StatusNotFound, `"code":404`},
	}
	for _, tt := range tests {
		w := do(a, http.MethodGet, tt.path, nil)
		if w.Code != tt.status {
			t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.status)
			continue
		}
		if !strings.Contains(w.Body.String(), tt.body) {
			t.Errorf("GET %s body missing %q: %s", tt.path, tt.body, w.Body.String())
		}
	}

	if w := do(a, http.MethodPost, APIPrefix+"/posts", nil); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /posts = %d, want 405", w.Code)
	}
}

func TestCacheHeaders(t *testing.T) {
	a := newTestApp(t, "production")

	if got := do(a, http.MethodGet, APIPrefix+"/posts", nil).Header().Get("Cache-Control"); !strings.HasPrefix(got, "public, max-age=60") {
		t.Errorf("list Cache-Control = %q", got)
	}
	if got := do(a, http.MethodGet, APIPrefix+"/posts/missing", nil).Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("404 Cache-Control = %q", got)
	}
	if got := do(a, http.MethodGet, APIPrefix+"/health", nil).Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("health Cache-Control = %q", got)
	}

	huge := do(a, http.MethodGet, APIPrefix+"/posts?page=138350580552821638&size=100", nil)
	if huge.Code != http.StatusOK || !strings.Contains(huge.Body.String(), `"data":[]`) {
		t.Errorf("huge page = %d %s", huge.Code, huge.Body.String())
	}

	dev := newTestApp(t, "development")
	if got := do(dev, http.MethodGet, APIPrefix+"/posts", nil).Header().Get("Cache-Control"); got != "" {
		t.Errorf("dev Cache-Control = %q, want none", got)
	}
}

func TestCORS(t *testing.T) {
	a := newTestApp(t, "production")

	allowed := do(a, http.MethodGet, APIPrefix+"/ping", http.Header{"Origin": {"https://blog.example.com"}})
	if got := allowed.Header().Get("Access-Control-Allow-Origin"); got != "https://blog.example.com" {
		t.Errorf("allowed origin header = %q", got)
	}

	denied := do(a, http.MethodGet, APIPrefix+"/ping", http.Header{"Origin": {"https://evil.test"}})
	if denied.Code != http.StatusForbidden {
		t.Errorf("denied origin status = %d, want 403", denied.Code)
	}
}

func TestAppInfo(t *testing.T) {
	a := newTestApp(t, "production")
	var info map[string]string
	if err := json.Unmarshal(do(a, http.MethodGet, APIPrefix, nil).Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info["url"] != "https://example.com" || info["version"] != Version {
		t.Errorf("info = %v", info)
	}
}
