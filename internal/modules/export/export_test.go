package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/mx-space/folio/internal/app"
	"github.com/mx-space/folio/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func seed(t *testing.T, root, kind, name, body string) {
	t.Helper()
	dir := filepath.Join(root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func seedSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for i := 1; i <= 12; i++ {
		day := strconv.Itoa(10 + i)
		seed(t, root, "posts", "post-"+day+".md", "---\ntitle: Post "+day+"\ndate: 2024-01-"+day+"\ntags: [Go]\n---\nbody\n")
	}
	seed(t, root, "daily", "2024-02-01.md", "---\ntitle: Day\ndate: 2024-02-01\nmood: learning\n---\n")
	seed(t, root, "tools", "jq.md", "---\nname: jq\n---\n")
	seed(t, root, "case-studies", "shop.md", "---\ntitle: Shop\nyear: 2023\n---\n")
	return root
}

func newExporter(t *testing.T, root string, strict bool) *Exporter {
	t.Helper()
	a, err := app.New(nil, &config.AppConfig{
		Port:        2333,
		Env:         "production",
		ContentRoot: root,
		Strict:      strict,
		CacheMaxAge: 60,
		Site:        config.DefaultSiteConfig(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(a.Router(), a.Catalog(), app.APIPrefix, nil)
}

func TestExport(t *testing.T) {
	root := seedSite(t)
	out := filepath.Join(t.TempDir(), "out")
	if err := os.MkdirAll(out, 0o755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(out, "stale.txt")
	if err := os.WriteFile(stale, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := newExporter(t, root, false).Export(context.Background(), out)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file survived the export")
	}

	for _, want := range []string{
		"api/v1/index.json",
		"api/v1/aggregate/index.json",
		"api/v1/posts/index.json",
		"api/v1/posts/page/2/index.json",
		"api/v1/posts/post-11/index.json",
		"api/v1/tags/go/index.json",
		"api/v1/daily/2024-02-01/index.json",
		"api/v1/tools/jq/index.json",
		"api/v1/case-studies/shop/index.json",
		"feed.xml",
		"atom.xml",
		"sitemap.xml",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(want))); err != nil {
			t.Errorf("missing %s: %v", want, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "api/v1/posts/page/3")); !os.IsNotExist(err) {
		t.Error("unexpected third posts page")
	}
	if res.Bytes == 0 || len(res.Files) == 0 {
		t.Errorf("result = %+v", res)
	}

	body, err := os.ReadFile(filepath.Join(out, "api/v1/tags/go/index.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `"tag":"Go"`) {
		t.Errorf("tag page = %s", body)
	}
}

func TestExportStrict(t *testing.T) {
	root := seedSite(t)
	seed(t, root, "tools", "broken.md", "---\nname: [x\n---\n")
	out := filepath.Join(t.TempDir(), "out")

	if _, err := newExporter(t, root, false).Export(context.Background(), out); err != nil {
		t.Fatalf("lenient Export: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "api/v1/tools/broken")); !os.IsNotExist(err) {
		t.Error("malformed tool exported")
	}

	if _, err := newExporter(t, root, true).Export(context.Background(), out); err == nil {
		t.Fatal("strict Export succeeded with malformed content")
	}
}

func TestCleanDirRefusesContentRoot(t *testing.T) {
	root := t.TempDir()
	err := cleanDir(root, []string{filepath.Join(root, "posts")})
	if !errors.Is(err, ErrUnsafeDir) {
		t.Fatalf("err = %v, want ErrUnsafeDir", err)
	}
	if err := cleanDir("", nil); !errors.Is(err, ErrUnsafeDir) {
		t.Fatalf("empty dir err = %v", err)
	}
}

func TestSegmentRoute(t *testing.T) {
	r := segmentRoute("/api/v1", "/tags", "c#")
	if r.Path != "/api/v1/tags/c%23" || r.File != "api/v1/tags/c#/index.json" {
		t.Errorf("route = %+v", r)
	}
	r = segmentRoute("/api/v1", "/tags", "ci/cd")
	if r.File != "api/v1/tags/ci%2Fcd/index.json" {
		t.Errorf("route = %+v", r)
	}
}

func TestEnumerateDropsShadowedSlugs(t *testing.T) {
	root := seedSite(t)
	seed(t, root, "posts", "recent.md", "---\ntitle: Recent\ndate: 2024-03-01\n---\n")
	seed(t, root, "tools", "featured.md", "---\nname: Featured\n---\n")
	e := newExporter(t, root, false)

	core, logs := observer.New(zap.WarnLevel)
	routes, err := Enumerate(context.Background(), e.catalog, app.APIPrefix, zap.New(core))
	if err != nil {
		t.Fatal(err)
	}
	files := make(map[string]int, len(routes))
	for _, r := range routes {
		files[r.File]++
	}
	for _, f := range []string{"api/v1/posts/recent/index.json", "api/v1/tools/featured/index.json"} {
		if files[f] != 1 {
			t.Errorf("%s enumerated %d times", f, files[f])
		}
	}
	if n := logs.FilterMessage("route shadowed, skipping").Len(); n != 2 {
		t.Errorf("got %d shadow warnings, want 2", n)
	}

	out := filepath.Join(t.TempDir(), "out")
	if _, err := e.Export(context.Background(), out); err != nil {
		t.Fatal(err)
	}
	body, err := os.ReadFile(filepath.Join(out, "api/v1/posts/recent/index.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `"data":[`) {
		t.Errorf("posts/recent is not the recent list: %s", body)
	}
}
