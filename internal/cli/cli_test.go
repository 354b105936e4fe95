package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/pkg/nativelog"
)

func writeSite(t *testing.T, broken bool) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"content/posts/hello.md":       "---\ntitle: Hello\ndate: 2024-05-01\ntags: [go, web]\n---\nHi.\n",
		"content/daily/2024-05-02.md":  "---\ntitle: Thursday\ndate: 2024-05-02\nmood: creative\n---\n",
		"content/tools/jq.md":          "---\nname: jq\nfeatured: true\n---\n",
		"content/case-studies/shop.md": "---\ntitle: Shop\nyear: 2023\ncategory: web\n---\n",
	}
	if broken {
		files["content/tools/bad.md"] = "---\nname: [x\n---\n"
	}
	for rel, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := "env: production\ncontent_root: " + filepath.Join(dir, "content") +
		"\npaths:\n  logs: " + filepath.Join(dir, "logs") +
		"\n  export: " + filepath.Join(dir, "out") +
		"\nsite:\n  url: https://example.com\n"
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.EnvPort, config.EnvEnv, config.EnvContentRoot, nativelog.EnvLogDir} {
		t.Setenv(key, "")
	}
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	cfg := writeSite(t, false)

	out, err := run(t, "list", "posts", "--config", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "SLUG") || !strings.Contains(out, "hello") || !strings.Contains(out, "go,web") {
		t.Errorf("list posts = %q", out)
	}

	out, err = run(t, "list", "case-studies", "--config", cfg)
	if err != nil || !strings.Contains(out, "2023") {
		t.Errorf("list case-studies = %q, %v", out, err)
	}

	if _, err := run(t, "list", "pages", "--config", cfg); err == nil {
		t.Error("list accepted an unknown kind")
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--config", writeSite(t, false))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("check output = %q", out)
	}

	if _, err := run(t, "check", "--config", writeSite(t, true)); err == nil {
		t.Error("check passed with malformed content")
	}
}

func TestExport(t *testing.T) {
	cfg := writeSite(t, false)
	out := filepath.Join(filepath.Dir(cfg), "public")

	stdout, err := run(t, "export", "--config", cfg, "--out", out)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(stdout, "exported") {
		t.Errorf("export output = %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(out, "api", "v1", "tools", "jq", "index.json")); err != nil {
		t.Error(err)
	}

	if _, err := run(t, "export", "--config", writeSite(t, true), "--strict", "--out", out); err == nil {
		t.Error("strict export passed with malformed content")
	}
}
