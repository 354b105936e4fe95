package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvPort, EnvEnv, EnvContentRoot, EnvS3AccessKeyID, EnvS3SecretKey} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultsWhenDefaultPathMissing(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != defaultPort || cfg.ContentRoot != defaultContentRoot || !cfg.IsDev() {
		t.Fatalf("defaults = %+v", cfg)
	}
	if len(cfg.Site.Navigation) != 5 || cfg.Site.Navigation[3].Href != "/case-studies" {
		t.Fatalf("navigation = %+v", cfg.Site.Navigation)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("Load succeeded on a missing explicit path")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
port: 8080
env: production
content_root: ./site
allowed_origins: ["*.example.com", " "]
site:
  name: Example
  url: https://example.com/blog/
comments:
  repo: me/blog
  repo_id: R_1
  category: Comment
  category_id: DIC_1
publish:
  s3:
    bucket: site
    prefix: /blog/
`)
	t.Setenv(EnvContentRoot, "/srv/content")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 || cfg.IsDev() {
		t.Errorf("port/env = %d/%s", cfg.Port, cfg.Env)
	}
	if cfg.ContentRoot != "/srv/content" {
		t.Errorf("content root = %q, env should win", cfg.ContentRoot)
	}
	if len(cfg.AllowedOrigins) != 1 {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
	if got := cfg.Site.AbsoluteURL("/posts/hello/"); got != "https://example.com/blog/posts/hello/" {
		t.Errorf("AbsoluteURL = %q", got)
	}
	if !cfg.Comments.Enabled() {
		t.Errorf("comments missing %v", cfg.Comments.Missing())
	}
	if cfg.Publish.S3.Prefix != "blog" || cfg.Publish.S3.Region != defaultS3Region {
		t.Errorf("s3 = %+v", cfg.Publish.S3)
	}
}

func TestLoadRejectsUnknownKeysAndBadPort(t *testing.T) {
	clearEnv(t)
	if _, err := Load(writeConfig(t, "prot: 80\n")); err == nil {
		t.Error("unknown key accepted")
	}
	if _, err := Load(writeConfig(t, "port: 70000\n")); err == nil || !strings.Contains(err.Error(), "invalid port") {
		t.Errorf("bad port err = %v", err)
	}
	t.Setenv(EnvPort, "abc")
	if _, err := Load(writeConfig(t, "")); err == nil {
		t.Error("non-numeric FOLIO_PORT accepted")
	}
}

func TestCommentsPlaceholders(t *testing.T) {
	c := CommentsConfig{Repo: "me/blog", RepoID: "YOUR_REPO_ID", Category: "General"}
	missing := c.Missing()
	if strings.Join(missing, ",") != "repo_id,category_id" {
		t.Fatalf("Missing = %v", missing)
	}
	if c.Enabled() {
		t.Fatal("Enabled with placeholders")
	}
}

func TestRuntimePathsFollowConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "paths:\n  logs: var/log\n  export: /srv/site\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(filepath.Dir(path), "var", "log"); cfg.LogDir() != want {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir(), want)
	}
	if cfg.ExportDir() != "/srv/site" {
		t.Errorf("ExportDir = %q", cfg.ExportDir())
	}
	cfg.Paths.Export = ""
	if want := filepath.Join(filepath.Dir(path), "out"); cfg.ExportDir() != want {
		t.Errorf("default ExportDir = %q, want %q", cfg.ExportDir(), want)
	}
}
