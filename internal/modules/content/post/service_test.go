package post

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

func writePosts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"hooks.md":   "---\ntitle: Hooks\ndate: 2024-03-15\ntags: [React, css]\n---\n",
		"state.md":   "---\ntitle: State\ndate: 2024-02-10\ntags: [React]\n---\n",
		"vite.md":    "---\ntitle: Vite\ndate: 2024-01-01\ntags: [react, css, tooling]\n---\n",
		"vue.md":     "---\ntitle: Vue\ndate: 2023-12-01\ntags: [vue]\n---\n",
		"undated.md": "---\ntitle: Undated\ndate: someday\n---\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func slugs(items []models.PostMeta) string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Slug
	}
	return strings.Join(out, ",")
}

func TestListSkipsBadDatesUnlessStrict(t *testing.T) {
	dir := writePosts(t)
	posts, err := NewService(dir, content.Options{}).List("")
	if err != nil {
		t.Fatal(err)
	}
	if got := slugs(posts); got != "hooks,state,vite,vue" {
		t.Fatalf("List = %s", got)
	}
	if _, err := NewService(dir, content.Options{Strict: true}).List(""); !errors.Is(err, content.ErrMalformed) {
		t.Fatalf("strict List err = %v", err)
	}
}

func TestListTrimsTag(t *testing.T) {
	svc := NewService(writePosts(t), content.Options{})
	tests := map[string]string{
		"react ": "hooks,state,vite",
		" css":   "hooks,vite",
		" ":      "hooks,state,vite,vue",
	}
	for tag, want := range tests {
		posts, err := svc.List(tag)
		if err != nil {
			t.Fatal(err)
		}
		if got := slugs(posts); got != want {
			t.Errorf("List(%q) = %s, want %s", tag, got, want)
		}
	}
}

func TestByTag(t *testing.T) {
	svc := NewService(writePosts(t), content.Options{})
	canonical, posts, ok, err := svc.ByTag("REACT")
	if err != nil || !ok {
		t.Fatalf("ByTag ok=%v err=%v", ok, err)
	}
	if canonical != "React" {
		t.Errorf("canonical = %q, want the most used spelling", canonical)
	}
	if got := slugs(posts); got != "hooks,state,vite" {
		t.Errorf("posts = %s", got)
	}
	if _, _, ok, _ := svc.ByTag("svelte"); ok {
		t.Error("unknown tag reported as found")
	}
}

func TestRelated(t *testing.T) {
	svc := NewService(writePosts(t), content.Options{})
	hooks := svc.GetBySlug("hooks")
	if hooks == nil {
		t.Fatal("hooks not found")
	}
	related, err := svc.Related(hooks, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := slugs(related); got != "vite,state" {
		t.Errorf("Related = %s", got)
	}
	if svc.GetBySlug("undated") != nil {
		t.Error("post with a bad date resolved")
	}
}
