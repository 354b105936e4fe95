package tool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

func names(items []models.ToolMeta) string {
	out := make([]string, len(items))
	for i, t := range items {
		out[i] = t.Name
	}
	return strings.Join(out, ",")
}

func TestListOrderAndTags(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"zed.md":            "---\nname: Zed\nfeatured: true\ntags: [editor]\n---\n",
		"awk.md":            "---\nname: awk\ntags: [cli, text]\n---\n",
		"json-formatter.md": "---\ndescription: Pretty JSON\ntags: [Text]\n---\n",
		"broken.md":         "---\nname: [x\n---\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	svc := NewService(dir, content.Options{})

	all, err := svc.List("")
	if err != nil {
		t.Fatal(err)
	}
	if got := names(all); got != "Zed,awk,Json Formatter" {
		t.Fatalf("List = %s", got)
	}
	text, err := svc.List(" TEXT ")
	if err != nil {
		t.Fatal(err)
	}
	if got := names(text); got != "awk,Json Formatter" {
		t.Errorf("List(TEXT) = %s", got)
	}

	awk := svc.GetBySlug("awk")
	if awk == nil {
		t.Fatal("awk not found")
	}
	related, err := svc.Related(awk, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := names(related); got != "Json Formatter" {
		t.Errorf("Related = %s", got)
	}
	if svc.GetBySlug("broken") != nil {
		t.Error("malformed tool resolved")
	}
}

func TestTitleFromSlug(t *testing.T) {
	tests := map[string]string{
		"json-formatter": "Json Formatter",
		"base_64":        "Base 64",
		"jq":             "Jq",
	}
	for slug, want := range tests {
		if got := titleFromSlug(slug); got != want {
			t.Errorf("titleFromSlug(%q) = %q, want %q", slug, got, want)
		}
	}
}
