package daily

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

func newService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"2024-01-01.md": "---\ntitle: New year\ndate: 2024-01-01\nmood: creative\ntags: [life]\n---\n",
		"2024-01-02.md": "---\ntitle: Back to work\ndate: 2024-01-02\ntags: [go, life]\n---\n" + strings.Repeat("é", 200),
		"2024-01-03.md": "---\ntitle: Debugging\ndate: 2024-01-03\nmood: Challenging\nexcerpt: Long night.\ntags: [go]\n---\nbody\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return NewService(dir, content.Options{})
}

func slugs(items []models.DailyMeta) string {
	out := make([]string, len(items))
	for i, d := range items {
		out[i] = d.Slug
	}
	return strings.Join(out, ",")
}

func TestDecodeDefaults(t *testing.T) {
	svc := newService(t)
	d := svc.GetBySlug("2024-01-02")
	if d == nil {
		t.Fatal("entry not found")
	}
	if d.Mood != models.MoodProductive {
		t.Errorf("mood = %q, want default", d.Mood)
	}
	if want := strings.Repeat("é", 150) + "..."; d.Excerpt != want {
		t.Errorf("excerpt has %d runes", len([]rune(d.Excerpt)))
	}
	if d := svc.GetBySlug("2024-01-03"); d == nil || d.Excerpt != "Long night." || d.Mood != "Challenging" {
		t.Errorf("explicit fields = %+v", d)
	}
}

func TestListFilters(t *testing.T) {
	svc := newService(t)
	tests := []struct {
		q    ListQuery
		want string
	}{
		{ListQuery{}, "2024-01-03,2024-01-02,2024-01-01"},
		{ListQuery{Tag: "GO"}, "2024-01-03,2024-01-02"},
		{ListQuery{Tag: " go "}, "2024-01-03,2024-01-02"},
		{ListQuery{Tag: " ", Mood: "creative "}, "2024-01-01"},
		{ListQuery{Mood: "challenging"}, "2024-01-03"},
		{ListQuery{Tag: "life", Mood: "creative"}, "2024-01-01"},
		{ListQuery{Tag: "life", Mood: "learning"}, ""},
	}
	for _, tt := range tests {
		got, err := svc.List(tt.q)
		if err != nil {
			t.Fatal(err)
		}
		if slugs(got) != tt.want {
			t.Errorf("List(%+v) = %s, want %s", tt.q, slugs(got), tt.want)
		}
	}
}

func TestAdjacent(t *testing.T) {
	adj, err := newService(t).Adjacent("2024-01-02")
	if err != nil {
		t.Fatal(err)
	}
	if adj.Previous == nil || adj.Previous.Slug != "2024-01-03" || adj.Next == nil || adj.Next.Slug != "2024-01-01" {
		t.Fatalf("Adjacent = %+v", adj)
	}
}
