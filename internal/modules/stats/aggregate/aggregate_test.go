package aggregate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/modules/content/catalog"
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

func newRouter(t *testing.T, comments config.CommentsConfig) *gin.Engine {
	t.Helper()
	root := t.TempDir()
	for _, d := range []string{"2024-01-01", "2024-02-01", "2024-03-01", "2024-04-01"} {
		seed(t, root, "posts", d+".md", "---\ntitle: P "+d+"\ndate: "+d+"\n---\n")
		seed(t, root, "daily", d+".md", "---\ntitle: D "+d+"\ndate: "+d+"\n---\n")
	}
	seed(t, root, "tools", "jq.md", "---\nname: jq\nfeatured: true\n---\n")
	seed(t, root, "tools", "sed.md", "---\nname: sed\n---\n")
	seed(t, root, "case-studies", "shop.md", "---\ntitle: Shop\nyear: 2023\nfeatured: true\n---\n")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), catalog.New(root, content.Options{}), config.DefaultSiteConfig(), comments)
	return r
}

func get(t *testing.T, r http.Handler, path string, v any) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s = %d", path, w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
}

func TestAggregate(t *testing.T) {
	var got struct {
		Posts []struct {
			Slug string `json:"slug"`
		} `json:"posts"`
		Daily       []json.RawMessage `json:"daily"`
		Tools       []json.RawMessage `json:"tools"`
		CaseStudies []json.RawMessage `json:"case_studies"`
		Navigation  []json.RawMessage `json:"navigation"`
		Count       contentCount      `json:"count"`
	}
	get(t, newRouter(t, config.CommentsConfig{}), "/aggregate", &got)

	if len(got.Posts) != 3 || got.Posts[0].Slug != "2024-04-01" {
		t.Errorf("posts = %+v", got.Posts)
	}
	if len(got.Daily) != 3 {
		t.Errorf("daily = %d entries, want 3", len(got.Daily))
	}
	if len(got.Tools) != 1 || len(got.CaseStudies) != 1 {
		t.Errorf("featured tools = %d, case studies = %d", len(got.Tools), len(got.CaseStudies))
	}
	if len(got.Navigation) == 0 {
		t.Error("navigation empty")
	}
	want := contentCount{Posts: 4, Daily: 4, Tools: 2, CaseStudies: 1}
	if got.Count != want {
		t.Errorf("count = %+v, want %+v", got.Count, want)
	}
}

func TestSiteConfigComments(t *testing.T) {
	var got map[string]json.RawMessage
	get(t, newRouter(t, config.CommentsConfig{Repo: "YOUR_REPO"}), "/config/site", &got)
	if _, ok := got["comments"]; ok {
		t.Error("placeholder comments config exposed")
	}
	if _, ok := got["site"]; !ok {
		t.Error("site missing")
	}

	enabled := config.CommentsConfig{Repo: "me/site", RepoID: "R_1", Category: "General", CategoryID: "C_1"}
	var withComments struct {
		Comments *struct {
			Repo  string `json:"repo"`
			Theme string `json:"theme"`
		} `json:"comments"`
	}
	get(t, newRouter(t, enabled), "/config/site?theme=dark", &withComments)
	if withComments.Comments == nil || withComments.Comments.Repo != "me/site" || withComments.Comments.Theme != "dark" {
		t.Errorf("comments = %+v", withComments.Comments)
	}
}
