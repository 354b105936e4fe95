package export

import (
	"context"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/content/casestudy"
	"github.com/mx-space/folio/internal/modules/content/catalog"
	"github.com/mx-space/folio/internal/modules/content/daily"
	"github.com/mx-space/folio/internal/pkg/pagination"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Route is one request the export replays and the file it writes.
type Route struct {
	// Path is the request path, with query string for list pages.
	Path string
	// File is relative to the export directory.
	File string
}

// staticRoutes need no content to enumerate. Paths are relative to the API
// prefix.
var staticRoutes = []string{
	"",
	"/aggregate",
	"/config/site",
	"/posts/recent",
	"/posts/featured",
	"/posts/archive",
	"/posts/tags",
	"/tags",
	"/daily/recent",
	"/daily/archive",
	"/daily/tags",
	"/daily/moods",
	"/tools",
	"/tools/featured",
	"/tools/tags",
	"/case-studies",
	"/case-studies/featured",
	"/case-studies/technologies",
	"/case-studies/years",
	"/case-studies/categories",
}

var xmlRoutes = []string{"/feed.xml", "/atom.xml", "/sitemap.xml"}

func jsonRoute(prefix, p string) Route {
	full := prefix + p
	return Route{Path: full, File: filePath(full, "index.json")}
}

// filePath joins a route into a path relative to the export directory.
func filePath(elem ...string) string {
	return strings.TrimPrefix(path.Join(elem...), "/")
}

func pageRoutes(prefix, p string, total int) []Route {
	routes := []Route{jsonRoute(prefix, p)}
	pages := (total + pagination.DefaultSize - 1) / pagination.DefaultSize
	for n := 2; n <= pages; n++ {
		full := prefix + p
		routes = append(routes, Route{
			Path: full + "?page=" + strconv.Itoa(n),
			File: filePath(full, "page", strconv.Itoa(n), "index.json"),
		})
	}
	return routes
}

// segmentRoute is the route of one dynamic path segment. The request path
// is escaped; the file keeps the raw value a static host decodes it back to,
// unless the value would leave its directory.
func segmentRoute(prefix, p, value string) Route {
	full := prefix + p + "/"
	file := value
	if strings.ContainsAny(value, `/\`) || value == "." || value == ".." {
		file = url.PathEscape(value)
	}
	return Route{
		Path: full + url.PathEscape(value),
		File: filePath(full, file, "index.json"),
	}
}

func detailRoutes[M models.Item](prefix, p string, items []M) []Route {
	routes := make([]Route, 0, len(items))
	for _, item := range items {
		routes = append(routes, segmentRoute(prefix, p, item.ItemSlug()))
	}
	return routes
}

// Enumerate lists every public route. The four collections are read
// concurrently; each listing is a plain sequential directory scan. A slug
// that collides with a fixed route, such as posts/recent.md, is dropped with
// a warning because the router never reaches it.
func Enumerate(ctx context.Context, cat *catalog.Catalog, prefix string, log *zap.Logger) ([]Route, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var postRoutes, dailyRoutes, toolRoutes, studyRoutes []Route

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := cat.Posts.List("")
		if err != nil {
			return err
		}
		tags, err := cat.Posts.Tags()
		if err != nil {
			return err
		}
		postRoutes = append(pageRoutes(prefix, "/posts", len(posts)), detailRoutes(prefix, "/posts", posts)...)
		seen := make(map[string]struct{}, len(tags))
		for _, t := range tags {
			// Tag pages match case-insensitively, so one file per spelling
			// family is enough.
			key := strings.ToLower(t.Value)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			postRoutes = append(postRoutes, segmentRoute(prefix, "/tags", key))
		}
		return nil
	})
	g.Go(func() error {
		entries, err := cat.Daily.List(daily.ListQuery{})
		if err != nil {
			return err
		}
		dailyRoutes = append(pageRoutes(prefix, "/daily", len(entries)), detailRoutes(prefix, "/daily", entries)...)
		return nil
	})
	g.Go(func() error {
		tools, err := cat.Tools.List("")
		if err != nil {
			return err
		}
		toolRoutes = detailRoutes(prefix, "/tools", tools)
		return nil
	})
	g.Go(func() error {
		studies, err := cat.CaseStudies.List(casestudy.ListQuery{})
		if err != nil {
			return err
		}
		studyRoutes = detailRoutes(prefix, "/case-studies", studies)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(staticRoutes)+len(xmlRoutes)+len(postRoutes)+len(dailyRoutes)+len(toolRoutes)+len(studyRoutes))
	for _, p := range staticRoutes {
		routes = append(routes, jsonRoute(prefix, p))
	}
	for _, p := range xmlRoutes {
		routes = append(routes, Route{Path: p, File: p[1:]})
	}
	routes = append(routes, postRoutes...)
	routes = append(routes, dailyRoutes...)
	routes = append(routes, toolRoutes...)
	routes = append(routes, studyRoutes...)
	routes = dedupeFiles(routes, log)

	sort.SliceStable(routes, func(i, j int) bool { return routes[i].File < routes[j].File })
	return routes, nil
}

// dedupeFiles keeps the first route for each file. Fixed routes come first,
// so they win over content slugs.
func dedupeFiles(routes []Route, log *zap.Logger) []Route {
	seen := make(map[string]string, len(routes))
	out := routes[:0]
	for _, r := range routes {
		if first, ok := seen[r.File]; ok {
			log.Warn("route shadowed, skipping",
				zap.String("path", r.Path), zap.String("served_by", first), zap.String("file", r.File))
			continue
		}
		seen[r.File] = r.Path
		out = append(out, r)
	}
	return out
}
