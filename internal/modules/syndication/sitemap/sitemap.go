package sitemap

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/content/casestudy"
	"github.com/mx-space/folio/internal/modules/content/catalog"
	"github.com/mx-space/folio/internal/modules/content/daily"
	"github.com/mx-space/folio/internal/pkg/response"
)

const ContentType = "application/xml; charset=utf-8"

func RegisterRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, site config.SiteConfig) {
	rg.GET("/sitemap.xml", func(c *gin.Context) {
		xml, err := Build(cat, site)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.XML(c, ContentType, xml)
	})
}

type sitemapURL struct {
	Loc        string
	LastMod    models.Date
	ChangeFreq string
	Priority   float64
}

// Build lists every public page of the site.
func Build(cat *catalog.Catalog, site config.SiteConfig) (string, error) {
	page := func(path string) string { return site.AbsoluteURL(path) }

	urls := []sitemapURL{
		{Loc: page("/"), ChangeFreq: "daily", Priority: 1.0},
	}
	for _, section := range []string{"/blog/", "/daily/", "/tools/", "/case-studies/", "/tags/", "/profile"} {
		urls = append(urls, sitemapURL{Loc: page(section), ChangeFreq: "weekly", Priority: 0.7})
	}

	posts, err := cat.Posts.List("")
	if err != nil {
		return "", err
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc: page("/blog/" + p.Slug + "/"), LastMod: p.Date,
			ChangeFreq: "monthly", Priority: 0.8,
		})
	}

	tags, err := cat.Posts.Tags()
	if err != nil {
		return "", err
	}
	for _, t := range tags {
		urls = append(urls, sitemapURL{
			Loc:        page("/tags/" + url.PathEscape(strings.ToLower(t.Value)) + "/"),
			ChangeFreq: "weekly", Priority: 0.4,
		})
	}

	entries, err := cat.Daily.List(daily.ListQuery{})
	if err != nil {
		return "", err
	}
	for _, d := range entries {
		urls = append(urls, sitemapURL{
			Loc: page("/daily/" + d.Slug + "/"), LastMod: d.Date,
			ChangeFreq: "monthly", Priority: 0.6,
		})
	}

	tools, err := cat.Tools.List("")
	if err != nil {
		return "", err
	}
	for _, t := range tools {
		urls = append(urls, sitemapURL{
			Loc:        page("/tools/" + t.Slug + "/"),
			ChangeFreq: "monthly", Priority: 0.6,
		})
	}

	studies, err := cat.CaseStudies.List(casestudy.ListQuery{})
	if err != nil {
		return "", err
	}
	for _, cs := range studies {
		urls = append(urls, sitemapURL{
			Loc:        page("/case-studies/" + cs.Slug + "/"),
			ChangeFreq: "yearly", Priority: 0.6,
		})
	}

	return renderXML(dedupe(urls)), nil
}

// dedupe drops repeated locations, which differently cased tags can produce.
func dedupe(urls []sitemapURL) []sitemapURL {
	seen := make(map[string]struct{}, len(urls))
	out := urls[:0]
	for _, u := range urls {
		if _, ok := seen[u.Loc]; ok {
			continue
		}
		seen[u.Loc] = struct{}{}
		out = append(out, u)
	}
	return out
}

func renderXML(urls []sitemapURL) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`)
	for _, u := range urls {
		sb.WriteString("  <url>\n")
		fmt.Fprintf(&sb, "    <loc>%s</loc>\n", escapeXML(u.Loc))
		if t, err := u.LastMod.Time(); err == nil {
			fmt.Fprintf(&sb, "    <lastmod>%s</lastmod>\n", t.Format(time.DateOnly))
		}
		fmt.Fprintf(&sb, "    <changefreq>%s</changefreq>\n", u.ChangeFreq)
		fmt.Fprintf(&sb, "    <priority>%.1f</priority>\n", u.Priority)
		sb.WriteString("  </url>\n")
	}
	sb.WriteString(`</urlset>`)
	return sb.String()
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
