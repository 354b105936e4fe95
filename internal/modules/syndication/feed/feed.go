package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/modules/content/post"
	"github.com/mx-space/folio/internal/modules/processing/markdown"
	"github.com/mx-space/folio/internal/pkg/response"
)

// Limit is how many posts a feed carries.
const Limit = 20

const (
	ContentTypeRSS  = "application/rss+xml; charset=utf-8"
	ContentTypeAtom = "application/atom+xml; charset=utf-8"
)

// RegisterRoutes mounts RSS and Atom feed endpoints.
func RegisterRoutes(rg *gin.RouterGroup, posts *post.Service, site config.SiteConfig) {
	b := NewBuilder(posts, site)
	rg.GET("/feed.xml", func(c *gin.Context) { b.serve(c, "rss") })
	rg.GET("/atom.xml", func(c *gin.Context) { b.serve(c, "atom") })
}

// Builder renders the post feeds.
type Builder struct {
	posts *post.Service
	site  config.SiteConfig
}

func NewBuilder(posts *post.Service, site config.SiteConfig) *Builder {
	return &Builder{posts: posts, site: site}
}

type feedItem struct {
	Title   string
	Link    string
	ID      string
	PubDate time.Time
	Summary string
	Content string
}

func (b *Builder) serve(c *gin.Context, feedType string) {
	items, err := b.items()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	switch feedType {
	case "atom":
		response.XML(c, ContentTypeAtom, b.buildAtom(items))
	default:
		response.XML(c, ContentTypeRSS, b.buildRSS(items))
	}
}

// RSS renders the RSS 2.0 document.
func (b *Builder) RSS() (string, error) {
	items, err := b.items()
	if err != nil {
		return "", err
	}
	return b.buildRSS(items), nil
}

// Atom renders the Atom document.
func (b *Builder) Atom() (string, error) {
	items, err := b.items()
	if err != nil {
		return "", err
	}
	return b.buildAtom(items), nil
}

func (b *Builder) items() ([]feedItem, error) {
	metas, err := b.posts.Recent(Limit)
	if err != nil {
		return nil, err
	}
	items := make([]feedItem, 0, len(metas))
	for _, m := range metas {
		pubDate, err := m.Date.Time()
		if err != nil {
			continue
		}
		link := b.site.AbsoluteURL("/blog/" + m.Slug + "/")
		item := feedItem{
			Title:   m.Title,
			Link:    link,
			ID:      entryID(link),
			PubDate: pubDate,
			Summary: m.Excerpt,
		}
		if p := b.posts.GetBySlug(m.Slug); p != nil {
			if rendered, err := markdown.Render(p.Content); err == nil {
				item.Content = rendered.HTML
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// entryID derives a stable urn:uuid from the entry URL so feed readers keep
// read state across rebuilds.
func entryID(link string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).URN()
}

// updated is the newest item date, so identical content renders identical
// feeds.
func updated(items []feedItem) time.Time {
	var latest time.Time
	for _, item := range items {
		if item.PubDate.After(latest) {
			latest = item.PubDate
		}
	}
	if latest.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return latest
}

func (b *Builder) buildRSS(items []feedItem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">
  <channel>
    <title>%s</title>
    <link>%s</link>
    <description>%s</description>
    <language>%s</language>
    <lastBuildDate>%s</lastBuildDate>
    <atom:link href="%s" rel="self" type="application/rss+xml"/>
`, escapeXML(b.site.Name), escapeXML(b.site.AbsoluteURL("/")), escapeXML(b.site.Description),
		escapeXML(b.site.Language), updated(items).Format(time.RFC1123Z), escapeXML(b.site.AbsoluteURL("/feed.xml")))

	for _, item := range items {
		fmt.Fprintf(&sb, `    <item>
      <title>%s</title>
      <link>%s</link>
      <guid isPermaLink="true">%s</guid>
      <pubDate>%s</pubDate>
      <description>%s</description>
    </item>
`, escapeXML(item.Title), escapeXML(item.Link), escapeXML(item.Link),
			item.PubDate.Format(time.RFC1123Z), escapeXML(item.Summary))
	}

	sb.WriteString("  </channel>\n</rss>")
	return sb.String()
}

func (b *Builder) buildAtom(items []feedItem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>%s</title>
  <subtitle>%s</subtitle>
  <link href="%s"/>
  <link href="%s" rel="self"/>
  <updated>%s</updated>
  <id>%s</id>
  <author><name>%s</name></author>
`, escapeXML(b.site.Name), escapeXML(b.site.Description), escapeXML(b.site.AbsoluteURL("/")),
		escapeXML(b.site.AbsoluteURL("/atom.xml")), updated(items).Format(time.RFC3339),
		entryID(b.site.AbsoluteURL("/")), escapeXML(b.site.Author.Name))

	for _, item := range items {
		fmt.Fprintf(&sb, `  <entry>
    <title>%s</title>
    <link href="%s"/>
    <id>%s</id>
    <updated>%s</updated>
    <summary>%s</summary>
    <content type="html"><![CDATA[%s]]></content>
  </entry>
`, escapeXML(item.Title), escapeXML(item.Link), item.ID,
			item.PubDate.Format(time.RFC3339), escapeXML(item.Summary), cdata(item.Content))
	}

	sb.WriteString("</feed>")
	return sb.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escapeXML replaces XML special characters in attribute/element content.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// cdata splits any "]]>" so the section cannot be closed early.
func cdata(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}
