package aggregate

import (
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/content/casestudy"
	"github.com/mx-space/folio/internal/modules/content/catalog"
	"github.com/mx-space/folio/internal/modules/content/daily"
	"github.com/mx-space/folio/internal/modules/content/post"
)

// buildAggregate collects what the home page renders.
func buildAggregate(cat *catalog.Catalog, site config.SiteConfig) (*aggregateData, error) {
	posts, err := cat.Posts.List("")
	if err != nil {
		return nil, err
	}
	entries, err := cat.Daily.List(daily.ListQuery{})
	if err != nil {
		return nil, err
	}
	tools, err := cat.Tools.List("")
	if err != nil {
		return nil, err
	}
	studies, err := cat.CaseStudies.List(casestudy.ListQuery{})
	if err != nil {
		return nil, err
	}

	nav := site.Navigation
	if nav == nil {
		nav = []config.NavigationItem{}
	}
	return &aggregateData{
		Site:        site,
		Navigation:  nav,
		Posts:       head(posts, post.HomeRecentLimit),
		Tools:       featured(tools),
		CaseStudies: featured(studies),
		Daily:       head(entries, daily.HomeRecentLimit),
		Count: contentCount{
			Posts:       len(posts),
			Daily:       len(entries),
			Tools:       len(tools),
			CaseStudies: len(studies),
		},
	}, nil
}

func buildSiteConfig(site config.SiteConfig, comments config.CommentsConfig, dark bool) siteConfigData {
	data := siteConfigData{Site: site}
	if comments.Enabled() {
		data.Comments = &commentsData{CommentsConfig: comments, Theme: comments.Theme(dark)}
	}
	return data
}

func head[M models.Item](items []M, n int) []M {
	if len(items) > n {
		items = items[:n]
	}
	if items == nil {
		return []M{}
	}
	return items
}

func featured[M models.Item](items []M) []M {
	out := make([]M, 0, len(items))
	for _, item := range items {
		if item.IsFeatured() {
			out = append(out, item)
		}
	}
	return out
}
