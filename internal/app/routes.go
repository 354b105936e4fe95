package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/middleware"
	"github.com/mx-space/folio/internal/modules/content/casestudy"
	"github.com/mx-space/folio/internal/modules/content/daily"
	"github.com/mx-space/folio/internal/modules/content/post"
	"github.com/mx-space/folio/internal/modules/content/tool"
	"github.com/mx-space/folio/internal/modules/stats/aggregate"
	"github.com/mx-space/folio/internal/modules/syndication/feed"
	"github.com/mx-space/folio/internal/modules/syndication/sitemap"
	"github.com/mx-space/folio/internal/modules/system/core/health"
	"github.com/mx-space/folio/internal/pkg/response"
)

// Version is reported by the API root.
var Version = "dev"

func (a *App) registerRoutes() {
	r := a.router
	cfg := a.cfg

	r.NoRoute(response.NotFound)
	r.NoMethod(response.MethodNotAllowed)

	r.Use(middleware.HTTPCache(middleware.HTTPCacheOptions{
		MaxAge:    cfg.CacheMaxAge,
		Disable:   cfg.IsDev(),
		SkipPaths: []string{APIPrefix + "/ping", APIPrefix + "/health"},
	}))

	appInfo := gin.H{
		"name":     cfg.Site.Name,
		"url":      cfg.Site.URL,
		"version":  Version,
		"language": cfg.Site.Language,
	}

	// Root-level endpoints
	root := r.Group("")
	feed.RegisterRoutes(root, a.catalog.Posts, cfg.Site)
	sitemap.RegisterRoutes(root, a.catalog, cfg.Site)

	// Versioned API
	api := r.Group(APIPrefix)
	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	health.RegisterRoutes(api, a.catalog, a.logger.Named("health"))

	aggregate.RegisterRoutes(api, a.catalog, cfg.Site, cfg.Comments)

	// Content
	post.NewHandler(a.catalog.Posts).RegisterRoutes(api)
	daily.NewHandler(a.catalog.Daily).RegisterRoutes(api)
	tool.NewHandler(a.catalog.Tools).RegisterRoutes(api)
	casestudy.NewHandler(a.catalog.CaseStudies).RegisterRoutes(api)
}
