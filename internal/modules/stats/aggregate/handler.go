package aggregate

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/modules/content/catalog"
	"github.com/mx-space/folio/internal/pkg/response"
)

func RegisterRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, site config.SiteConfig, comments config.CommentsConfig) {
	rg.GET("/aggregate", func(c *gin.Context) {
		data, err := buildAggregate(cat, site)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, data)
	})

	// GET /config/site?theme=dark
	rg.GET("/config/site", func(c *gin.Context) {
		response.OK(c, buildSiteConfig(site, comments, c.Query("theme") == "dark"))
	})
}
