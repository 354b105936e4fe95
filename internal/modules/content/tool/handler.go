package tool

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/processing/markdown"
	"github.com/mx-space/folio/internal/pkg/response"
)

// Handler handles tool HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts tool routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/tools")
	g.GET("", h.list)
	g.GET("/featured", h.featured)
	g.GET("/tags", h.tags)
	g.GET("/:slug", h.get)
}

// list GET /tools
func (h *Handler) list(c *gin.Context) {
	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	tools, err := h.svc.List(lq.Tag)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, nonNil(tools))
}

// featured GET /tools/featured
func (h *Handler) featured(c *gin.Context) {
	tools, err := h.svc.Featured()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, nonNil(tools))
}

// tags GET /tools/tags
func (h *Handler) tags(c *gin.Context) {
	tags, err := h.svc.Tags()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if tags == nil {
		tags = []content.ValueCount{}
	}
	response.OK(c, tags)
}

// get GET /tools/:slug
func (h *Handler) get(c *gin.Context) {
	t := h.svc.GetBySlug(c.Param("slug"))
	if t == nil {
		response.NotFoundMsg(c, "tool not found")
		return
	}
	rendered, err := markdown.Render(t.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	related, err := h.svc.Related(t, content.DefaultRelatedLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(t, rendered, related))
}

func nonNil(tools []models.ToolMeta) []models.ToolMeta {
	if tools == nil {
		return []models.ToolMeta{}
	}
	return tools
}
