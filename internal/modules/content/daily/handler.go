package daily

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/processing/markdown"
	"github.com/mx-space/folio/internal/pkg/pagination"
	"github.com/mx-space/folio/internal/pkg/response"
)

// Handler handles daily entry HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts daily routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/daily")
	g.GET("", h.list)
	g.GET("/recent", h.recent)
	g.GET("/archive", h.archive)
	g.GET("/tags", h.tags)
	g.GET("/moods", h.moods)
	g.GET("/:slug", h.get)
}

// list GET /daily
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entries, err := h.svc.List(lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	page, pag := pagination.Paginate(entries, q)
	response.Paged(c, nonNil(page), pag)
}

// recent GET /daily/recent
func (h *Handler) recent(c *gin.Context) {
	entries, err := h.svc.Recent(content.DefaultRecentLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, nonNil(entries))
}

// archive GET /daily/archive
func (h *Handler) archive(c *gin.Context) {
	groups, err := h.svc.Archive()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if groups == nil {
		groups = []content.MonthGroup[models.DailyMeta]{}
	}
	response.OK(c, groups)
}

// tags GET /daily/tags
func (h *Handler) tags(c *gin.Context) {
	h.tally(c, h.svc.Tags)
}

// moods GET /daily/moods
func (h *Handler) moods(c *gin.Context) {
	h.tally(c, h.svc.Moods)
}

func (h *Handler) tally(c *gin.Context, fn func() ([]content.ValueCount, error)) {
	counts, err := fn()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if counts == nil {
		counts = []content.ValueCount{}
	}
	response.OK(c, counts)
}

// get GET /daily/:slug
func (h *Handler) get(c *gin.Context) {
	entry := h.svc.GetBySlug(c.Param("slug"))
	if entry == nil {
		response.NotFoundMsg(c, "daily entry not found")
		return
	}
	rendered, err := markdown.Render(entry.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	adj, err := h.svc.Adjacent(entry.Slug)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(entry, rendered, adj))
}

func nonNil(entries []models.DailyMeta) []models.DailyMeta {
	if entries == nil {
		return []models.DailyMeta{}
	}
	return entries
}
