package casestudy

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/processing/markdown"
	"github.com/mx-space/folio/internal/pkg/response"
)

// Handler handles case study HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts case study routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/case-studies")
	g.GET("", h.list)
	g.GET("/featured", h.featured)
	g.GET("/technologies", h.technologies)
	g.GET("/years", h.years)
	g.GET("/categories", h.categories)
	g.GET("/:slug", h.get)
}

// list GET /case-studies
func (h *Handler) list(c *gin.Context) {
	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	studies, err := h.svc.List(lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, nonNil(studies))
}

// featured GET /case-studies/featured
func (h *Handler) featured(c *gin.Context) {
	studies, err := h.svc.Featured()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, nonNil(studies))
}

// technologies GET /case-studies/technologies
func (h *Handler) technologies(c *gin.Context) {
	h.tally(c, h.svc.Technologies)
}

// categories GET /case-studies/categories
func (h *Handler) categories(c *gin.Context) {
	h.tally(c, h.svc.Categories)
}

// years GET /case-studies/years
func (h *Handler) years(c *gin.Context) {
	years, err := h.svc.Years()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if years == nil {
		years = []string{}
	}
	response.OK(c, years)
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

// get GET /case-studies/:slug
func (h *Handler) get(c *gin.Context) {
	cs := h.svc.GetBySlug(c.Param("slug"))
	if cs == nil {
		response.NotFoundMsg(c, "case study not found")
		return
	}
	rendered, err := markdown.Render(cs.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	related, err := h.svc.Related(cs, content.DefaultRelatedLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(cs, rendered, related))
}

func nonNil(studies []models.CaseStudyMeta) []models.CaseStudyMeta {
	if studies == nil {
		return []models.CaseStudyMeta{}
	}
	return studies
}
