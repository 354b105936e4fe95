package post

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/processing/markdown"
	"github.com/mx-space/folio/internal/pkg/pagination"
	"github.com/mx-space/folio/internal/pkg/response"
)

// Handler handles post HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts post and tag routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", h.list)
	posts.GET("/recent", h.recent)
	posts.GET("/featured", h.featured)
	posts.GET("/archive", h.archive)
	posts.GET("/tags", h.tags)
	posts.GET("/:slug", h.get)

	tags := rg.Group("/tags")
	tags.GET("", h.tags)
	tags.GET("/:tag", h.tag)
}

// list GET /posts
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, err := h.svc.List(lq.Tag)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	page, pag := pagination.Paginate(posts, q)
	response.Paged(c, nonNil(page), pag)
}

// recent GET /posts/recent
func (h *Handler) recent(c *gin.Context) {
	posts, err := h.svc.Recent(content.DefaultRecentLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, nonNil(posts))
}

// featured GET /posts/featured
func (h *Handler) featured(c *gin.Context) {
	posts, err := h.svc.Featured()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, nonNil(posts))
}

// archive GET /posts/archive
func (h *Handler) archive(c *gin.Context) {
	groups, err := h.svc.Archive()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if groups == nil {
		groups = []content.MonthGroup[models.PostMeta]{}
	}
	response.OK(c, groups)
}

// tags GET /posts/tags and GET /tags
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

// tag GET /tags/:tag
func (h *Handler) tag(c *gin.Context) {
	canonical, posts, ok, err := h.svc.ByTag(c.Param("tag"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !ok {
		response.NotFoundMsg(c, "tag not found")
		return
	}
	response.OK(c, tagResponse{Tag: canonical, Count: len(posts), Posts: posts})
}

// get GET /posts/:slug
func (h *Handler) get(c *gin.Context) {
	p := h.svc.GetBySlug(c.Param("slug"))
	if p == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}

	rendered, err := markdown.Render(p.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	related, err := h.svc.Related(p, content.DefaultRelatedLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(p, rendered, related))
}

func nonNil(posts []models.PostMeta) []models.PostMeta {
	if posts == nil {
		return []models.PostMeta{}
	}
	return posts
}
