package tool

import (
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/processing/markdown"
)

// ListQuery holds query params for listing tools.
type ListQuery struct {
	Tag string `form:"tag"`
}

// toolResponse is the API response shape for a single tool.
type toolResponse struct {
	models.ToolMeta
	Content  string             `json:"content"`
	HTML     string             `json:"html"`
	Headings []markdown.Heading `json:"headings"`
	Related  []models.ToolMeta  `json:"related"`
}

func toResponse(t *models.Tool, rendered markdown.Rendered, related []models.ToolMeta) toolResponse {
	if related == nil {
		related = []models.ToolMeta{}
	}
	return toolResponse{
		ToolMeta: t.Meta(),
		Content:  t.Content,
		HTML:     rendered.HTML,
		Headings: rendered.Headings,
		Related:  related,
	}
}
