package casestudy

import (
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/processing/markdown"
)

// ListQuery holds query params for listing case studies.
type ListQuery struct {
	Technology string `form:"technology"`
	Year       string `form:"year"`
	Category   string `form:"category"`
}

// caseStudyResponse is the API response shape for a single case study.
type caseStudyResponse struct {
	models.CaseStudyMeta
	Challenges models.StringArray     `json:"challenges"`
	Outcomes   models.StringArray     `json:"outcomes"`
	Images     models.StringArray     `json:"images"`
	Content    string                 `json:"content"`
	HTML       string                 `json:"html"`
	Headings   []markdown.Heading     `json:"headings"`
	Related    []models.CaseStudyMeta `json:"related"`
}

func toResponse(cs *models.CaseStudy, rendered markdown.Rendered, related []models.CaseStudyMeta) caseStudyResponse {
	if related == nil {
		related = []models.CaseStudyMeta{}
	}
	return caseStudyResponse{
		CaseStudyMeta: cs.Meta(),
		Challenges:    cs.Challenges,
		Outcomes:      cs.Outcomes,
		Images:        cs.Images,
		Content:       cs.Content,
		HTML:          rendered.HTML,
		Headings:      rendered.Headings,
		Related:       related,
	}
}
