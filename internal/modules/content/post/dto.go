package post

import (
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/processing/markdown"
)

// ListQuery holds query params for listing posts.
type ListQuery struct {
	Tag string `form:"tag"`
}

// postResponse is the API response shape for a single post.
type postResponse struct {
	Slug          string             `json:"slug"`
	Title         string             `json:"title"`
	Date          models.Date        `json:"date"`
	DateFormatted string             `json:"date_formatted"`
	Excerpt       string             `json:"excerpt"`
	Tags          models.StringArray `json:"tags"`
	Featured      bool               `json:"featured"`
	ReadingTime   int                `json:"reading_time"`
	Content       string             `json:"content"`
	HTML          string             `json:"html"`
	Headings      []markdown.Heading `json:"headings"`
	Related       []models.PostMeta  `json:"related"`
}

// tagResponse is the payload of a tag page.
type tagResponse struct {
	Tag   string            `json:"tag"`
	Count int               `json:"count"`
	Posts []models.PostMeta `json:"posts"`
}

func toResponse(p *models.Post, rendered markdown.Rendered, related []models.PostMeta) postResponse {
	if related == nil {
		related = []models.PostMeta{}
	}
	return postResponse{
		Slug:          p.Slug,
		Title:         p.Title,
		Date:          p.Date,
		DateFormatted: markdown.FormatDate(p.Date),
		Excerpt:       p.Excerpt,
		Tags:          p.Tags,
		Featured:      p.Featured,
		ReadingTime:   p.ReadingTime,
		Content:       p.Content,
		HTML:          rendered.HTML,
		Headings:      rendered.Headings,
		Related:       related,
	}
}
