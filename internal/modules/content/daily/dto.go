package daily

import (
	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/processing/markdown"
)

// ListQuery holds query params for listing daily entries.
type ListQuery struct {
	Tag  string `form:"tag"`
	Mood string `form:"mood"`
}

// entryResponse is the API response shape for a single daily entry.
type entryResponse struct {
	Slug          string             `json:"slug"`
	Title         string             `json:"title"`
	Date          models.Date        `json:"date"`
	DateFormatted string             `json:"date_formatted"`
	Excerpt       string             `json:"excerpt"`
	Mood          models.Mood        `json:"mood"`
	Tags          models.StringArray `json:"tags"`
	ReadingTime   int                `json:"reading_time"`
	Content       string             `json:"content"`
	HTML          string             `json:"html"`
	Headings      []markdown.Heading `json:"headings"`
	Previous      *models.DailyMeta  `json:"previous"`
	Next          *models.DailyMeta  `json:"next"`
}

func toResponse(d *models.DailyEntry, rendered markdown.Rendered, adj content.Adjacent[models.DailyMeta]) entryResponse {
	return entryResponse{
		Slug:          d.Slug,
		Title:         d.Title,
		Date:          d.Date,
		DateFormatted: markdown.FormatDate(d.Date),
		Excerpt:       d.Excerpt,
		Mood:          d.Mood,
		Tags:          d.Tags,
		ReadingTime:   d.ReadingTime,
		Content:       d.Content,
		HTML:          rendered.HTML,
		Headings:      rendered.Headings,
		Previous:      adj.Previous,
		Next:          adj.Next,
	}
}
