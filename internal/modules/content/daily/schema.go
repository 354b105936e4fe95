package daily

import (
	"strings"
	"unicode/utf8"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

const (
	// Kind is the collection name and URL segment for daily entries.
	Kind = "daily"

	excerptRunes = 150
)

// Schema decodes files under content/daily, newest first.
var Schema = content.Schema[models.DailyMeta, models.DailyEntry]{
	Kind:   Kind,
	Decode: decode,
	Meta:   models.DailyEntry.Meta,
	Less: func(a, b models.DailyMeta) bool {
		return a.Date > b.Date
	},
	Validate: func(d models.DailyEntry) error {
		_, err := d.Date.Time()
		return err
	},
}

func decode(doc *content.Document) (models.DailyEntry, error) {
	var fm models.DailyFrontmatter
	if err := doc.Decode(&fm); err != nil {
		return models.DailyEntry{}, err
	}
	mood := models.Mood(strings.TrimSpace(string(fm.Mood)))
	if mood == "" {
		mood = models.DefaultMood
	}
	tags := fm.Tags
	if tags == nil {
		tags = models.StringArray{}
	}
	excerpt := fm.Excerpt
	if excerpt == "" {
		excerpt = synthesizeExcerpt(doc.Body)
	}
	return models.DailyEntry{
		Document: doc.Base(),
		Title:    fm.Title,
		Date:     fm.Date,
		Mood:     mood,
		Tags:     tags,
		Excerpt:  excerpt,
	}, nil
}

// synthesizeExcerpt cuts the first 150 characters of the body and marks
// the cut with "...".
func synthesizeExcerpt(body string) string {
	body = strings.TrimSpace(body)
	if utf8.RuneCountInString(body) > excerptRunes {
		body = string([]rune(body)[:excerptRunes])
	}
	return body + "..."
}
