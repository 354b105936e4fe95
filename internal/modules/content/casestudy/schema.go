package casestudy

import (
	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

// Kind is the collection name and URL segment for case studies.
const Kind = "case-studies"

// Schema decodes files under content/case-studies. Listings run from the
// latest year down, featured first within a year, then by title.
var Schema = content.Schema[models.CaseStudyMeta, models.CaseStudy]{
	Kind:   Kind,
	Decode: decode,
	Meta:   models.CaseStudy.Meta,
	Less: func(a, b models.CaseStudyMeta) bool {
		if cmp := content.CompareNumeric(a.Year, b.Year); cmp != 0 {
			return cmp > 0
		}
		if less, ok := content.FeaturedFirst(a.Featured, b.Featured); ok {
			return less
		}
		return content.CompareText(a.Title, b.Title) < 0
	},
}

func decode(doc *content.Document) (models.CaseStudy, error) {
	var fm models.CaseStudyFrontmatter
	if err := doc.Decode(&fm); err != nil {
		return models.CaseStudy{}, err
	}
	return models.CaseStudy{
		Document:     doc.Base(),
		Title:        fm.Title,
		Description:  fm.Description,
		Technologies: orEmpty(fm.Technologies),
		Duration:     fm.Duration,
		Year:         fm.Year.String(),
		LiveURL:      fm.LiveURL,
		GitHubURL:    fm.GitHubURL,
		Featured:     fm.Featured,
		Challenges:   orEmpty(fm.Challenges),
		Outcomes:     orEmpty(fm.Outcomes),
		Images:       orEmpty(fm.Images),
		Category:     fm.Category,
	}, nil
}

func orEmpty(a models.StringArray) models.StringArray {
	if a == nil {
		return models.StringArray{}
	}
	return a
}
