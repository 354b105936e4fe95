package tool

import (
	"strings"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the collection name and URL segment for tools.
const Kind = "tools"

// Schema decodes files under content/tools. Featured tools come first,
// then names in English collation order.
var Schema = content.Schema[models.ToolMeta, models.Tool]{
	Kind:   Kind,
	Decode: decode,
	Meta:   models.Tool.Meta,
	Less: func(a, b models.ToolMeta) bool {
		if less, ok := content.FeaturedFirst(a.Featured, b.Featured); ok {
			return less
		}
		return content.CompareText(a.Name, b.Name) < 0
	},
}

func decode(doc *content.Document) (models.Tool, error) {
	var fm models.ToolFrontmatter
	if err := doc.Decode(&fm); err != nil {
		return models.Tool{}, err
	}
	name := strings.TrimSpace(fm.Name)
	if name == "" {
		name = titleFromSlug(doc.Slug)
	}
	tags := fm.Tags
	if tags == nil {
		tags = models.StringArray{}
	}
	return models.Tool{
		Document:    doc.Base(),
		Name:        name,
		Description: fm.Description,
		Tags:        tags,
		Featured:    fm.Featured,
		ToolLinks:   fm.ToolLinks,
	}, nil
}

// titleFromSlug turns "json-formatter" into "Json Formatter".
func titleFromSlug(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(s)
}
