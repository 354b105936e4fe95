package post

import (
	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

// Kind is the collection name and URL segment for posts.
const Kind = "posts"

// Schema decodes files under content/posts. Posts list newest first by
// comparing their date strings.
var Schema = content.Schema[models.PostMeta, models.Post]{
	Kind:   Kind,
	Decode: decode,
	Meta:   models.Post.Meta,
	Less: func(a, b models.PostMeta) bool {
		return a.Date > b.Date
	},
	Validate: func(p models.Post) error {
		_, err := p.Date.Time()
		return err
	},
}

func decode(doc *content.Document) (models.Post, error) {
	var fm models.PostFrontmatter
	if err := doc.Decode(&fm); err != nil {
		return models.Post{}, err
	}
	tags := fm.Tags
	if tags == nil {
		tags = models.StringArray{}
	}
	return models.Post{
		Document: doc.Base(),
		Title:    fm.Title,
		Date:     fm.Date,
		Excerpt:  fm.Excerpt,
		Tags:     tags,
		Featured: fm.Featured,
	}, nil
}
