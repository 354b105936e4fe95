package content

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/mx-space/folio/internal/models"
	"gopkg.in/yaml.v3"
)

// WordsPerMinute is the reading speed used for reading time estimates.
const WordsPerMinute = 200

// yamlFormat decodes "---" fenced frontmatter with yaml.v3 so the custom
// node unmarshalers in models apply. The library default is yaml.v2.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Document is a parsed content file: raw bytes, the body after the
// frontmatter fence, and the undecoded frontmatter node.
type Document struct {
	Slug        string
	Raw         []byte
	Body        string
	ReadingTime int

	header yaml.Node
}

// ParseDocument splits raw into frontmatter and body. A file without a
// frontmatter fence is all body.
func ParseDocument(slug string, raw []byte) (*Document, error) {
	doc := &Document{
		Slug:        slug,
		Raw:         raw,
		ReadingTime: ReadingTime(string(raw)),
	}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &doc.header, yamlFormat)
	if err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}
	doc.Body = string(body)
	return doc, nil
}

// Decode fills v from the frontmatter. Keys absent from the header leave
// the corresponding fields untouched.
func (d *Document) Decode(v any) error {
	if d.header.Kind == 0 {
		return nil
	}
	node := &d.header
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("frontmatter: line %d: expected a mapping", node.Line)
	}
	if err := node.Decode(v); err != nil {
		return fmt.Errorf("frontmatter: %w", err)
	}
	return nil
}

// Base returns the fields every entity shares.
func (d *Document) Base() models.Document {
	return models.Document{
		Slug:        d.Slug,
		Content:     d.Body,
		ReadingTime: d.ReadingTime,
	}
}

// ReadingTime estimates whole minutes to read text, counting at least one
// word so empty files still read in a minute.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	if words < 1 {
		words = 1
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}
