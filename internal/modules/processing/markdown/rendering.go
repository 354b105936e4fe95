package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry of a body's outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

// Rendered is a body converted to HTML together with its outline.
type Rendered struct {
	HTML     string    `json:"html"`
	Headings []Heading `json:"headings"`
}

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithXHTML(),
		htmlrenderer.WithUnsafe(),
	),
)

var (
	spoilerPattern       = regexp.MustCompile(`\|\|([^|\n]+?)\|\|`)
	mentionPattern       = regexp.MustCompile(`\b(GH|TW)@([A-Za-z0-9_-]+)\b`)
	imageTagRegex        = regexp.MustCompile(`(?is)<img\s+[^>]*>`)
	imageAttrRegex       = regexp.MustCompile(`([a-zA-Z:_-]+)\s*=\s*"([^"]*)"`)
	figureParagraphRegex = regexp.MustCompile(`(?is)<p>\s*(<figure>[\s\S]*?</figure>)\s*</p>`)
)

// Render converts a Markdown body to HTML and collects its headings in
// document order. Heading IDs match the anchors in the HTML.
func Render(body string) (Rendered, error) {
	src := []byte(preprocess(strings.TrimSpace(body)))
	if len(src) == 0 {
		return Rendered{Headings: []Heading{}}, nil
	}

	doc := markdownEngine.Parser().Parse(text.NewReader(src))
	headings := collectHeadings(doc, src)

	var out bytes.Buffer
	if err := markdownEngine.Renderer().Render(&out, src, doc); err != nil {
		return Rendered{}, fmt.Errorf("render markdown: %w", err)
	}
	return Rendered{HTML: rewriteImages(out.String()), Headings: headings}, nil
}

// Headings returns the outline of a body without rendering it.
func Headings(body string) []Heading {
	src := []byte(strings.TrimSpace(body))
	doc := markdownEngine.Parser().Parse(text.NewReader(src))
	return collectHeadings(doc, src)
}

func collectHeadings(doc ast.Node, src []byte) []Heading {
	headings := []Heading{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		content := strings.TrimSpace(nodeText(h, src))
		if content == "" {
			return ast.WalkSkipChildren, nil
		}
		id := ""
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		if id == "" {
			id = slugifyHeading(content)
		}
		headings = append(headings, Heading{Level: h.Level, Text: content, ID: id})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		default:
			sb.WriteString(nodeText(c, src))
		}
	}
	return sb.String()
}

// slugifyHeading converts heading text to a URL-friendly anchor ID.
func slugifyHeading(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, " ", "-")
	var sb strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			sb.WriteRune(r)
		}
	}
	result := strings.Trim(sb.String(), "-")
	if result == "" {
		result = "heading"
	}
	return result
}

func preprocess(text string) string {
	text = replaceMention(text)
	text = replaceSpoiler(text)
	return text
}

func replaceSpoiler(text string) string {
	return spoilerPattern.ReplaceAllStringFunc(text, func(raw string) string {
		match := spoilerPattern.FindStringSubmatch(raw)
		if len(match) < 2 {
			return raw
		}
		content := template.HTMLEscapeString(strings.TrimSpace(match[1]))
		return `<span class="spoiler">` + content + `</span>`
	})
}

func replaceMention(text string) string {
	return mentionPattern.ReplaceAllStringFunc(text, func(raw string) string {
		match := mentionPattern.FindStringSubmatch(raw)
		if len(match) < 3 {
			return raw
		}
		base := map[string]string{
			"GH": "https://github.com/",
			"TW": "https://twitter.com/",
		}[match[1]]
		if base == "" {
			return raw
		}
		name := template.HTMLEscapeString(match[2])
		return fmt.Sprintf(`[%s](%s%s)`, name, base, name)
	})
}

// rewriteImages turns images whose alt text starts with "!" into captioned
// figures.
func rewriteImages(html string) string {
	processed := imageTagRegex.ReplaceAllStringFunc(html, func(tag string) string {
		attrs := parseImageAttrs(tag)
		src := strings.TrimSpace(attrs["src"])
		alt := strings.TrimSpace(attrs["alt"])
		if src == "" || !strings.HasPrefix(alt, "!") {
			return tag
		}
		caption := strings.TrimSpace(strings.TrimPrefix(alt, "!"))
		if caption == "" {
			caption = strings.TrimSpace(attrs["title"])
		}
		return `<figure><img src="` + src + `" alt="` + caption + `" /><figcaption>` + caption + `</figcaption></figure>`
	})
	return figureParagraphRegex.ReplaceAllString(processed, "$1")
}

func parseImageAttrs(tag string) map[string]string {
	attrs := make(map[string]string)
	for _, item := range imageAttrRegex.FindAllStringSubmatch(tag, -1) {
		key := strings.ToLower(strings.TrimSpace(item[1]))
		if key == "" {
			continue
		}
		attrs[key] = item[2]
	}
	return attrs
}
