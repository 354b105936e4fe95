package models

// PostFrontmatter is the recognized header of a file under content/posts.
type PostFrontmatter struct {
	Title    string      `yaml:"title"`
	Date     Date        `yaml:"date"`
	Excerpt  string      `yaml:"excerpt"`
	Tags     StringArray `yaml:"tags"`
	Featured bool        `yaml:"featured"`
}

// Post is a blog post.
type Post struct {
	Document
	Title    string      `json:"title"`
	Date     Date        `json:"date"`
	Excerpt  string      `json:"excerpt"`
	Tags     StringArray `json:"tags"`
	Featured bool        `json:"featured"`
}

// PostMeta is the list projection of a Post.
type PostMeta struct {
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Date        Date        `json:"date"`
	Excerpt     string      `json:"excerpt"`
	Tags        StringArray `json:"tags"`
	Featured    bool        `json:"featured"`
	ReadingTime int         `json:"reading_time"`
}

func (p Post) Meta() PostMeta {
	return PostMeta{
		Slug:        p.Slug,
		Title:       p.Title,
		Date:        p.Date,
		Excerpt:     p.Excerpt,
		Tags:        p.Tags,
		Featured:    p.Featured,
		ReadingTime: p.ReadingTime,
	}
}

func (m PostMeta) ItemSlug() string { return m.Slug }
func (m PostMeta) ItemDate() Date   { return m.Date }
func (m PostMeta) IsFeatured() bool { return m.Featured }

func (m PostMeta) Values(attr Attribute) []string {
	if attr == AttrTag {
		return m.Tags
	}
	return nil
}
