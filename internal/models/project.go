package models

// ToolLinks are the optional external links of a tool.
type ToolLinks struct {
	GitHub  string `json:"github,omitempty"  yaml:"github"`
	Demo    string `json:"demo,omitempty"    yaml:"demo"`
	NPM     string `json:"npm,omitempty"     yaml:"npm"`
	Website string `json:"website,omitempty" yaml:"website"`
}

// ToolFrontmatter is the recognized header of a file under content/tools.
type ToolFrontmatter struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Tags        StringArray `yaml:"tags"`
	Featured    bool        `yaml:"featured"`
	ToolLinks   `yaml:",inline"`
}

// Tool is a showcased tool or library.
type Tool struct {
	Document
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Tags        StringArray `json:"tags"`
	Featured    bool        `json:"featured"`
	ToolLinks
}

// ToolMeta is the list projection of a Tool.
type ToolMeta struct {
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Tags        StringArray `json:"tags"`
	Featured    bool        `json:"featured"`
	ReadingTime int         `json:"reading_time"`
	ToolLinks
}

func (t Tool) Meta() ToolMeta {
	return ToolMeta{
		Slug:        t.Slug,
		Name:        t.Name,
		Description: t.Description,
		Tags:        t.Tags,
		Featured:    t.Featured,
		ReadingTime: t.ReadingTime,
		ToolLinks:   t.ToolLinks,
	}
}

func (m ToolMeta) ItemSlug() string { return m.Slug }
func (m ToolMeta) ItemDate() Date   { return "" }
func (m ToolMeta) IsFeatured() bool { return m.Featured }

func (m ToolMeta) Values(attr Attribute) []string {
	if attr == AttrTag {
		return m.Tags
	}
	return nil
}
