package models

// CaseStudyFrontmatter is the recognized header of a file under
// content/case-studies.
type CaseStudyFrontmatter struct {
	Title        string      `yaml:"title"`
	Description  string      `yaml:"description"`
	Technologies StringArray `yaml:"technologies"`
	Duration     string      `yaml:"duration"`
	Year         Scalar      `yaml:"year"`
	LiveURL      string      `yaml:"liveUrl"`
	GitHubURL    string      `yaml:"githubUrl"`
	Featured     bool        `yaml:"featured"`
	Challenges   StringArray `yaml:"challenges"`
	Outcomes     StringArray `yaml:"outcomes"`
	Images       StringArray `yaml:"images"`
	Category     string      `yaml:"category"`
}

// CaseStudy is a portfolio case study.
type CaseStudy struct {
	Document
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Technologies StringArray `json:"technologies"`
	Duration     string      `json:"duration"`
	Year         string      `json:"year"`
	LiveURL      string      `json:"live_url,omitempty"`
	GitHubURL    string      `json:"github_url,omitempty"`
	Featured     bool        `json:"featured"`
	Challenges   StringArray `json:"challenges"`
	Outcomes     StringArray `json:"outcomes"`
	Images       StringArray `json:"images"`
	Category     string      `json:"category,omitempty"`
}

// CaseStudyMeta is the list projection of a CaseStudy.
type CaseStudyMeta struct {
	Slug         string      `json:"slug"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Technologies StringArray `json:"technologies"`
	Duration     string      `json:"duration"`
	Year         string      `json:"year"`
	LiveURL      string      `json:"live_url,omitempty"`
	GitHubURL    string      `json:"github_url,omitempty"`
	Featured     bool        `json:"featured"`
	Category     string      `json:"category,omitempty"`
	ReadingTime  int         `json:"reading_time"`
}

func (c CaseStudy) Meta() CaseStudyMeta {
	return CaseStudyMeta{
		Slug:         c.Slug,
		Title:        c.Title,
		Description:  c.Description,
		Technologies: c.Technologies,
		Duration:     c.Duration,
		Year:         c.Year,
		LiveURL:      c.LiveURL,
		GitHubURL:    c.GitHubURL,
		Featured:     c.Featured,
		Category:     c.Category,
		ReadingTime:  c.ReadingTime,
	}
}

func (m CaseStudyMeta) ItemSlug() string { return m.Slug }
func (m CaseStudyMeta) ItemDate() Date   { return "" }
func (m CaseStudyMeta) IsFeatured() bool { return m.Featured }

func (m CaseStudyMeta) Values(attr Attribute) []string {
	switch attr {
	case AttrTechnology, AttrTag:
		return m.Technologies
	case AttrYear:
		return single(m.Year)
	case AttrCategory:
		return single(m.Category)
	}
	return nil
}
