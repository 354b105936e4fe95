package models

// Mood labels a daily entry.
type Mood string

const (
	MoodProductive  Mood = "productive"
	MoodLearning    Mood = "learning"
	MoodChallenging Mood = "challenging"
	MoodCreative    Mood = "creative"
)

// DefaultMood applies when a daily entry has no mood key.
const DefaultMood = MoodProductive

// Moods lists the known moods in display order.
var Moods = []Mood{MoodProductive, MoodLearning, MoodChallenging, MoodCreative}

// Known reports whether m is one of the four recognized moods.
func (m Mood) Known() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

// DailyFrontmatter is the recognized header of a file under content/daily.
type DailyFrontmatter struct {
	Title   string      `yaml:"title"`
	Date    Date        `yaml:"date"`
	Excerpt string      `yaml:"excerpt"`
	Mood    Mood        `yaml:"mood"`
	Tags    StringArray `yaml:"tags"`
}

// DailyEntry is a short-form diary note.
type DailyEntry struct {
	Document
	Title string      `json:"title"`
	Date  Date        `json:"date"`
	Mood  Mood        `json:"mood"`
	Tags  StringArray `json:"tags"`

	// Excerpt is the authored excerpt, or a prefix of the body when absent.
	Excerpt string `json:"-"`
}

// DailyMeta is the list projection of a DailyEntry.
type DailyMeta struct {
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Date        Date        `json:"date"`
	Excerpt     string      `json:"excerpt"`
	Mood        Mood        `json:"mood"`
	Tags        StringArray `json:"tags"`
	ReadingTime int         `json:"reading_time"`
}

func (d DailyEntry) Meta() DailyMeta {
	return DailyMeta{
		Slug:        d.Slug,
		Title:       d.Title,
		Date:        d.Date,
		Excerpt:     d.Excerpt,
		Mood:        d.Mood,
		Tags:        d.Tags,
		ReadingTime: d.ReadingTime,
	}
}

func (m DailyMeta) ItemSlug() string { return m.Slug }
func (m DailyMeta) ItemDate() Date   { return m.Date }
func (m DailyMeta) IsFeatured() bool { return false }

func (m DailyMeta) Values(attr Attribute) []string {
	switch attr {
	case AttrTag:
		return m.Tags
	case AttrMood:
		return single(string(m.Mood))
	}
	return nil
}
