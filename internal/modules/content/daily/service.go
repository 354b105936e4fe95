package daily

import (
	"strings"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

// HomeRecentLimit is how many daily entries the home page shows.
const HomeRecentLimit = 3

// Collection is the daily entry index type.
type Collection = content.Collection[models.DailyMeta, models.DailyEntry]

type Service struct {
	entries *Collection
}

func NewService(root string, opts content.Options) *Service {
	return &Service{entries: content.New(root, Schema, opts)}
}

func (s *Service) Collection() *Collection { return s.entries }

// List returns entries matching every non-empty filter.
func (s *Service) List(q ListQuery) ([]models.DailyMeta, error) {
	q.Tag = strings.TrimSpace(q.Tag)
	q.Mood = strings.TrimSpace(q.Mood)
	var (
		entries []models.DailyMeta
		err     error
	)
	switch {
	case q.Tag != "":
		entries, err = s.entries.Filter(models.AttrTag, q.Tag)
	case q.Mood != "":
		entries, err = s.entries.Filter(models.AttrMood, q.Mood)
	default:
		return s.entries.List()
	}
	if err != nil {
		return nil, err
	}
	if q.Tag != "" && q.Mood != "" {
		kept := entries[:0]
		for _, e := range entries {
			if strings.EqualFold(string(e.Mood), q.Mood) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	return entries, nil
}

func (s *Service) GetBySlug(slug string) *models.DailyEntry {
	d, ok := s.entries.Get(slug)
	if !ok {
		return nil
	}
	return &d
}

func (s *Service) Recent(limit int) ([]models.DailyMeta, error) {
	return s.entries.Recent(limit)
}

func (s *Service) Archive() ([]content.MonthGroup[models.DailyMeta], error) {
	return s.entries.GroupByMonth()
}

func (s *Service) Tags() ([]content.ValueCount, error) {
	return s.entries.Distinct(models.AttrTag)
}

func (s *Service) Moods() ([]content.ValueCount, error) {
	return s.entries.Distinct(models.AttrMood)
}

// Adjacent returns the newer and older neighbours of slug.
func (s *Service) Adjacent(slug string) (content.Adjacent[models.DailyMeta], error) {
	adj, _, err := s.entries.Adjacent(slug)
	return adj, err
}
