package casestudy

import (
	"strings"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

// Collection is the case study index type.
type Collection = content.Collection[models.CaseStudyMeta, models.CaseStudy]

type Service struct {
	studies *Collection
}

func NewService(root string, opts content.Options) *Service {
	return &Service{studies: content.New(root, Schema, opts)}
}

func (s *Service) Collection() *Collection { return s.studies }

// List applies every non-empty filter in turn.
func (s *Service) List(q ListQuery) ([]models.CaseStudyMeta, error) {
	studies, err := s.studies.List()
	if err != nil {
		return nil, err
	}
	filters := []struct {
		attr  models.Attribute
		value string
	}{
		{models.AttrTechnology, q.Technology},
		{models.AttrYear, q.Year},
		{models.AttrCategory, q.Category},
	}
	for _, f := range filters {
		f.value = strings.TrimSpace(f.value)
		if f.value == "" {
			continue
		}
		kept := studies[:0]
		for _, cs := range studies {
			if models.StringArray(cs.Values(f.attr)).Contains(f.value) {
				kept = append(kept, cs)
			}
		}
		studies = kept
	}
	return studies, nil
}

func (s *Service) GetBySlug(slug string) *models.CaseStudy {
	cs, ok := s.studies.Get(slug)
	if !ok {
		return nil
	}
	return &cs
}

func (s *Service) Featured() ([]models.CaseStudyMeta, error) {
	return s.studies.Featured()
}

func (s *Service) Technologies() ([]content.ValueCount, error) {
	return s.studies.Distinct(models.AttrTechnology)
}

// Years returns every distinct year, latest first.
func (s *Service) Years() ([]string, error) {
	return s.studies.Values(models.AttrYear)
}

// Categories tallies the non-empty categories.
func (s *Service) Categories() ([]content.ValueCount, error) {
	return s.studies.Distinct(models.AttrCategory)
}

func (s *Service) Related(cs *models.CaseStudy, limit int) ([]models.CaseStudyMeta, error) {
	return s.studies.Related(cs.Slug, cs.Technologies, models.AttrTechnology, limit)
}
