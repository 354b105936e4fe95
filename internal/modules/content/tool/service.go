package tool

import (
	"strings"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

// Collection is the tool index type.
type Collection = content.Collection[models.ToolMeta, models.Tool]

type Service struct {
	tools *Collection
}

func NewService(root string, opts content.Options) *Service {
	return &Service{tools: content.New(root, Schema, opts)}
}

func (s *Service) Collection() *Collection { return s.tools }

func (s *Service) List(tag string) ([]models.ToolMeta, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return s.tools.List()
	}
	return s.tools.Filter(models.AttrTag, tag)
}

func (s *Service) GetBySlug(slug string) *models.Tool {
	t, ok := s.tools.Get(slug)
	if !ok {
		return nil
	}
	return &t
}

func (s *Service) Featured() ([]models.ToolMeta, error) {
	return s.tools.Featured()
}

func (s *Service) Tags() ([]content.ValueCount, error) {
	return s.tools.Distinct(models.AttrTag)
}

func (s *Service) Related(t *models.Tool, limit int) ([]models.ToolMeta, error) {
	return s.tools.Related(t.Slug, t.Tags, models.AttrTag, limit)
}
