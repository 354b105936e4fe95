package post

import (
	"strings"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
)

// HomeRecentLimit is how many posts the home page shows.
const HomeRecentLimit = 3

// Collection is the post index type.
type Collection = content.Collection[models.PostMeta, models.Post]

type Service struct {
	posts *Collection
}

func NewService(root string, opts content.Options) *Service {
	return &Service{posts: content.New(root, Schema, opts)}
}

// Collection exposes the underlying index to syndication and export.
func (s *Service) Collection() *Collection { return s.posts }

// List returns all posts, or those tagged tag when tag is non-empty.
func (s *Service) List(tag string) ([]models.PostMeta, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return s.posts.List()
	}
	return s.posts.Filter(models.AttrTag, tag)
}

func (s *Service) GetBySlug(slug string) *models.Post {
	p, ok := s.posts.Get(slug)
	if !ok {
		return nil
	}
	return &p
}

func (s *Service) Recent(limit int) ([]models.PostMeta, error) {
	return s.posts.Recent(limit)
}

func (s *Service) Featured() ([]models.PostMeta, error) {
	return s.posts.Featured()
}

func (s *Service) Archive() ([]content.MonthGroup[models.PostMeta], error) {
	return s.posts.GroupByMonth()
}

func (s *Service) Tags() ([]content.ValueCount, error) {
	return s.posts.Distinct(models.AttrTag)
}

// Related returns posts sharing tags with p, strongest match first.
func (s *Service) Related(p *models.Post, limit int) ([]models.PostMeta, error) {
	return s.posts.Related(p.Slug, p.Tags, models.AttrTag, limit)
}

// ByTag resolves tag case-insensitively to the spelling authors used most
// and returns the posts carrying it. ok is false when no post has the tag.
func (s *Service) ByTag(tag string) (canonical string, posts []models.PostMeta, ok bool, err error) {
	tag = strings.TrimSpace(tag)
	tags, err := s.posts.Distinct(models.AttrTag)
	if err != nil {
		return "", nil, false, err
	}
	for _, vc := range tags {
		if strings.EqualFold(vc.Value, tag) {
			canonical = vc.Value
			break
		}
	}
	if canonical == "" {
		return "", nil, false, nil
	}
	posts, err = s.posts.Filter(models.AttrTag, tag)
	if err != nil {
		return "", nil, false, err
	}
	return canonical, posts, len(posts) > 0, nil
}
