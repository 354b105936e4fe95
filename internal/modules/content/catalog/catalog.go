// Package catalog wires the four content collections to one content root.
package catalog

import (
	"errors"
	"path/filepath"

	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/models"
	"github.com/mx-space/folio/internal/modules/content/casestudy"
	"github.com/mx-space/folio/internal/modules/content/daily"
	"github.com/mx-space/folio/internal/modules/content/post"
	"github.com/mx-space/folio/internal/modules/content/tool"
	"go.uber.org/zap"
)

// Catalog holds one service per content kind.
type Catalog struct {
	Posts       *post.Service
	Daily       *daily.Service
	Tools       *tool.Service
	CaseStudies *casestudy.Service
}

// New opens the collections under root: root/posts, root/daily, root/tools
// and root/case-studies.
func New(root string, opts content.Options) *Catalog {
	// Posts is the one root the site always had; the others are created on
	// first read when asked for.
	postOpts := opts
	postOpts.CreateRoot = false
	return &Catalog{
		Posts:       post.NewService(filepath.Join(root, post.Kind), postOpts),
		Daily:       daily.NewService(filepath.Join(root, daily.Kind), opts),
		Tools:       tool.NewService(filepath.Join(root, tool.Kind), opts),
		CaseStudies: casestudy.NewService(filepath.Join(root, casestudy.Kind), opts),
	}
}

// Report counts what a full load found.
type Report struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// Check lists every collection and joins the failures. With strict
// options the first malformed file of each kind is reported.
func (c *Catalog) Check(log *zap.Logger) ([]Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	counts := []struct {
		kind string
		list func() (int, error)
	}{
		{post.Kind, count(c.Posts.Collection())},
		{daily.Kind, count(c.Daily.Collection())},
		{tool.Kind, count(c.Tools.Collection())},
		{casestudy.Kind, count(c.CaseStudies.Collection())},
	}

	var (
		reports []Report
		errs    []error
	)
	for _, k := range counts {
		n, err := k.list()
		if err != nil {
			log.Error("content check failed", zap.String("kind", k.kind), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		reports = append(reports, Report{Kind: k.kind, Count: n})
	}
	return reports, errors.Join(errs...)
}

func count[M models.Item, E any](c *content.Collection[M, E]) func() (int, error) {
	return func() (int, error) {
		items, err := c.List()
		return len(items), err
	}
}

// Roots lists the content directories in a fixed order.
func (c *Catalog) Roots() []string {
	return []string{
		c.Posts.Collection().Root(),
		c.Daily.Collection().Root(),
		c.Tools.Collection().Root(),
		c.CaseStudies.Collection().Root(),
	}
}
