package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mx-space/folio/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultRelatedLimit caps Related when limit <= 0.
	DefaultRelatedLimit = 3
	// DefaultRecentLimit caps Recent when limit <= 0.
	DefaultRecentLimit = 5

	fileExt = ".md"
)

// Schema describes one content kind to the index.
type Schema[M models.Item, E any] struct {
	// Kind names the collection in logs and errors, e.g. "posts".
	Kind string
	// Decode builds the full entity from a parsed file.
	Decode func(doc *Document) (E, error)
	// Meta projects an entity onto its list shape.
	Meta func(E) M
	// Less orders listings. The sort is stable, so ties keep file name order.
	Less func(a, b M) bool
	// Validate rejects decoded entities, optional.
	Validate func(E) error
}

// Options controls how a collection treats its root and bad files.
type Options struct {
	// Strict turns the first malformed file into a listing error. Otherwise
	// malformed files are logged and skipped.
	Strict bool
	// CreateRoot creates a missing root directory on first read.
	CreateRoot bool
	Logger     *zap.Logger
}

// Collection is a read-only index over one directory of Markdown files.
// Every operation rescans the directory; nothing is cached.
type Collection[M models.Item, E any] struct {
	root   string
	schema Schema[M, E]
	opts   Options
	log    *zap.Logger
}

// MonthGroup buckets items by the calendar month of their date.
type MonthGroup[M models.Item] struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Items []M    `json:"items"`

	month time.Month
}

// ValueCount is one distinct attribute value and how many items carry it.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Adjacent holds the neighbours of an item in listing order.
type Adjacent[M models.Item] struct {
	Previous *M `json:"previous"`
	Next     *M `json:"next"`
}

func New[M models.Item, E any](root string, schema Schema[M, E], opts Options) *Collection[M, E] {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Collection[M, E]{
		root:   root,
		schema: schema,
		opts:   opts,
		log:    log.With(zap.String("collection", schema.Kind)),
	}
}

// Kind returns the schema name.
func (c *Collection[M, E]) Kind() string { return c.schema.Kind }

// Root returns the content directory.
func (c *Collection[M, E]) Root() string { return c.root }

// List returns every item in the root, sorted by the schema order.
// A missing root is an empty collection.
func (c *Collection[M, E]) List() ([]M, error) {
	entities, err := c.loadAll()
	if err != nil {
		return nil, err
	}
	items := make([]M, len(entities))
	for i, e := range entities {
		items[i] = c.schema.Meta(e)
	}
	if c.schema.Less != nil {
		sort.SliceStable(items, func(i, j int) bool {
			return c.schema.Less(items[i], items[j])
		})
	}
	return items, nil
}

// Get loads a single entity. Any failure, including a slug that is not a
// plain file name, reports not found.
func (c *Collection[M, E]) Get(slug string) (E, bool) {
	var zero E
	if err := validateSlug(slug); err != nil {
		return zero, false
	}
	path := filepath.Join(c.root, slug+fileExt)
	e, err := c.load(slug, path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.log.Debug("get failed", zap.String("slug", slug), zap.Error(err))
		}
		return zero, false
	}
	return e, true
}

// Filter keeps items whose attr values contain value, ignoring case.
func (c *Collection[M, E]) Filter(attr models.Attribute, value string) ([]M, error) {
	items, err := c.List()
	if err != nil {
		return nil, err
	}
	out := make([]M, 0, len(items))
	for _, item := range items {
		if models.StringArray(item.Values(attr)).Contains(value) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Featured keeps items flagged featured, in listing order.
func (c *Collection[M, E]) Featured() ([]M, error) {
	items, err := c.List()
	if err != nil {
		return nil, err
	}
	out := make([]M, 0, len(items))
	for _, item := range items {
		if item.IsFeatured() {
			out = append(out, item)
		}
	}
	return out, nil
}

// Recent returns the first limit items of List.
func (c *Collection[M, E]) Recent(limit int) ([]M, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	items, err := c.List()
	if err != nil {
		return nil, err
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// GroupByMonth buckets items by the month of their date. Groups run from
// the latest year down, months within a year run January to December, and
// each group keeps its items newest first.
func (c *Collection[M, E]) GroupByMonth() ([]MonthGroup[M], error) {
	items, err := c.List()
	if err != nil {
		return nil, err
	}

	type key struct {
		year  int
		month time.Month
	}
	index := make(map[key]int)
	var groups []MonthGroup[M]
	for _, item := range items {
		t, err := item.ItemDate().Time()
		if err != nil {
			return nil, &MalformedError{
				Kind: c.schema.Kind,
				Path: filepath.Join(c.root, item.ItemSlug()+fileExt),
				Err:  err,
			}
		}
		k := key{year: t.Year(), month: t.Month()}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, MonthGroup[M]{
				Month: t.Month().String(),
				Year:  t.Year(),
				month: t.Month(),
			})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Year != groups[j].Year {
			return groups[i].Year > groups[j].Year
		}
		return groups[i].month < groups[j].month
	})
	for i := range groups {
		members := groups[i].Items
		sort.SliceStable(members, func(a, b int) bool {
			return members[a].ItemDate() > members[b].ItemDate()
		})
	}
	return groups, nil
}

// Related ranks other items by how many of values they share on attr.
// Items sharing nothing are dropped, and ties keep listing order.
func (c *Collection[M, E]) Related(slug string, values []string, attr models.Attribute, limit int) ([]M, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	items, err := c.List()
	if err != nil {
		return nil, err
	}

	type scored struct {
		item    M
		overlap int
	}
	candidates := make([]scored, 0, len(items))
	for _, item := range items {
		if item.ItemSlug() == slug {
			continue
		}
		n := models.StringArray(item.Values(attr)).Overlap(values)
		if n > 0 {
			candidates = append(candidates, scored{item: item, overlap: n})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].overlap > candidates[j].overlap
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]M, len(candidates))
	for i, s := range candidates {
		out[i] = s.item
	}
	return out, nil
}

// Distinct tallies every value of attr. Values are compared exactly, counts
// run high to low, and equal counts keep first-seen order.
func (c *Collection[M, E]) Distinct(attr models.Attribute) ([]ValueCount, error) {
	items, err := c.List()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	var out []ValueCount
	for _, item := range items {
		for _, v := range item.Values(attr) {
			if v == "" {
				continue
			}
			i, ok := index[v]
			if !ok {
				i = len(out)
				index[v] = i
				out = append(out, ValueCount{Value: v})
			}
			out[i].Count++
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

// Values returns the distinct values of attr sorted descending, numerically
// when every value is a number.
func (c *Collection[M, E]) Values(attr models.Attribute) ([]string, error) {
	counts, err := c.Distinct(attr)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(counts))
	for i, vc := range counts {
		out[i] = vc.Value
	}
	sort.SliceStable(out, func(i, j int) bool { return CompareNumeric(out[i], out[j]) > 0 })
	return out, nil
}

// Adjacent returns the items before and after slug in listing order.
func (c *Collection[M, E]) Adjacent(slug string) (Adjacent[M], bool, error) {
	items, err := c.List()
	if err != nil {
		return Adjacent[M]{}, false, err
	}
	for i, item := range items {
		if item.ItemSlug() != slug {
			continue
		}
		var adj Adjacent[M]
		if i > 0 {
			prev := items[i-1]
			adj.Previous = &prev
		}
		if i+1 < len(items) {
			next := items[i+1]
			adj.Next = &next
		}
		return adj, true, nil
	}
	return Adjacent[M]{}, false, nil
}

func (c *Collection[M, E]) loadAll() ([]E, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if c.opts.CreateRoot {
				if mkErr := os.MkdirAll(c.root, 0o755); mkErr != nil {
					return nil, fmt.Errorf("%s: create root: %w", c.schema.Kind, mkErr)
				}
			}
			return nil, nil
		}
		return nil, fmt.Errorf("%s: read root: %w", c.schema.Kind, err)
	}

	out := make([]E, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		slug := strings.TrimSuffix(name, fileExt)
		path := filepath.Join(c.root, name)
		e, err := c.load(slug, path)
		if err != nil {
			var malformed *MalformedError
			if !errors.As(err, &malformed) {
				return nil, err
			}
			if c.opts.Strict {
				return nil, err
			}
			c.log.Warn("skipping malformed file", zap.String("path", path), zap.Error(malformed.Err))
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (c *Collection[M, E]) load(slug, path string) (E, error) {
	var zero E
	raw, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", c.schema.Kind, err)
	}
	doc, err := ParseDocument(slug, raw)
	if err != nil {
		return zero, &MalformedError{Kind: c.schema.Kind, Path: path, Err: err}
	}
	e, err := c.schema.Decode(doc)
	if err != nil {
		return zero, &MalformedError{Kind: c.schema.Kind, Path: path, Err: err}
	}
	if c.schema.Validate != nil {
		if err := c.schema.Validate(e); err != nil {
			return zero, &MalformedError{Kind: c.schema.Kind, Path: path, Err: err}
		}
	}
	return e, nil
}

func validateSlug(slug string) error {
	if slug == "" || slug == "." || strings.ContainsAny(slug, `/\`+"\x00") || strings.Contains(slug, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}
