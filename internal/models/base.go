package models

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Attribute names a queryable field of an indexed item.
type Attribute string

const (
	AttrTag        Attribute = "tag"
	AttrTechnology Attribute = "technology"
	AttrYear       Attribute = "year"
	AttrCategory   Attribute = "category"
	AttrMood       Attribute = "mood"
)

// Item is the list projection every content kind exposes to the index.
type Item interface {
	ItemSlug() string
	ItemDate() Date
	IsFeatured() bool
	// Values returns the item's values for attr. Single-valued attributes
	// return at most one element; unknown attributes return nil.
	Values(attr Attribute) []string
}

// Document carries the fields shared by every full entity.
type Document struct {
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	ReadingTime int    `json:"reading_time"`
}

// Scalar keeps a YAML scalar exactly as written, so `year: 2024` stays "2024".
type Scalar string

func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = Scalar(strings.TrimSpace(node.Value))
	return nil
}

func (s Scalar) String() string { return string(s) }

// Date is an ISO date string as authored. Listings compare it as a string;
// Time parses it for calendar grouping.
type Date string

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var s Scalar
	if err := s.UnmarshalYAML(node); err != nil {
		return err
	}
	*d = Date(s)
	return nil
}

// Time parses the date with the first matching ISO layout.
func (d Date) Time() (time.Time, error) {
	raw := strings.TrimSpace(string(d))
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

func (d Date) String() string { return string(d) }

func single(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}
