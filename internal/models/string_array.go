package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// StringArray reads a frontmatter string list, while tolerating a bare scalar
// (`tags: go`) as a one-element list. It always encodes as a JSON array.
type StringArray []string

func (a *StringArray) UnmarshalYAML(node *yaml.Node) error {
	if a == nil {
		return fmt.Errorf("models.StringArray: UnmarshalYAML on nil pointer")
	}

	switch node.Kind {
	case yaml.ScalarNode:
		raw := strings.TrimSpace(node.Value)
		if node.Tag == "!!null" || raw == "" {
			*a = StringArray{}
			return nil
		}
		*a = StringArray{raw}
		return nil
	case yaml.SequenceNode:
		out := make(StringArray, 0, len(node.Content))
		for _, child := range node.Content {
			var s Scalar
			if err := s.UnmarshalYAML(child); err != nil {
				return err
			}
			if s == "" {
				continue
			}
			out = append(out, string(s))
		}
		*a = out
		return nil
	default:
		return fmt.Errorf("line %d: expected a list of strings", node.Line)
	}
}

func (a StringArray) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(a))
}

// Contains reports whether value is in the array, ignoring case.
func (a StringArray) Contains(value string) bool {
	for _, v := range a {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// Overlap counts the elements of a that match any of values, ignoring case.
func (a StringArray) Overlap(values []string) int {
	n := 0
	for _, v := range a {
		for _, want := range values {
			if strings.EqualFold(v, want) {
				n++
				break
			}
		}
	}
	return n
}
