package resource

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is the closed classification of a resource.
type Category string

const (
	Podcasts    Category = "Podcasts"
	Articles    Category = "Articles"
	Newsletters Category = "Newsletters"
	Recipes     Category = "Recipes"
	Fitness     Category = "Fitness"
	Meditation  Category = "Meditation"
)

// All selects every category when filtering. It is not a member of the
// enumeration and never appears on a resource.
const All Category = "All"

// ErrUnknownCategory is returned for names outside the enumeration.
var ErrUnknownCategory = errors.New("unknown category")

var categories = []Category{Podcasts, Articles, Newsletters, Recipes, Fitness, Meditation}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Selections returns All followed by every category, the order of the
// category buttons.
func Selections() []Category {
	return append([]Category{All}, categories...)
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory resolves a category name, matching case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, known := range categories {
		if string(known) == s {
			return known, nil
		}
	}
	for _, known := range categories {
		if strings.EqualFold(string(known), s) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCategory, s)
}

// ParseSelection resolves a filter selection: "All" (or empty) or a category.
func ParseSelection(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(All)) {
		return All, nil
	}
	return ParseCategory(s)
}

// UnmarshalYAML rejects categories outside the enumeration.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// UnmarshalText rejects categories outside the enumeration. Used by
// encoding/json and flag parsing.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Selection is a filter choice: All or one category. It round-trips through
// JSON and text where a bare Category would reject All.
type Selection Category

// Category returns the selection as a Category value.
func (s Selection) Category() Category { return Category(s) }

func (s Selection) String() string { return string(s) }

// MarshalText implements encoding.TextMarshaler.
func (s Selection) MarshalText() ([]byte, error) { return []byte(s), nil }

// UnmarshalText accepts All (or empty) and every category.
func (s *Selection) UnmarshalText(text []byte) error {
	parsed, err := ParseSelection(string(text))
	if err != nil {
		return err
	}
	*s = Selection(parsed)
	return nil
}
