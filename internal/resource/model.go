package resource

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Resource is one entry in the wellbeing catalog.
type Resource struct {
	ID           string   `yaml:"id" json:"id"`
	Category     Category `yaml:"category" json:"category"`
	Title        string   `yaml:"title" json:"title"`
	Thumbnail    string   `yaml:"thumbnail" json:"thumbnail"`
	Tags         []string `yaml:"tags,omitempty" json:"tags"`
	Duration     int      `yaml:"duration" json:"duration"` // minutes
	Description  string   `yaml:"description" json:"description"`
	DateUploaded string   `yaml:"date_uploaded" json:"date_uploaded"`
	CreatedAt    string   `yaml:"created_at,omitempty" json:"created_at,omitempty"`
}

// Date layouts accepted for DateUploaded, most specific last.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate parses a date_uploaded value into an instant.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
}

// Uploaded returns the parsed upload date. Unparseable dates yield the zero
// time; catalogs are validated on load so this only happens for hand-built
// records.
func (r Resource) Uploaded() time.Time {
	t, _ := ParseDate(r.DateUploaded)
	return t
}

// SummaryTags returns at most the first three tags, as shown on cards and rows.
func (r Resource) SummaryTags() []string {
	if len(r.Tags) <= 3 {
		return r.Tags
	}
	return slices.Clip(r.Tags[:3])
}

var errInvalidResource = errors.New("invalid resource")

// Validate checks the record against the catalog invariants.
func (r Resource) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: missing id", errInvalidResource)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w %q: %w %q", errInvalidResource, r.ID, ErrUnknownCategory, string(r.Category))
	}
	if r.Duration < 0 {
		return fmt.Errorf("%w %q: negative duration %d", errInvalidResource, r.ID, r.Duration)
	}
	if _, err := ParseDate(r.DateUploaded); err != nil {
		return fmt.Errorf("%w %q: %w", errInvalidResource, r.ID, err)
	}
	return nil
}
