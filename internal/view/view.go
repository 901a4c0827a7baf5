// Package view derives what a presentation layer renders from the loaded
// resources and the user's current filter choices.
package view

import (
	"strings"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
)

// EmptyMessage is shown when no resource survives the filters.
const EmptyMessage = "No resources found matching your criteria"

// Options are the user-controlled inputs of the view.
type Options struct {
	Query    string
	Category resource.Category
	Sort     resource.SortOption
}

// DefaultOptions returns the state a fresh browser starts in.
func DefaultOptions() Options {
	return Options{Category: resource.All, Sort: resource.DefaultSort}
}

// Model is the derived view.
type Model struct {
	Options Options
	Items   []resource.Resource // filtered, then sorted
	Grouped bool                // render Groups instead of a flat list
	Groups  resource.Groups     // only set when Grouped
}

// Empty reports whether the empty-state message should replace the content.
func (m Model) Empty() bool { return len(m.Items) == 0 }

// Compose filters then sorts resources, and groups them by category when no
// category or search narrows the list.
func Compose(resources []resource.Resource, opts Options) Model {
	if opts.Category == "" {
		opts.Category = resource.All
	}
	items := resource.Sort(resource.FilterResources(resources, opts.Query, opts.Category), opts.Sort)

	m := Model{Options: opts, Items: items}
	if opts.Category == resource.All && strings.TrimSpace(opts.Query) == "" && len(items) > 0 {
		m.Grouped = true
		m.Groups = resource.GroupByCategory(items)
	}
	return m
}
