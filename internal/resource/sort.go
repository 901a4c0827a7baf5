package resource

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption selects the ordering of a resource list.
type SortOption string

const (
	SortDateNewest       SortOption = "date-newest"
	SortDateOldest       SortOption = "date-oldest"
	SortCategory         SortOption = "category"
	SortDurationShortest SortOption = "duration-shortest"
	SortDurationLongest  SortOption = "duration-longest"
)

// DefaultSort is the ordering used when none is chosen.
const DefaultSort = SortDateNewest

// ErrUnknownSort is returned by ParseSortOption for unsupported options.
var ErrUnknownSort = errors.New("unknown sort option")

var sortOptions = []SortOption{
	SortDateNewest,
	SortDateOldest,
	SortCategory,
	SortDurationShortest,
	SortDurationLongest,
}

var sortLabels = map[SortOption]string{
	SortDateNewest:       "Newest First",
	SortDateOldest:       "Oldest First",
	SortCategory:         "By Category",
	SortDurationShortest: "Shortest First",
	SortDurationLongest:  "Longest First",
}

// SortOptions returns every option in menu order.
func SortOptions() []SortOption {
	out := make([]SortOption, len(sortOptions))
	copy(out, sortOptions)
	return out
}

// Label returns the menu label for the option.
func (o SortOption) Label() string {
	if l, ok := sortLabels[o]; ok {
		return l
	}
	return string(o)
}

// Next returns the option after o in menu order, wrapping around.
func (o SortOption) Next() SortOption {
	i := slices.Index(sortOptions, o)
	return sortOptions[(i+1)%len(sortOptions)]
}

// ParseSortOption validates a user-supplied option. Empty means DefaultSort.
func ParseSortOption(s string) (SortOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSort, nil
	}
	for _, o := range sortOptions {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownSort, s)
}

// Sort returns a sorted copy of resources. The input slice is never
// reordered. Ties keep their input order. Unknown options return the copy
// unchanged.
func Sort(resources []Resource, opt SortOption) []Resource {
	sorted := slices.Clone(resources)
	if sorted == nil {
		sorted = []Resource{}
	}

	switch opt {
	case SortDateNewest:
		slices.SortStableFunc(sorted, func(a, b Resource) int {
			return b.Uploaded().Compare(a.Uploaded())
		})
	case SortDateOldest:
		slices.SortStableFunc(sorted, func(a, b Resource) int {
			return a.Uploaded().Compare(b.Uploaded())
		})
	case SortCategory:
		// Collators keep scratch buffers and are not safe to share.
		col := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b Resource) int {
			return col.CompareString(string(a.Category), string(b.Category))
		})
	case SortDurationShortest:
		slices.SortStableFunc(sorted, func(a, b Resource) int {
			return cmp.Compare(a.Duration, b.Duration)
		})
	case SortDurationLongest:
		slices.SortStableFunc(sorted, func(a, b Resource) int {
			return cmp.Compare(b.Duration, a.Duration)
		})
	}
	return sorted
}
