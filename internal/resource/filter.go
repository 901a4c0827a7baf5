package resource

import "strings"

// Filter narrows a resource list by category and free-text search.
type Filter struct {
	Search   string   // matches title or any tag
	Category Category // All (or empty) matches every category
}

// Apply returns the resources matching both the category and the search
// query, in input order.
func (f Filter) Apply(resources []Resource) []Resource {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if !f.matchesCategory(r) {
			continue
		}
		if q != "" && !matchesSearch(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterResources is shorthand for Filter{Search: query, Category: category}.Apply.
func FilterResources(resources []Resource, query string, category Category) []Resource {
	return Filter{Search: query, Category: category}.Apply(resources)
}

// ByID returns the first resource with the given ID, or nil.
func ByID(resources []Resource, id string) *Resource {
	for i := range resources {
		if resources[i].ID == id {
			return &resources[i]
		}
	}
	return nil
}

// CategoryCounts returns the number of resources per category.
func CategoryCounts(resources []Resource) map[Category]int {
	counts := make(map[Category]int)
	for _, r := range resources {
		counts[r.Category]++
	}
	return counts
}

func (f Filter) matchesCategory(r Resource) bool {
	return f.Category == "" || f.Category == All || r.Category == f.Category
}

// matchesSearch expects q already trimmed and lower-cased.
func matchesSearch(r Resource, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// TagCounts returns how many resources carry each tag. Tags are compared
// case-insensitively and reported in lower case.
func TagCounts(resources []Resource) map[string]int {
	counts := make(map[string]int)
	for _, r := range resources {
		seen := make(map[string]bool, len(r.Tags))
		for _, t := range r.Tags {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			counts[t]++
		}
	}
	return counts
}
