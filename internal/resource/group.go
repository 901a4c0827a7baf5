package resource

// Group holds the resources of one category.
type Group struct {
	Category  Category   `json:"category"`
	Resources []Resource `json:"resources"`
}

// Groups is an insertion-ordered mapping from category to resources. The
// order is that of each category's first appearance in the grouped input.
type Groups []Group

// GroupByCategory buckets resources by category, keeping input order inside
// each bucket.
func GroupByCategory(resources []Resource) Groups {
	groups := Groups{}
	index := make(map[Category]int)
	for _, r := range resources {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, Group{Category: r.Category})
		}
		groups[i].Resources = append(groups[i].Resources, r)
	}
	return groups
}

// Get returns the bucket for a category and whether it exists.
func (g Groups) Get(c Category) ([]Resource, bool) {
	for _, grp := range g {
		if grp.Category == c {
			return grp.Resources, true
		}
	}
	return nil, false
}

// Categories returns the keys in order.
func (g Groups) Categories() []Category {
	out := make([]Category, len(g))
	for i, grp := range g {
		out[i] = grp.Category
	}
	return out
}

// Len returns the total number of grouped resources.
func (g Groups) Len() int {
	n := 0
	for _, grp := range g {
		n += len(grp.Resources)
	}
	return n
}
