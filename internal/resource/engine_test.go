package resource_test

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
)

// --- Filter ---

func TestFilter_AllNoQuery(t *testing.T) {
	rs := sample(t)
	got := resource.FilterResources(rs, "", resource.All)
	if len(got) != len(rs) {
		t.Errorf("expected %d, got %d", len(rs), len(got))
	}
}

func TestFilter_ByCategory(t *testing.T) {
	got := resource.FilterResources(sample(t), "", resource.Podcasts)
	if len(got) != 1 || got[0].Category != resource.Podcasts {
		t.Errorf("category filter: got %v", ids(got))
	}
}

func TestFilter_BySearch_Title(t *testing.T) {
	got := resource.FilterResources(sample(t), "stretch", resource.All)
	if len(got) != 1 || got[0].Title != "Morning Stretch" {
		t.Errorf("search by title: got %v", ids(got))
	}
}

func TestFilter_BySearch_Tag(t *testing.T) {
	got := resource.FilterResources(sample(t), "sleep", resource.All)
	if !slices.Equal(ids(got), []string{"2", "4"}) {
		t.Errorf("search by tag: got %v", ids(got))
	}
}

func TestFilter_CategoryAndSearch(t *testing.T) {
	got := resource.FilterResources(sample(t), "wellbeing", resource.Articles)
	if len(got) != 1 || got[0].Category != resource.Articles {
		t.Errorf("combined filter: got %v", ids(got))
	}
}

func TestFilter_CaseInsensitiveAndTrimmed(t *testing.T) {
	got := resource.FilterResources(sample(t), "  MINDFUL  ", resource.All)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("case-insensitive filter: got %v", ids(got))
	}
}

func TestFilter_WhitespaceQueryMatchesAll(t *testing.T) {
	rs := sample(t)
	if got := resource.FilterResources(rs, "   ", resource.All); len(got) != len(rs) {
		t.Errorf("blank query should match all, got %d", len(got))
	}
}

func TestFilter_NoMatch(t *testing.T) {
	got := resource.FilterResources(sample(t), "nonexistent", resource.All)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFilter_EmptyCategoryMeansAll(t *testing.T) {
	rs := sample(t)
	if got := (resource.Filter{}).Apply(rs); len(got) != len(rs) {
		t.Errorf("zero Filter should match all, got %d", len(got))
	}
}

func TestFilter_SubsetPreservesOrder(t *testing.T) {
	rs := sample(t)
	got := resource.FilterResources(rs, "r", resource.All)
	j := 0
	for _, r := range got {
		for j < len(rs) && rs[j].ID != r.ID {
			j++
		}
		if j == len(rs) {
			t.Fatalf("result %v is not an ordered subsequence of input", ids(got))
		}
		j++
	}
}

func TestFilter_Idempotent(t *testing.T) {
	rs := sample(t)
	for _, q := range []string{"", "sleep", "routine", "zzz"} {
		for _, c := range resource.Selections() {
			once := resource.FilterResources(rs, q, c)
			twice := resource.FilterResources(once, q, c)
			if !reflect.DeepEqual(once, twice) {
				t.Errorf("filter(%q,%q) not idempotent", q, c)
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	rs := sample(t)
	before := slices.Clone(rs)
	_ = resource.FilterResources(rs, "sleep", resource.Meditation)
	if !reflect.DeepEqual(rs, before) {
		t.Error("Filter mutated its input")
	}
}

// --- Sort ---

func TestSort_DateNewest(t *testing.T) {
	got := resource.Sort(sample(t), resource.SortDateNewest)
	if got[0].DateUploaded != "2025-08-05" {
		t.Errorf("newest first = %q, want 2025-08-05", got[0].DateUploaded)
	}
	if !slices.Equal(ids(got), []string{"3", "4", "1", "2"}) {
		t.Errorf("date-newest order = %v", ids(got))
	}
}

func TestSort_DateOldestIsReverseOfNewest(t *testing.T) {
	rs := sample(t)
	newest := ids(resource.Sort(rs, resource.SortDateNewest))
	oldest := ids(resource.Sort(rs, resource.SortDateOldest))
	slices.Reverse(newest)
	if !slices.Equal(newest, oldest) {
		t.Errorf("reverse(newest) = %v, oldest = %v", newest, oldest)
	}
}

func TestSort_Category(t *testing.T) {
	got := resource.Sort(sample(t), resource.SortCategory)
	want := []resource.Category{resource.Articles, resource.Fitness, resource.Meditation, resource.Podcasts}
	for i, r := range got {
		if r.Category != want[i] {
			t.Errorf("[%d] category = %q, want %q", i, r.Category, want[i])
		}
	}
}

func TestSort_Duration(t *testing.T) {
	rs := sample(t)
	if got := ids(resource.Sort(rs, resource.SortDurationShortest)); !slices.Equal(got, []string{"2", "3", "4", "1"}) {
		t.Errorf("duration-shortest = %v", got)
	}
	if got := ids(resource.Sort(rs, resource.SortDurationLongest)); !slices.Equal(got, []string{"1", "4", "3", "2"}) {
		t.Errorf("duration-longest = %v", got)
	}
}

func TestSort_DurationExtremes(t *testing.T) {
	rs := []resource.Resource{
		{ID: "max", Duration: math.MaxInt},
		{ID: "min", Duration: math.MinInt},
		{ID: "zero", Duration: 0},
	}
	if got := ids(resource.Sort(rs, resource.SortDurationShortest)); !slices.Equal(got, []string{"min", "zero", "max"}) {
		t.Errorf("duration-shortest = %v", got)
	}
	if got := ids(resource.Sort(rs, resource.SortDurationLongest)); !slices.Equal(got, []string{"max", "zero", "min"}) {
		t.Errorf("duration-longest = %v", got)
	}
}

func TestSort_UnknownOptionKeepsOrder(t *testing.T) {
	rs := sample(t)
	got := resource.Sort(rs, resource.SortOption("title"))
	if !slices.Equal(ids(got), ids(rs)) {
		t.Errorf("unknown option reordered: %v", ids(got))
	}
	got[0].Title = "changed"
	if rs[0].Title == "changed" {
		t.Error("unknown option returned the input slice instead of a copy")
	}
}

func TestSort_StableOnTies(t *testing.T) {
	rs := []resource.Resource{
		{ID: "a", Category: resource.Recipes, Duration: 10, DateUploaded: "2025-01-01"},
		{ID: "b", Category: resource.Fitness, Duration: 5, DateUploaded: "2025-01-01"},
		{ID: "c", Category: resource.Recipes, Duration: 10, DateUploaded: "2025-01-01"},
		{ID: "d", Category: resource.Fitness, Duration: 5, DateUploaded: "2025-01-01"},
	}
	if got := ids(resource.Sort(rs, resource.SortDurationShortest)); !slices.Equal(got, []string{"b", "d", "a", "c"}) {
		t.Errorf("duration ties = %v", got)
	}
	if got := ids(resource.Sort(rs, resource.SortDateNewest)); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("date ties = %v", got)
	}
	if got := ids(resource.Sort(rs, resource.SortCategory)); !slices.Equal(got, []string{"b", "d", "a", "c"}) {
		t.Errorf("category ties = %v", got)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	rs := sample(t)
	before := slices.Clone(rs)
	for _, opt := range resource.SortOptions() {
		_ = resource.Sort(rs, opt)
	}
	if !reflect.DeepEqual(rs, before) {
		t.Error("Sort reordered its input")
	}
}

func TestSort_Empty(t *testing.T) {
	if got := resource.Sort(nil, resource.SortDateNewest); got == nil || len(got) != 0 {
		t.Errorf("Sort(nil) = %#v, want empty slice", got)
	}
}

func TestSort_TimestampDates(t *testing.T) {
	rs := []resource.Resource{
		{ID: "early", DateUploaded: "2025-07-10T08:00:00Z"},
		{ID: "late", DateUploaded: "2025-07-10T20:00:00Z"},
	}
	if got := ids(resource.Sort(rs, resource.SortDateNewest)); got[0] != "late" {
		t.Errorf("timestamp sort = %v", got)
	}
}

// --- Group ---

func TestGroupByCategory_FirstAppearanceOrder(t *testing.T) {
	rs := []resource.Resource{
		{ID: "1", Category: resource.Fitness},
		{ID: "2", Category: resource.Podcasts},
		{ID: "3", Category: resource.Fitness},
		{ID: "4", Category: resource.Articles},
	}
	g := resource.GroupByCategory(rs)
	want := []resource.Category{resource.Fitness, resource.Podcasts, resource.Articles}
	if !slices.Equal(g.Categories(), want) {
		t.Errorf("categories = %v, want %v", g.Categories(), want)
	}
	fit, ok := g.Get(resource.Fitness)
	if !ok || !slices.Equal(ids(fit), []string{"1", "3"}) {
		t.Errorf("Fitness bucket = %v", ids(fit))
	}
}

func TestGroupByCategory_PreservesCount(t *testing.T) {
	rs := sample(t)
	g := resource.GroupByCategory(rs)
	if g.Len() != len(rs) {
		t.Errorf("grouped %d, want %d", g.Len(), len(rs))
	}
	for _, grp := range g {
		for _, r := range grp.Resources {
			if r.Category != grp.Category {
				t.Errorf("resource %s in bucket %s", r.ID, grp.Category)
			}
		}
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	g := resource.GroupByCategory(nil)
	if g == nil || len(g) != 0 {
		t.Errorf("GroupByCategory(nil) = %#v, want empty", g)
	}
	if _, ok := g.Get(resource.Podcasts); ok {
		t.Error("empty groups should not contain a bucket")
	}
}
