package resource_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
)

var sampleYAML = []byte(`
- id: "1"
  category: Podcasts
  title: Mindful Moments
  thumbnail: test.jpg
  tags: [wellbeing, mindfulness, relaxation]
  duration: 25
  description: A calming podcast
  date_uploaded: "2025-07-10"

- id: "2"
  category: Articles
  title: The Science of Sleep
  thumbnail: test.jpg
  tags: [wellbeing, sleep, science]
  duration: 8
  description: Sleep research
  date_uploaded: "2025-06-22"

- id: "3"
  category: Fitness
  title: Morning Stretch
  thumbnail: test.jpg
  tags: [mobility, energy, routine]
  duration: 10
  description: Stretching routine
  date_uploaded: "2025-08-05"

- id: "4"
  category: Meditation
  title: Stress Relief
  thumbnail: test.jpg
  tags: [relaxation, routine, sleep]
  duration: 15
  description: Guided meditation
  date_uploaded: "2025-07-28"
`)

func sample(t *testing.T) []resource.Resource {
	t.Helper()
	rs, err := resource.Parse(sampleYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return rs
}

func ids(rs []resource.Resource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

// --- Parse / Marshal ---

func TestParse_ValidYAML(t *testing.T) {
	rs := sample(t)
	if len(rs) != 4 {
		t.Fatalf("expected 4 resources, got %d", len(rs))
	}
	if rs[1].Category != resource.Articles {
		t.Errorf("rs[1].Category = %q, want %q", rs[1].Category, resource.Articles)
	}
	if rs[0].Duration != 25 {
		t.Errorf("rs[0].Duration = %d, want 25", rs[0].Duration)
	}
}

func TestParse_Empty(t *testing.T) {
	rs, err := resource.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if len(rs) != 0 {
		t.Errorf("expected 0 resources, got %d", len(rs))
	}
}

func TestParse_UnknownCategory(t *testing.T) {
	data := []byte(`
- id: x
  category: Movies
  title: Invented
  duration: 1
  date_uploaded: "2025-01-01"
`)
	_, err := resource.Parse(data)
	if !errors.Is(err, resource.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestParse_CategoryCaseInsensitive(t *testing.T) {
	data := []byte(`
- id: x
  category: podcasts
  title: Lower
  duration: 1
  date_uploaded: "2025-01-01"
`)
	rs, err := resource.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rs[0].Category != resource.Podcasts {
		t.Errorf("Category = %q, want %q", rs[0].Category, resource.Podcasts)
	}
}

func TestParse_BadDate(t *testing.T) {
	data := []byte(`
- id: x
  category: Recipes
  title: Soup
  duration: 20
  date_uploaded: "next tuesday"
`)
	if _, err := resource.Parse(data); err == nil {
		t.Error("expected error for unparseable date, got nil")
	}
}

func TestParse_NegativeDuration(t *testing.T) {
	data := []byte(`
- id: x
  category: Recipes
  title: Soup
  duration: -5
  date_uploaded: "2025-01-01"
`)
	if _, err := resource.Parse(data); err == nil {
		t.Error("expected error for negative duration, got nil")
	}
}

func TestParse_DuplicateID(t *testing.T) {
	data := []byte(`
- {id: a, category: Recipes, title: One, duration: 1, date_uploaded: "2025-01-01"}
- {id: a, category: Fitness, title: Two, duration: 2, date_uploaded: "2025-01-02"}
`)
	_, err := resource.Parse(data)
	if !errors.Is(err, resource.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestParse_GeneratesMissingID(t *testing.T) {
	data := []byte(`
- {category: Recipes, title: One, duration: 1, date_uploaded: "2025-01-01"}
- {category: Recipes, title: Two, duration: 1, date_uploaded: "2025-01-01"}
`)
	rs, err := resource.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rs[0].ID == "" || rs[1].ID == "" {
		t.Fatal("expected generated ids")
	}
	if rs[0].ID == rs[1].ID {
		t.Error("generated ids should differ")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := resource.Parse([]byte(":: bad yaml ["))
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestSaveLoad(t *testing.T) {
	rs := sample(t)
	path := filepath.Join(t.TempDir(), "resources.yml")
	if err := resource.Save(path, rs); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := resource.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, rs) {
		t.Errorf("Load after Save differs:\n got %+v\nwant %+v", loaded, rs)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := resource.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

// --- Category / SortOption ---

func TestParseSelection(t *testing.T) {
	cases := []struct {
		in      string
		want    resource.Category
		wantErr bool
	}{
		{"", resource.All, false},
		{"all", resource.All, false},
		{"All", resource.All, false},
		{"Meditation", resource.Meditation, false},
		{" fitness ", resource.Fitness, false},
		{"Movies", "", true},
	}
	for _, c := range cases {
		got, err := resource.ParseSelection(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseSelection(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("ParseSelection(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseCategory_RejectsAll(t *testing.T) {
	if _, err := resource.ParseCategory("All"); err == nil {
		t.Error("All is a selector, not a category")
	}
}

func TestSelections(t *testing.T) {
	sel := resource.Selections()
	if len(sel) != 7 || sel[0] != resource.All {
		t.Errorf("Selections = %v", sel)
	}
}

func TestParseSortOption(t *testing.T) {
	got, err := resource.ParseSortOption("")
	if err != nil || got != resource.SortDateNewest {
		t.Errorf("empty option = %q, %v; want default", got, err)
	}
	got, err = resource.ParseSortOption("Duration-Longest")
	if err != nil || got != resource.SortDurationLongest {
		t.Errorf("ParseSortOption = %q, %v", got, err)
	}
	if _, err := resource.ParseSortOption("title"); !errors.Is(err, resource.ErrUnknownSort) {
		t.Errorf("expected ErrUnknownSort, got %v", err)
	}
}

func TestSelection_JSON(t *testing.T) {
	for _, c := range []resource.Category{resource.All, resource.Meditation} {
		data, err := json.Marshal(resource.Selection(c))
		if err != nil {
			t.Fatalf("Marshal(%q): %v", c, err)
		}
		var got resource.Selection
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got.Category() != c {
			t.Errorf("round trip of %q = %q", c, got)
		}
	}
	var sel resource.Selection
	if err := json.Unmarshal([]byte(`"Movies"`), &sel); !errors.Is(err, resource.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
	var cat resource.Category
	if err := json.Unmarshal([]byte(`"All"`), &cat); err == nil {
		t.Error("Category should still reject All")
	}
}

func TestSortOption_NextWraps(t *testing.T) {
	if got := resource.SortDurationLongest.Next(); got != resource.SortDateNewest {
		t.Errorf("Next = %q, want %q", got, resource.SortDateNewest)
	}
	if got := resource.SortOption("bogus").Next(); got != resource.SortDateNewest {
		t.Errorf("Next of unknown = %q", got)
	}
}

func TestSummaryTags(t *testing.T) {
	r := resource.Resource{Tags: []string{"a", "b", "c", "d"}}
	got := r.SummaryTags()
	if len(got) != 3 {
		t.Fatalf("SummaryTags len = %d, want 3", len(got))
	}
	_ = append(got, "x")
	if r.Tags[3] != "d" {
		t.Errorf("appending to SummaryTags overwrote Tags[3] = %q", r.Tags[3])
	}
}

// --- ByID / counts ---

func TestByID(t *testing.T) {
	rs := sample(t)
	if r := resource.ByID(rs, "3"); r == nil || r.Title != "Morning Stretch" {
		t.Errorf("ByID(3) = %+v", r)
	}
	if resource.ByID(rs, "missing") != nil {
		t.Error("ByID returned non-nil for missing resource")
	}
}

func TestCategoryCounts(t *testing.T) {
	counts := resource.CategoryCounts(sample(t))
	if counts[resource.Podcasts] != 1 || counts[resource.Recipes] != 0 {
		t.Errorf("counts = %v", counts)
	}
}

func TestTagCounts(t *testing.T) {
	counts := resource.TagCounts(sample(t))
	if counts["wellbeing"] != 2 || counts["relaxation"] != 2 || counts["science"] != 1 {
		t.Errorf("counts = %v", counts)
	}
	dup := []resource.Resource{{Tags: []string{"Sleep", "sleep", " "}}}
	if got := resource.TagCounts(dup); len(got) != 1 || got["sleep"] != 1 {
		t.Errorf("duplicate tags on one resource = %v", got)
	}
}
