package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/wisdomwellbeing/resourcectl/internal/loader"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/server"
	"github.com/wisdomwellbeing/resourcectl/internal/source"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
	"go.uber.org/zap"
)

var resources = []resource.Resource{
	{ID: "1", Category: resource.Podcasts, Title: "Mindful Moments", Tags: []string{"wellbeing", "mindfulness"}, Duration: 25, Description: "A calming podcast", DateUploaded: "2025-07-10"},
	{ID: "2", Category: resource.Articles, Title: "The Science of Sleep", Tags: []string{"sleep"}, Duration: 8, DateUploaded: "2025-06-22"},
	{ID: "3", Category: resource.Fitness, Title: "Morning Stretch", Tags: []string{"mobility"}, Duration: 10, DateUploaded: "2025-08-05"},
	{ID: "4", Category: resource.Podcasts, Title: "Talking Resilience", Tags: []string{"resilience"}, Duration: 42, DateUploaded: "2025-06-14"},
}

func newLoadedHandler(t *testing.T) *server.Handler {
	t.Helper()
	ld := loader.New(source.Static(resources))
	if st := ld.Load(context.Background()); st.Failed() {
		t.Fatalf("Load failed: %s", st.Err)
	}
	return server.NewHandler(ld, view.DefaultOptions(), zap.NewNop())
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServePage_OK(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	rec := do(t, h, "GET", "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Mindful Moments") || !strings.Contains(body, `class="category-section"`) {
		t.Error("default page should list grouped resources")
	}
}

func TestServePage_BadCategory(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	rec := do(t, h, "GET", "/?category=Movies")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestServePage_Loading(t *testing.T) {
	ld := loader.New(source.Static(resources))
	h := server.NewHandler(ld, view.DefaultOptions(), nil).Routes()

	rec := do(t, h, "GET", "/")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), view.LoadingMessage) {
		t.Error("loading page missing message")
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After not set")
	}
}

func TestServePage_Failed(t *testing.T) {
	ld := loader.New(source.Func(func(context.Context) ([]resource.Resource, error) {
		return nil, errors.New("catalog unavailable")
	}))
	ld.Load(context.Background())
	h := server.NewHandler(ld, view.DefaultOptions(), nil).Routes()

	rec := do(t, h, "GET", "/")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "catalog unavailable") {
		t.Error("error page missing loader message")
	}
}

func TestServeDetail(t *testing.T) {
	h := newLoadedHandler(t).Routes()

	rec := do(t, h, "GET", "/resources/1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "25 minutes") {
		t.Error("detail page missing duration")
	}

	if rec := do(t, h, "GET", "/resources/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}

func TestServeDetail_BackLink(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	cases := []struct {
		referer string
		want    string
	}{
		{"", `href="/"`},
		{"http://example.com/?q=sleep", `href="http://example.com/?q=sleep"`},
		{"https://evil.example/?x=://example.com/", `href="/"`},
		{"http://example.com.evil.example/", `href="/"`},
		{"javascript://example.com/", `href="/"`},
	}
	for _, c := range cases {
		req := httptest.NewRequest("GET", "/resources/1", nil)
		if c.referer != "" {
			req.Header.Set("Referer", c.referer)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if !strings.Contains(rec.Body.String(), `class="back" `+c.want) {
			t.Errorf("Referer %q: back link not %s", c.referer, c.want)
		}
	}
}

func TestServeResources_Grouped(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	rec := do(t, h, "GET", "/api/resources")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got server.ResourcesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Grouped || got.Total != 4 {
		t.Errorf("grouped=%v total=%d", got.Grouped, got.Total)
	}
	if got.Items[0].ID != "3" {
		t.Errorf("newest first: first item = %s, want 3", got.Items[0].ID)
	}
	if len(got.Groups) != 3 || got.Groups[0].Category != resource.Fitness {
		t.Errorf("groups = %+v", got.Groups)
	}
	if got.Category.Category() != resource.All || got.Sort != resource.DefaultSort {
		t.Errorf("category=%q sort=%q, want All and default sort", got.Category, got.Sort)
	}
}

func TestServeResources_FilterAndSort(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	v := url.Values{"category": {"podcasts"}, "sort": {"duration-longest"}}
	rec := do(t, h, "GET", "/api/resources?"+v.Encode())

	var got server.ResourcesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Grouped {
		t.Error("category selection should be flat")
	}
	if got.Total != 2 || got.Items[0].ID != "4" || got.Items[1].ID != "1" {
		t.Errorf("items = %+v", got.Items)
	}
}

func TestServeResources_UnknownSortFallsBack(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	rec := do(t, h, "GET", "/api/resources?sort=alphabetical")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got server.ResourcesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Sort != resource.DefaultSort {
		t.Errorf("sort = %q, want default", got.Sort)
	}
}

func TestServeResources_ETag(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	rec := do(t, h, "GET", "/api/resources")
	tag := rec.Header().Get("ETag")
	if tag == "" {
		t.Fatal("ETag not set")
	}

	req := httptest.NewRequest("GET", "/api/resources", nil)
	req.Header.Set("If-None-Match", tag)
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d, want 304", rec2.Code)
	}
}

func TestServeResource(t *testing.T) {
	h := newLoadedHandler(t).Routes()

	rec := do(t, h, "GET", "/api/resources/2")
	var got resource.Resource
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Title != "The Science of Sleep" {
		t.Errorf("title = %q", got.Title)
	}

	if rec := do(t, h, "GET", "/api/resources/99"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeCategories(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	rec := do(t, h, "GET", "/api/categories")

	var got []server.CategoryCount
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if got[0].Category != resource.Podcasts || got[0].Count != 2 {
		t.Errorf("first = %+v", got[0])
	}
	if got[3].Category != resource.Recipes || got[3].Count != 0 {
		t.Errorf("recipes = %+v", got[3])
	}
}

func TestServeAPI_LoadingIs503(t *testing.T) {
	ld := loader.New(source.Static(resources))
	h := server.NewHandler(ld, view.DefaultOptions(), nil).Routes()

	for _, path := range []string{"/api/resources", "/api/resources/1", "/api/categories"} {
		if rec := do(t, h, "GET", path); rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s status = %d, want 503", path, rec.Code)
		}
	}
	if rec := do(t, h, "GET", "/api/state"); rec.Code != http.StatusOK {
		t.Errorf("state status = %d", rec.Code)
	}
}

func TestServeRefetch(t *testing.T) {
	calls := make(chan struct{}, 4)
	ld := loader.New(source.Func(func(context.Context) ([]resource.Resource, error) {
		calls <- struct{}{}
		return resources, nil
	}))
	ld.Load(context.Background())
	<-calls
	h := server.NewHandler(ld, view.DefaultOptions(), nil).Routes()

	rec := do(t, h, "POST", "/api/refetch")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("refetch did not reach the source")
	}
}

func TestServeRefetch_FormRedirects(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	req := httptest.NewRequest("POST", "/api/refetch", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Errorf("status = %d location = %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestServeHealth(t *testing.T) {
	h := newLoadedHandler(t).Routes()
	rec := do(t, h, "GET", "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got map[string]any
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got["resources"].(float64) != 4 {
		t.Errorf("resources = %v", got["resources"])
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	h := newLoadedHandler(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Serve(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
