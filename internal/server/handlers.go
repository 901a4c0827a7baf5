package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/wisdomwellbeing/resourcectl/internal/htmlpage"
	"github.com/wisdomwellbeing/resourcectl/internal/loader"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/util"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
	"go.uber.org/zap"
)

// ResourcesResponse is the body of GET /api/resources.
type ResourcesResponse struct {
	Query    string              `json:"query"`
	Category resource.Selection  `json:"category"`
	Sort     resource.SortOption `json:"sort"`
	Items    []resource.Resource `json:"items"`
	Grouped  bool                `json:"grouped"`
	Groups   resource.Groups     `json:"groups,omitempty"`
	Total    int                 `json:"total"`
}

// CategoryCount is one entry of GET /api/categories.
type CategoryCount struct {
	Category resource.Category `json:"category"`
	Count    int               `json:"count"`
}

// ServePage handles GET /.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	st := h.Loader.State()
	if !h.ready(st) {
		h.writeStatusPage(w, st)
		return
	}
	opts, err := h.options(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	page := htmlpage.Page{View: view.Compose(st.Resources, opts), Interactive: true, DetailPath: "/resources/"}
	if err := htmlpage.Render(&buf, page); err != nil {
		h.Log.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

// ServeDetail handles GET /resources/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	st := h.Loader.State()
	if !h.ready(st) {
		h.writeStatusPage(w, st)
		return
	}
	res := resource.ByID(st.Resources, chi.URLParam(r, "id"))
	if res == nil {
		http.NotFound(w, r)
		return
	}

	back := "/"
	if ref := r.Referer(); sameOrigin(ref, r) {
		back = ref
	}
	var buf bytes.Buffer
	if err := htmlpage.RenderDetail(&buf, *res, back); err != nil {
		h.Log.Error("render detail", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

// sameOrigin reports whether ref is an http(s) URL on the host serving r.
func sameOrigin(ref string, r *http.Request) bool {
	if ref == "" {
		return false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host == r.Host
}

// ServeResources handles GET /api/resources.
func (h *Handler) ServeResources(w http.ResponseWriter, r *http.Request) {
	st := h.Loader.State()
	if !h.ready(st) {
		writeUnavailable(w, st)
		return
	}
	opts, err := h.options(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, "%v", err)
		return
	}
	m := view.Compose(st.Resources, opts)
	writeJSONCached(w, r, ResourcesResponse{
		Query:    m.Options.Query,
		Category: resource.Selection(m.Options.Category),
		Sort:     m.Options.Sort,
		Items:    m.Items,
		Grouped:  m.Grouped,
		Groups:   m.Groups,
		Total:    len(m.Items),
	})
}

// ServeResource handles GET /api/resources/{id}.
func (h *Handler) ServeResource(w http.ResponseWriter, r *http.Request) {
	st := h.Loader.State()
	if !h.ready(st) {
		writeUnavailable(w, st)
		return
	}
	id := chi.URLParam(r, "id")
	res := resource.ByID(st.Resources, id)
	if res == nil {
		httpError(w, http.StatusNotFound, "resource %q not found", id)
		return
	}
	writeJSONCached(w, r, res)
}

// ServeCategories handles GET /api/categories.
func (h *Handler) ServeCategories(w http.ResponseWriter, r *http.Request) {
	st := h.Loader.State()
	if !h.ready(st) {
		writeUnavailable(w, st)
		return
	}
	counts := resource.CategoryCounts(st.Resources)
	out := make([]CategoryCount, 0, len(resource.Categories()))
	for _, c := range resource.Categories() {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	writeJSONCached(w, r, out)
}

// ServeState handles GET /api/state.
func (h *Handler) ServeState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Loader.State())
}

// ServeRefetch handles POST /api/refetch. The load runs in the background;
// form posts from the error page are redirected back to the page.
func (h *Handler) ServeRefetch(w http.ResponseWriter, r *http.Request) {
	h.Loader.Refetch(h.ctx)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"loading": true})
}

// ServeHealth handles GET /healthz.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	st := h.Loader.State()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"loading":   st.Loading,
		"error":     st.Err,
		"resources": len(st.Resources),
	})
}

// ready reports whether there is a settled, successful catalog to serve.
func (h *Handler) ready(st loader.State) bool {
	return !st.Loading && !st.Failed()
}

// options reads q, category and sort. Unknown sort values fall back to the
// configured default; unknown categories are an error.
func (h *Handler) options(r *http.Request) (view.Options, error) {
	opts := h.Defaults
	q := r.URL.Query()

	if q.Has("q") {
		opts.Query = q.Get("q")
	}
	if q.Has("category") {
		c, err := resource.ParseSelection(q.Get("category"))
		if err != nil {
			return view.Options{}, err
		}
		opts.Category = c
	}
	if q.Has("sort") {
		if s, err := resource.ParseSortOption(q.Get("sort")); err == nil {
			opts.Sort = s
		}
	}
	if opts.Sort == "" {
		opts.Sort = resource.DefaultSort
	}
	return opts, nil
}

func (h *Handler) writeStatusPage(w http.ResponseWriter, st loader.State) {
	var buf bytes.Buffer
	if err := htmlpage.RenderStatus(&buf, st); err != nil {
		h.Log.Error("render status", zap.Error(err))
	}
	code := http.StatusServiceUnavailable
	if st.Failed() {
		code = http.StatusBadGateway
	} else {
		w.Header().Set("Retry-After", "1")
	}
	writeHTML(w, code, buf.Bytes())
}

func writeUnavailable(w http.ResponseWriter, st loader.State) {
	if st.Failed() {
		httpError(w, http.StatusBadGateway, "%s", st.Err)
		return
	}
	w.Header().Set("Retry-After", "1")
	httpError(w, http.StatusServiceUnavailable, "%s", "resources are loading")
}

func writeHTML(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeJSONCached writes v with an ETag and answers matching conditional
// requests with 304.
func writeJSONCached(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "encoding response: %v", err)
		return
	}
	tag := util.ETag(body)
	w.Header().Set("ETag", tag)
	if r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
	w.Write([]byte("\n"))
}

func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"message": fmt.Sprintf(format, args...),
			"status":  code,
		},
	})
}
