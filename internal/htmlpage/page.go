// Package htmlpage renders the resource catalog as HTML.
package htmlpage

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/wisdomwellbeing/resourcectl/internal/loader"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/util"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

// Page is the input of Render.
type Page struct {
	View view.Model

	// Interactive pages carry a filter form and link cards to detail pages
	// served under DetailPath. Static pages (written by WriteFile) show a
	// snapshot with descriptions inlined on each card.
	Interactive bool
	DetailPath  string // e.g. "/resources/"
}

var strict = bluemonday.StrictPolicy()

// Sanitize strips all markup from free text.
func Sanitize(s string) string {
	return strict.Sanitize(s)
}

// Render writes a full HTML document for p.
func Render(w io.Writer, p Page) error {
	var s strings.Builder

	writeHead(&s, view.Title)
	s.WriteString(`<body>
    <div class="sticky-nav">
`)
	writeHeader(&s)
	if p.Interactive {
		writeControls(&s, p.View.Options)
	} else {
		writeSnapshotNote(&s, p.View)
	}
	s.WriteString(`    </div>

    <div class="content-wrapper">
        <div id="library">
`)

	switch {
	case p.View.Empty():
		fmt.Fprintf(&s, `            <div class="no-results">%s</div>
`, html.EscapeString(view.EmptyMessage))
	case p.View.Grouped:
		for _, g := range p.View.Groups {
			fmt.Fprintf(&s, `
            <div class="category-section" data-category="%s">
                <h2 class="category-title">%s (%d)</h2>
                <div class="resource-grid">
`, html.EscapeString(g.Category.String()), html.EscapeString(g.Category.String()), len(g.Resources))
			for _, r := range g.Resources {
				writeCard(&s, p, r)
			}
			s.WriteString(`                </div>
            </div>
`)
		}
	default:
		s.WriteString(`            <div class="resource-grid">
`)
		for _, r := range p.View.Items {
			writeCard(&s, p, r)
		}
		s.WriteString(`            </div>
`)
	}

	s.WriteString(`        </div>
    </div>
`)
	writeFooter(&s)

	_, err := io.WriteString(w, s.String())
	return err
}

// RenderDetail writes the detail page for one resource.
func RenderDetail(w io.Writer, r resource.Resource, backHref string) error {
	var s strings.Builder

	writeHead(&s, r.Title+" - "+view.Title)
	s.WriteString(`<body>
    <div class="sticky-nav">
`)
	writeHeader(&s)
	s.WriteString(`    </div>

    <div class="content-wrapper">
        <article class="detail">
`)
	fmt.Fprintf(&s, `            <a class="back" href="%s">&larr; Back to resources</a>
`, html.EscapeString(backHref))
	if r.Thumbnail != "" {
		fmt.Fprintf(&s, `            <img class="detail-thumb" src="%s" alt="%s">
`, html.EscapeString(r.Thumbnail), html.EscapeString(r.Title))
	}
	fmt.Fprintf(&s, `            <span class="badge">%s</span>
            <h2 class="detail-title">%s</h2>
            <div class="meta">
                <span class="duration">%s</span>
                <span class="date">%s</span>
            </div>
`,
		html.EscapeString(r.Category.String()),
		html.EscapeString(r.Title),
		html.EscapeString(view.DurationLong(r.Duration)),
		html.EscapeString(view.DateLabel(r)),
	)
	writeTags(&s, r.Tags)
	fmt.Fprintf(&s, `            <p class="description">%s</p>
`, Sanitize(r.Description))
	s.WriteString(`        </article>
    </div>
`)
	writeFooter(&s)

	_, err := io.WriteString(w, s.String())
	return err
}

// RenderStatus writes the page shown while the catalog is loading or after a
// failed load.
func RenderStatus(w io.Writer, st loader.State) error {
	var s strings.Builder

	writeHead(&s, view.Title)
	s.WriteString(`<body>
    <div class="sticky-nav">
`)
	writeHeader(&s)
	s.WriteString(`    </div>

    <div class="content-wrapper">
`)
	if st.Failed() {
		fmt.Fprintf(&s, `        <div class="status error">
            <p>%s</p>
            <form method="post" action="/api/refetch"><button type="submit">Try again</button></form>
        </div>
`, html.EscapeString(st.Err))
	} else {
		fmt.Fprintf(&s, `        <div class="status loading">
            <div class="spinner"></div>
            <p>%s</p>
        </div>
`, html.EscapeString(view.LoadingMessage))
	}
	s.WriteString(`    </div>
`)
	writeFooter(&s)

	_, err := io.WriteString(w, s.String())
	return err
}

// WriteFile renders a static page to path.
func WriteFile(path string, m view.Model) error {
	var buf bytes.Buffer
	if err := Render(&buf, Page{View: m}); err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FilterURL returns the page URL for the given options, omitting defaults.
func FilterURL(opts view.Options) string {
	q := url.Values{}
	if strings.TrimSpace(opts.Query) != "" {
		q.Set("q", opts.Query)
	}
	if opts.Category != "" && opts.Category != resource.All {
		q.Set("category", opts.Category.String())
	}
	if opts.Sort != "" && opts.Sort != resource.DefaultSort {
		q.Set("sort", string(opts.Sort))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

func writeHeader(s *strings.Builder) {
	fmt.Fprintf(s, `        <header>
            <h1>%s</h1>
            <div class="subtitle">%s</div>
        </header>
`, html.EscapeString(view.Title), html.EscapeString(view.Tagline))
}

func writeControls(s *strings.Builder, opts view.Options) {
	fmt.Fprintf(s, `
        <form class="controls" method="get" action="/">
            <div class="search-box">
                <input type="text" id="search" name="q" value="%s" placeholder="%s">
            </div>
            <div class="sort-box">
                <select id="sort-by" name="sort" onchange="this.form.submit()">
`, html.EscapeString(opts.Query), html.EscapeString(view.SearchPlaceholder))
	for _, o := range resource.SortOptions() {
		selected := ""
		if o == opts.Sort {
			selected = " selected"
		}
		fmt.Fprintf(s, `                    <option value="%s"%s>%s</option>
`, html.EscapeString(string(o)), selected, html.EscapeString(o.Label()))
	}
	s.WriteString(`                </select>
            </div>
`)
	if opts.Category != "" && opts.Category != resource.All {
		fmt.Fprintf(s, `            <input type="hidden" name="category" value="%s">
`, html.EscapeString(opts.Category.String()))
	}
	s.WriteString(`        </form>

        <div class="category-filters">
`)
	for _, c := range resource.Selections() {
		class := "category-filter"
		if c == opts.Category || (opts.Category == "" && c == resource.All) {
			class += " active"
		}
		next := opts
		next.Category = c
		fmt.Fprintf(s, `            <a class="%s" href="%s">%s</a>
`, class, html.EscapeString(FilterURL(next)), html.EscapeString(c.String()))
	}
	s.WriteString(`        </div>
`)
}

func writeSnapshotNote(s *strings.Builder, m view.Model) {
	sort := m.Options.Sort
	if sort == "" {
		sort = resource.DefaultSort
	}
	parts := []string{fmt.Sprintf("%d resources", len(m.Items)), sort.Label()}
	if m.Options.Category != "" && m.Options.Category != resource.All {
		parts = append(parts, m.Options.Category.String())
	}
	if q := strings.TrimSpace(m.Options.Query); q != "" {
		parts = append(parts, fmt.Sprintf("matching %q", q))
	}
	fmt.Fprintf(s, `        <div class="snapshot">%s</div>
`, html.EscapeString(strings.Join(parts, " · ")))
}

func writeCard(s *strings.Builder, p Page, r resource.Resource) {
	tag := "div"
	href := ""
	if p.Interactive {
		tag = "a"
		href = fmt.Sprintf(` href="%s%s"`, html.EscapeString(p.DetailPath), url.PathEscape(r.ID))
	}
	fmt.Fprintf(s, `
                <%s class="resource-card"%s data-id="%s" data-category="%s">
`, tag, href, html.EscapeString(r.ID), html.EscapeString(r.Category.String()))
	if r.Thumbnail != "" {
		fmt.Fprintf(s, `                    <div class="resource-thumb"><img src="%s" alt="%s" loading="lazy"></div>
`, html.EscapeString(r.Thumbnail), html.EscapeString(r.Title))
	}
	fmt.Fprintf(s, `                    <div class="resource-title">%s</div>
                    <div class="resource-meta"><span class="badge">%s</span> <span class="duration">%s</span></div>
`, html.EscapeString(r.Title), html.EscapeString(r.Category.String()), html.EscapeString(view.DurationShort(r.Duration)))
	writeTags(s, r.SummaryTags())
	if !p.Interactive && r.Description != "" {
		fmt.Fprintf(s, `                    <details><summary>%s</summary><p>%s</p></details>
`, html.EscapeString(view.DateLabel(r)), Sanitize(r.Description))
	}
	fmt.Fprintf(s, `                </%s>
`, tag)
}

func writeTags(s *strings.Builder, tags []string) {
	if len(tags) == 0 {
		return
	}
	s.WriteString(`                    <div class="resource-tags">
`)
	for _, t := range tags {
		fmt.Fprintf(s, `                        <span class="tag">%s</span>
`, html.EscapeString(t))
	}
	s.WriteString(`                    </div>
`)
}

func writeFooter(s *strings.Builder) {
	fmt.Fprintf(s, `    <footer>%s</footer>
</body>
</html>
`, html.EscapeString(view.Footer))
}
