package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

// ResourceItem is one row of the browser list.
type ResourceItem struct {
	Resource resource.Resource
}

// FilterValue implements list.Item. Filtering is done by view.Compose, not
// the list, so this is only used by the list's own bookkeeping.
func (r ResourceItem) FilterValue() string { return r.Resource.Title }

// HeadingItem introduces a category section in grouped mode. It cannot be
// selected.
type HeadingItem struct {
	Category resource.Category
	Count    int
}

// FilterValue implements list.Item.
func (h HeadingItem) FilterValue() string { return h.Category.String() }

// listItems flattens a composed view into list rows.
func listItems(m view.Model) []list.Item {
	if !m.Grouped {
		items := make([]list.Item, len(m.Items))
		for i, r := range m.Items {
			items[i] = ResourceItem{Resource: r}
		}
		return items
	}
	items := make([]list.Item, 0, len(m.Items)+len(m.Groups))
	for _, g := range m.Groups {
		items = append(items, HeadingItem{Category: g.Category, Count: len(g.Resources)})
		for _, r := range g.Resources {
			items = append(items, ResourceItem{Resource: r})
		}
	}
	return items
}

// Column layout constants
const (
	minTitleWidth    = 16
	maxTitleWidth    = 48
	categoryWidth    = 12
	durationWidth    = 7
	minTagWidth      = 10
	columnGap        = 1
	defaultListWidth = 80
)

// computeColumnWidths splits the row width between title and tags; category
// and duration are fixed.
func computeColumnWidths(totalWidth int) (titleW, tagW int) {
	prefix := 2
	gaps := columnGap * 3
	usable := totalWidth - prefix - gaps - categoryWidth - durationWidth
	if usable < minTitleWidth+minTagWidth {
		return minTitleWidth, minTagWidth
	}
	titleW = usable * 55 / 100
	if titleW > maxTitleWidth {
		titleW = maxTitleWidth
	}
	if titleW < minTitleWidth {
		titleW = minTitleWidth
	}
	tagW = usable - titleW
	if tagW < minTagWidth {
		tagW = minTagWidth
	}
	return titleW, tagW
}

// padOrTruncate pads s to exactly width cells, truncating with "…" if
// necessary. Widths are terminal cells, so wide runes align.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// renderItem renders a heading or a resource row.
func renderItem(w io.Writer, m list.Model, index int, item list.Item) {
	switch it := item.(type) {
	case HeadingItem:
		renderHeading(w, it)
	case ResourceItem:
		renderResourceRow(w, m, index, it)
	}
}

func renderHeading(w io.Writer, h HeadingItem) {
	line := StyleBrand.Render(h.Category.String()) + " " + StyleHelp.Render(fmt.Sprintf("(%d)", h.Count))
	_, _ = fmt.Fprint(w, line)
}

func renderResourceRow(w io.Writer, m list.Model, index int, it ResourceItem) {
	listWidth := m.Width()
	if listWidth <= 0 {
		listWidth = defaultListWidth
	}
	titleW, tagW := computeColumnWidths(listWidth)
	gap := strings.Repeat(" ", columnGap)
	r := it.Resource

	isCursor := index == m.Index()
	prefix := "  "
	if isCursor {
		prefix = lipgloss.NewStyle().Foreground(ColorSage).Render("›") + " "
	}

	titleCol := padOrTruncate(r.Title, titleW)
	categoryCol := padOrTruncate(r.Category.String(), categoryWidth)
	durationCol := padOrTruncate(view.DurationShort(r.Duration), durationWidth)
	tagCol := padOrTruncate(strings.Join(r.SummaryTags(), " · "), tagW)

	var titleStyled string
	if isCursor {
		titleStyled = StyleHighlight.Render(titleCol)
	} else {
		titleStyled = StyleNormal.Render(titleCol)
	}

	line := prefix + titleStyled + gap +
		StyleHelp.Render(categoryCol) + gap +
		StyleHelp.Render(durationCol) + gap +
		StyleTag.Render(tagCol)
	_, _ = fmt.Fprint(w, line)
}
