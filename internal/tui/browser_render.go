package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.state.Loading:
		body = m.renderLoading()
	case m.state.Failed():
		body = m.renderError()
	case m.showDetail && m.selected != nil:
		body = m.renderDetailOverlay()
	default:
		body = m.renderBrowser()
	}

	sections := []string{m.renderHeader(), body, m.renderFooter()}
	content := strings.Join(sections, "\n\n")

	box := StyleBorder.Padding(0, 1)
	if m.width > 0 {
		fw, _ := box.GetFrameSize()
		box = box.Width(m.width - fw)
	}
	return box.Render(content)
}

func (m BrowserModel) renderHeader() string {
	return StyleBrand.Render(view.Title) + "\n" + StyleHelp.Render(view.Tagline)
}

func (m BrowserModel) renderLoading() string {
	return m.spinner.View() + " " + view.LoadingMessage
}

func (m BrowserModel) renderError() string {
	return StyleError.Render(m.state.Err) + "\n\n" +
		StyleHelp.Render("Press r to try again, q to quit.")
}

func (m BrowserModel) renderBrowser() string {
	var s strings.Builder

	s.WriteString(m.search.View())
	s.WriteString("\n")
	s.WriteString(renderTabs(m.opts.Category))
	s.WriteString("\n")
	s.WriteString(StyleHelp.Render("Sort: "))
	s.WriteString(StyleNormal.Render(m.opts.Sort.Label()))
	s.WriteString(StyleHelp.Render(fmt.Sprintf("   %d resources", len(m.view.Items))))
	s.WriteString("\n\n")

	if m.view.Empty() {
		s.WriteString(StyleHelp.Render(view.EmptyMessage))
	} else {
		s.WriteString(m.list.View())
	}
	return s.String()
}

func renderTabs(active resource.Category) string {
	parts := make([]string, 0, len(resource.Selections()))
	for _, c := range resource.Selections() {
		if c == active {
			parts = append(parts, StyleTabActive.Render(c.String()))
		} else {
			parts = append(parts, StyleTabInactive.Render(c.String()))
		}
	}
	return strings.Join(parts, "  ")
}

func (m BrowserModel) renderDetailOverlay() string {
	box := StyleOverlay.Render(m.detail.View())
	if m.width <= 0 {
		return box
	}
	fw, _ := StyleBorder.GetFrameSize()
	return lipgloss.PlaceHorizontal(m.width-fw-2, lipgloss.Center, box)
}

// renderDetail lays out the full record for the detail viewport.
func renderDetail(r resource.Resource, width int) string {
	if width <= 0 {
		width = 60
	}
	var s strings.Builder

	s.WriteString(StyleBadge.Render(r.Category.String()))
	s.WriteString("\n\n")
	s.WriteString(StyleHeader.Render(ansi.Truncate(r.Title, width, "…")))
	s.WriteString("\n")
	s.WriteString(StyleHelp.Render(view.DurationLong(r.Duration) + "  ·  " + view.DateLabel(r)))
	s.WriteString("\n\n")

	if len(r.Tags) > 0 {
		pills := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			pills[i] = StyleTag.Render("#" + t)
		}
		s.WriteString(lipgloss.NewStyle().Width(width).Render(strings.Join(pills, " ")))
		s.WriteString("\n\n")
	}

	if r.Description != "" {
		s.WriteString(lipgloss.NewStyle().Width(width).Render(r.Description))
		s.WriteString("\n\n")
	}

	s.WriteString(StyleHelp.Render("↑/↓ scroll • esc close"))
	return s.String()
}

// renderFooter shows the brand line and the shortcut bar, prefixed with the
// filter status while browsing.
func (m BrowserModel) renderFooter() string {
	mode := m.footerMode()
	status := ""
	if mode == footerBrowse || mode == footerSearch {
		status = FilterStatus(m.opts, len(m.view.Items), len(m.state.Resources))
	}
	return StyleHelp.Render(view.Footer) + "\n" + RenderFooterBar(status, footerShortcuts[mode], m.activeCmd)
}

func (m BrowserModel) footerMode() footerMode {
	switch {
	case m.state.Loading:
		return footerLoading
	case m.state.Failed():
		return footerFailed
	case m.showDetail:
		return footerDetail
	case m.search.Focused():
		return footerSearch
	default:
		return footerBrowse
	}
}
