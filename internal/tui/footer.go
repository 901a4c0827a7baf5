package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

// highlightFor is how long a pressed shortcut stays lit in the footer.
const highlightFor = 500 * time.Millisecond

// ClearActiveCmdMsg clears the active command highlight in the footer.
type ClearActiveCmdMsg struct{}

// ShortcutEntry pairs a trigger key with its footer label.
type ShortcutEntry struct {
	Key   string // matched against the active command; empty never lights up
	Label string
}

// HighlightCmd clears the active command highlight after a short delay.
func HighlightCmd() tea.Cmd {
	return tea.Tick(highlightFor, func(time.Time) tea.Msg {
		return ClearActiveCmdMsg{}
	})
}

// footerMode is the browser screen the footer describes.
type footerMode int

const (
	footerLoading footerMode = iota
	footerFailed
	footerDetail
	footerSearch
	footerBrowse
)

var footerShortcuts = map[footerMode][]ShortcutEntry{
	footerLoading: {{Label: "q quit"}},
	footerFailed:  {{Key: "r", Label: "r retry"}, {Label: "q quit"}},
	footerDetail:  {{Label: "↑/↓ scroll"}, {Label: "esc close"}},
	footerSearch:  {{Label: "type to search"}, {Label: "enter/esc done"}},
	footerBrowse: {
		{Label: "↑/↓ navigate"},
		{Key: "/", Label: "/ search"},
		{Key: "tab", Label: "tab category"},
		{Key: "s", Label: "s sort"},
		{Label: "enter details"},
		{Key: "c", Label: "c clear"},
		{Key: "r", Label: "r reload"},
		{Label: "q quit"},
	},
}

// FilterStatus summarises the active filters, e.g.
// "Podcasts · Newest First · 3 of 12".
func FilterStatus(opts view.Options, shown, total int) string {
	parts := []string{opts.Category.String(), opts.Sort.Label()}
	if q := strings.TrimSpace(opts.Query); q != "" {
		parts = append(parts, fmt.Sprintf("%q", q))
	}
	parts = append(parts, fmt.Sprintf("%d of %d", shown, total))
	return strings.Join(parts, " · ")
}

// RenderFooterBar renders the filter status (if any) followed by the
// shortcut labels. The shortcut matching activeCmd uses StyleHighlight.
func RenderFooterBar(status string, shortcuts []ShortcutEntry, activeCmd string) string {
	dim := lipgloss.NewStyle().Foreground(ColorGray)
	sep := dim.Render(" • ")

	parts := make([]string, 0, len(shortcuts)+1)
	if status != "" {
		parts = append(parts, StyleBrand.Render(status))
	}
	for _, sc := range shortcuts {
		if activeCmd != "" && sc.Key == activeCmd {
			parts = append(parts, StyleHighlight.Render("[ "+sc.Label+" ]"))
		} else {
			parts = append(parts, dim.Render(sc.Label))
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, sep))
}
