package tui

import "github.com/charmbracelet/bubbles/key"

// BrowserKeys are the bindings of the resource browser.
type BrowserKeys struct {
	Quit        key.Binding
	Search      key.Binding
	Details     key.Binding
	Close       key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	CycleSort   key.Binding
	Retry       key.Binding
	ClearSearch key.Binding
}

// NewBrowserKeys creates the browser key bindings.
func NewBrowserKeys() BrowserKeys {
	return BrowserKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "category"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev category"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear search"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k BrowserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextTab, k.CycleSort, k.Details, k.Retry, k.Quit}
}
