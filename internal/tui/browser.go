package tui

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wisdomwellbeing/resourcectl/internal/loader"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/tui/delegate"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

// loadedMsg carries the state committed by a finished load.
type loadedMsg loader.State

// Lines used by everything except the list: header (2), gap, search,
// tabs, sort, gap, footer (2) and the border (2).
const chromeHeight = 11

// BrowserModel is the interactive resource browser.
type BrowserModel struct {
	ctx    context.Context
	loader *loader.Loader
	keys   BrowserKeys

	state loader.State
	opts  view.Options
	view  view.Model

	list    list.Model
	search  textinput.Model
	spinner spinner.Model
	detail  viewport.Model

	showDetail bool
	selected   *resource.Resource

	width, height int
	activeCmd     string
	quitting      bool
}

// NewBrowserModel returns a browser that loads from ld when started.
func NewBrowserModel(ctx context.Context, ld *loader.Loader, opts view.Options) BrowserModel {
	if opts.Category == "" {
		opts.Category = resource.All
	}
	if opts.Sort == "" {
		opts.Sort = resource.DefaultSort
	}

	l := list.New(nil, delegate.New(renderItem), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = StyleHelp

	ti := textinput.New()
	ti.Placeholder = view.SearchPlaceholder
	ti.Prompt = "⌕ "
	ti.SetValue(opts.Query)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StyleBrand

	m := BrowserModel{
		ctx:     ctx,
		loader:  ld,
		keys:    NewBrowserKeys(),
		state:   ld.State(),
		opts:    opts,
		list:    l,
		search:  ti,
		spinner: sp,
		detail:  viewport.New(0, 0),
	}
	// Init always starts a load.
	m.state.Loading = true
	m.state.Err = ""
	m.recompose()
	return m
}

// Init starts the first load.
func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m BrowserModel) loadCmd() tea.Cmd {
	ld, ctx := m.loader, m.ctx
	return func() tea.Msg {
		return loadedMsg(ld.Load(ctx))
	}
}

// Options returns the current filter and sort choices.
func (m BrowserModel) Options() view.Options { return m.opts }

// Composed returns the current derived view.
func (m BrowserModel) Composed() view.Model { return m.view }

// Selected returns the resource under the cursor, or nil.
func (m BrowserModel) Selected() *resource.Resource {
	if it, ok := m.list.SelectedItem().(ResourceItem); ok {
		r := it.Resource
		return &r
	}
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.state = loader.State(msg)
		m.recompose()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showDetail {
		return m.handleDetailKey(msg)
	}
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Retry):
		m.state.Loading = true
		m.state.Err = ""
		m.activeCmd = "r"
		return m, tea.Batch(m.spinner.Tick, m.loadCmd(), HighlightCmd())
	}

	// Everything below needs a settled catalog.
	if m.state.Loading || m.state.Failed() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ClearSearch):
		m.search.SetValue("")
		m.opts.Query = ""
		m.recompose()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.opts.Category = shiftSelection(m.opts.Category, 1)
		m.recompose()
		m.activeCmd = "tab"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.PrevTab):
		m.opts.Category = shiftSelection(m.opts.Category, -1)
		m.recompose()
		m.activeCmd = "tab"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.CycleSort):
		m.opts.Sort = m.opts.Sort.Next()
		m.recompose()
		m.activeCmd = "s"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.Details):
		if r := m.Selected(); r != nil {
			m.openDetail(*r)
		}
		return m, nil
	}

	down := key.Matches(msg, m.list.KeyMap.CursorDown, m.list.KeyMap.NextPage, m.list.KeyMap.GoToEnd)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.skipHeadings(down)
	return m, cmd
}

func (m BrowserModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab, tea.KeyUp, tea.KeyDown:
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.opts.Query {
		m.opts.Query = q
		m.recompose()
	}
	return m, cmd
}

func (m BrowserModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Quit):
		m.showDetail = false
		m.selected = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *BrowserModel) openDetail(r resource.Resource) {
	m.selected = &r
	m.showDetail = true
	w, h := m.detailSize()
	m.detail.Width = w
	m.detail.Height = h
	m.detail.SetContent(renderDetail(r, w))
	m.detail.GotoTop()
}

// recompose derives the view from the current state and options and rebuilds
// the list, keeping the cursor on the same resource when it survives.
func (m *BrowserModel) recompose() {
	var keepID string
	if r := m.Selected(); r != nil {
		keepID = r.ID
	}

	m.view = view.Compose(m.state.Resources, m.opts)
	items := listItems(m.view)
	m.list.SetItems(items)

	idx := slices.IndexFunc(items, func(it list.Item) bool {
		ri, ok := it.(ResourceItem)
		return ok && ri.Resource.ID == keepID
	})
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
	m.skipHeadings(true)
}

// skipHeadings moves the cursor off a heading row, continuing in the
// direction of travel and reversing at the ends.
func (m *BrowserModel) skipHeadings(down bool) {
	n := len(m.list.Items())
	for i := 0; i < n; i++ {
		if _, ok := m.list.SelectedItem().(HeadingItem); !ok {
			return
		}
		idx := m.list.Index()
		switch {
		case down && idx < n-1:
			m.list.Select(idx + 1)
		case !down && idx > 0:
			m.list.Select(idx - 1)
		default:
			down = !down
		}
	}
}

func (m *BrowserModel) resize() {
	h, _ := StyleBorder.GetFrameSize()
	listH := m.height - chromeHeight
	if listH < 3 {
		listH = 3
	}
	m.list.SetSize(m.width-h-2, listH)
	m.search.Width = m.width - h - 6

	if m.showDetail && m.selected != nil {
		m.openDetail(*m.selected)
	}
}

func (m BrowserModel) detailSize() (int, int) {
	w := m.width * 7 / 10
	if w < 40 {
		w = 40
	}
	if w > 90 {
		w = 90
	}
	h := m.height - 8
	if h < 8 {
		h = 8
	}
	return w, h
}

// shiftSelection steps through All and the six categories, wrapping.
func shiftSelection(c resource.Category, step int) resource.Category {
	sel := resource.Selections()
	i := slices.Index(sel, c)
	if i < 0 {
		i = 0
	}
	n := len(sel)
	return sel[((i+step)%n+n)%n]
}

// RunBrowser launches the interactive browser and blocks until the user quits.
func RunBrowser(ctx context.Context, ld *loader.Loader, opts view.Options) error {
	m := NewBrowserModel(ctx, ld, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
