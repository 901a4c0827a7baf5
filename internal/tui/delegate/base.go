// Package delegate provides a list.ItemDelegate built from a render function.
package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one list item.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Base is a one-line, unspaced list.ItemDelegate whose rendering is supplied
// by the caller.
type Base struct {
	renderFn RenderFunc
}

// New returns a delegate rendering with renderFn.
func New(renderFn RenderFunc) Base {
	return Base{renderFn: renderFn}
}

// Height implements list.ItemDelegate
func (d Base) Height() int { return 1 }

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int { return 0 }

// Update implements list.ItemDelegate
func (d Base) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
