package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/gz/internal/models"
	"github.com/muesli/reflow/truncate"
)

// entryItem is one row of the staging list.
type entryItem struct {
	entry models.ChangeEntry
	stat  models.LineStat
}

// FilterValue implements list.Item.
func (i entryItem) FilterValue() string { return i.entry.Path }

// entryDelegate renders entries as "+<added> -<removed>  <path>".
type entryDelegate struct {
	staged    lipgloss.Style
	unstaged  lipgloss.Style
	showIcons bool
}

func (d entryDelegate) Height() int { return 1 }

func (d entryDelegate) Spacing() int { return 0 }

func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}

	style := d.unstaged
	if it.entry.Staged {
		style = d.staged
	}
	if index == m.Index() {
		style = style.Bold(true)
	}

	text := formatEntry(it, d.showIcons)
	if width := m.Width(); width > 0 {
		text = truncate.StringWithTail(text, uint(width), "…")
	}
	_, _ = fmt.Fprint(w, style.Render(text))
}

func formatEntry(it entryItem, showIcons bool) string {
	path := it.entry.Path
	if showIcons {
		path = iconWithSpace(deviconForPath(path)) + path
	}
	return fmt.Sprintf("+%d -%d  %s", it.stat.Added, it.stat.Removed, path)
}
