// Package app implements the interactive staging screen of gz.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/gz/internal/config"
	"github.com/chmouel/gz/internal/models"
	"github.com/chmouel/gz/internal/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// border rows, title row and footer row around the list
	chromeHeight = 4
	chromeWidth  = 2

	screenTitle = "Add"
)

// lineStatsSource provides the per-path line counts shown next to entries.
type lineStatsSource interface {
	StagedLineStats(ctx context.Context) (models.LineStats, error)
	UnstagedLineStats(ctx context.Context) (models.LineStats, error)
}

// stagingRepository is everything the staging screen needs from git.
type stagingRepository interface {
	repository
	lineStatsSource
}

type styles struct {
	frame    lipgloss.Style
	title    lipgloss.Style
	staged   lipgloss.Style
	unstaged lipgloss.Style
	muted    lipgloss.Style
	helpKey  lipgloss.Style
}

func newStyles(th *theme.Theme) styles {
	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Border),
		title:    lipgloss.NewStyle().Foreground(th.Accent).Bold(true),
		staged:   lipgloss.NewStyle().Foreground(th.Staged),
		unstaged: lipgloss.NewStyle().Foreground(th.Unstaged),
		muted:    lipgloss.NewStyle().Foreground(th.MutedFg),
		helpKey:  lipgloss.NewStyle().Foreground(th.TextFg).Bold(true),
	}
}

// Model is the bubbletea model of the staging screen. The Session owns the
// entries and the selection; the list only mirrors them for rendering.
type Model struct {
	ctx     context.Context
	session *Session
	stats   lineStatsSource

	staged   models.LineStats
	unstaged models.LineStats

	list   list.Model
	help   help.Model
	keys   keyMap
	styles styles

	width  int
	height int

	err      error
	quitting bool
}

// NewModel builds the staging screen over session and loads the first line
// counts.
func NewModel(ctx context.Context, session *Session, stats lineStatsSource, cfg *config.AppConfig) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	st := newStyles(cfg.ResolveTheme())

	delegate := entryDelegate{
		staged:    st.staged,
		unstaged:  st.unstaged,
		showIcons: cfg.ShowIcons,
	}
	l := list.New(nil, delegate, defaultWidth-chromeWidth, defaultHeight-chromeHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("change", "changes")
	l.Styles.NoItems = st.muted

	h := help.New()
	h.Styles.ShortKey = st.helpKey
	h.Styles.ShortDesc = st.muted
	h.Styles.ShortSeparator = st.muted

	m := &Model{
		ctx:     ctx,
		session: session,
		stats:   stats,
		list:    l,
		help:    h,
		keys:    defaultKeyMap(),
		styles:  st,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	if err := m.loadLineStats(); err != nil {
		return nil, err
	}
	m.syncList()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Git runs synchronously here, so the screen
// waits for every command before the next frame.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(max(0, m.width-chromeWidth), max(0, m.height-chromeHeight))
		return m, m.reload()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.session.MoveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.session.MoveSelection(1)
	case key.Matches(msg, m.keys.Toggle):
		if err := m.session.ToggleSelected(m.ctx); err != nil {
			return m, m.fail(err)
		}
	}
	return m, m.reload()
}

// reload re-reads the line counts and mirrors the session into the list
// before the next frame is drawn.
func (m *Model) reload() tea.Cmd {
	if err := m.loadLineStats(); err != nil {
		return m.fail(err)
	}
	return m.syncList()
}

func (m *Model) loadLineStats() error {
	staged, err := m.stats.StagedLineStats(m.ctx)
	if err != nil {
		return fmt.Errorf("failed to read staged line counts: %w", err)
	}
	unstaged, err := m.stats.UnstagedLineStats(m.ctx)
	if err != nil {
		return fmt.Errorf("failed to read unstaged line counts: %w", err)
	}
	m.staged, m.unstaged = staged, unstaged
	return nil
}

func (m *Model) syncList() tea.Cmd {
	entries := m.session.Entries()
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		stats := m.unstaged
		if e.Staged {
			stats = m.staged
		}
		items = append(items, entryItem{entry: e, stat: stats.Lookup(e.Path)})
	}

	cmd := m.list.SetItems(items)
	if idx, ok := m.session.Selected(); ok {
		m.list.Select(idx)
	}
	return cmd
}

func (m *Model) fail(err error) tea.Cmd {
	m.err = err
	m.quitting = true
	return tea.Quit
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render(screenTitle),
		m.list.View(),
	)
	frame := m.styles.frame.Width(max(0, m.width-chromeWidth)).Render(body)

	m.help.Width = m.width
	footer := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.ShortHelpView(m.keys.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, frame, footer)
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Run shows the staging screen until the user quits or git fails. The
// terminal is restored on every exit path before Run returns.
func Run(ctx context.Context, repo stagingRepository, cfg *config.AppConfig) error {
	session, err := NewSession(ctx, repo)
	if err != nil {
		return err
	}
	model, err := NewModel(ctx, session, repo, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running staging screen: %w", err)
	}
	return model.Err()
}
