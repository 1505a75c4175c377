package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tailview/internal/config"
	"github.com/five82/tailview/internal/state"
)

// Model is the root application state for Bubble Tea.
type Model struct {
	endpoint  string
	prefsPath string
	keys      keyMap

	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// follow keeps the newest entry in view as entries arrive.
	follow bool

	// entries holds the log pane's lines, newest first.
	entries *state.Store

	viewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	p := opts.Prefs
	if p.Theme == "" {
		p = config.DefaultPrefs()
	}
	entries := opts.Store
	if entries == nil {
		entries = &state.Store{}
	}
	return Model{
		entries:   entries,
		endpoint:  opts.Endpoint,
		prefsPath: opts.PrefsPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(p.Theme),
		follow:    p.Follow,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.bodyHeight())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.bodyHeight()
		}
		m.refreshViewport()
		return m, nil

	case entryMsg:
		m.prepend(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.refreshViewport()
		m.savePrefs()

	case key.Matches(msg, m.keys.Follow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoTop()
		}
		m.savePrefs()

	case key.Matches(msg, m.keys.Up):
		m.scrollTo(m.viewport.YOffset - 1)
	case key.Matches(msg, m.keys.Down):
		m.scrollTo(m.viewport.YOffset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollTo(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollTo(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.follow = true
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.follow = m.viewport.YOffset == 0
	}

	return m, nil
}

// scrollTo moves the viewport. Leaving the newest line stops following,
// returning to it resumes.
func (m *Model) scrollTo(offset int) {
	m.viewport.SetYOffset(offset)
	m.follow = m.viewport.YOffset == 0
}

func (m *Model) prepend(msg entryMsg) {
	m.entries.Prepend(msg.text)

	if !m.ready {
		return
	}
	offset := m.viewport.YOffset
	m.refreshViewport()
	if m.follow {
		m.viewport.GotoTop()
		return
	}
	// Hold the lines the user is reading in place.
	m.viewport.SetYOffset(offset + entryHeight(msg.text))
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	styles := m.theme.Styles()
	entries := m.entries.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = styles.Entry.Render(e.Text)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m Model) bodyHeight() int {
	// header + footer
	if h := m.height - 2; h > 0 {
		return h
	}
	return 1
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = config.SavePrefs(m.prefsPath, config.Prefs{Theme: m.theme.Name, Follow: m.follow})
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := styles.MutedText.Render("  ")

	parts := []string{
		styles.Logo.Render("tailview"),
		styles.AccentText.Render(m.endpoint),
		styles.MutedText.Render(fmt.Sprintf("%d entries", m.entries.Len())),
	}
	if last := m.entries.LastUpdated(); !last.IsZero() {
		parts = append(parts, styles.MutedText.Render("last "+last.Format("15:04:05")))
	}
	if !m.follow {
		parts = append(parts, styles.MutedText.Render("paused"))
	}
	// Long endpoints would wrap; the body height assumes a single line.
	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(parts, sep))
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(strings.Join(hints, " · "))
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Header.Width(m.width).Render(styles.Logo.Render("tailview") + styles.MutedText.Render("  keys")))
	b.WriteString("\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("  press any key to close"))
	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}

func entryHeight(text string) int {
	return strings.Count(text, "\n") + 1
}

// Messages

// entryMsg carries one streamed payload into the program.
type entryMsg struct {
	text string
}
