// Package picker is an interactive theme chooser with a live banner preview.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/versionflag"
	"github.com/vovakirdan/versionflag/internal/theme"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

// Model is the Bubble Tea model for the theme picker.
type Model struct {
	items    []theme.Info
	cursor   int
	sample   versionflag.Banner
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
	selected *theme.Info
}

// New creates a picker over items previewing each one on sample.
// The cursor starts on the item named start, or on the first item.
func New(items []theme.Info, sample versionflag.Banner, start string) Model {
	m := Model{
		items:  items,
		sample: sample,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	for i, it := range items {
		if it.Name == start {
			m.cursor = i
			break
		}
	}
	return m
}

// Init initializes the picker.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// View renders the picker.
func (m Model) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose a banner theme"))
	b.WriteString("\n")

	nameWidth := 0
	for _, it := range m.items {
		nameWidth = max(nameWidth, len(it.Name))
	}

	for i, it := range m.items {
		cursor := "  "
		name := fmt.Sprintf("%-*s", nameWidth, it.Name)
		if i == m.cursor {
			cursor = "> "
			name = cursorStyle.Render(name)
		} else {
			name = dimStyle.Render(name)
		}
		b.WriteString(cursor + name + "  " + m.preview(it.Theme) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// preview renders the sample banner in t, or the reason it cannot.
func (m Model) preview(t theme.Theme) string {
	banner, err := m.sample.WithTheme(t)
	if err != nil {
		return errStyle.Render(err.Error())
	}
	return banner.ColoredString()
}

// Selected returns the chosen theme, or nil if none was chosen.
func (m Model) Selected() *theme.Info {
	return m.selected
}

// Cursor returns the highlighted theme.
func (m Model) Cursor() (theme.Info, bool) {
	if len(m.items) == 0 {
		return theme.Info{}, false
	}
	return m.items[m.cursor], true
}

// Result holds the outcome of running the picker.
type Result struct {
	Theme theme.Info
	Quit  bool
}

// Run shows the picker and blocks until a theme is chosen or the user quits.
func Run(items []theme.Info, sample versionflag.Banner, start string, opts ...tea.ProgramOption) (Result, error) {
	p := tea.NewProgram(New(items, sample, start), opts...)

	finalModel, err := p.Run()
	if err != nil {
		return Result{Quit: true}, fmt.Errorf("picker: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok || m.Selected() == nil {
		return Result{Quit: true}, nil
	}
	return Result{Theme: *m.Selected()}, nil
}
