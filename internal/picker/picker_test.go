package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/versionflag"
	"github.com/vovakirdan/versionflag/internal/theme"
)

func testItems() []theme.Info {
	return []theme.Info{
		{Name: "alpha", Theme: theme.Theme{NameFG: "#FFF", NameBG: "#000", Version: "#F00", Author: "#0F0"}},
		{Name: "beta", Theme: theme.Theme{NameFG: "#000", NameBG: "#FFF", Version: "#00F", Author: "#FF0"}},
		{Name: "gamma", Theme: theme.Theme{NameFG: "#111", NameBG: "#222", Version: "#333", Author: "#444"}},
	}
}

func newModel(start string) Model {
	return New(testItems(), versionflag.New("demo", "1.0.0", "Tester"), start)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNavigation(t *testing.T) {
	m := newModel("")

	m = press(m, "down", "j")
	if it, _ := m.Cursor(); it.Name != "gamma" {
		t.Errorf("cursor on %q, expected gamma", it.Name)
	}

	// Stays on the last item.
	m = press(m, "down")
	if it, _ := m.Cursor(); it.Name != "gamma" {
		t.Errorf("cursor on %q, expected gamma", it.Name)
	}

	m = press(m, "up", "k", "up")
	if it, _ := m.Cursor(); it.Name != "alpha" {
		t.Errorf("cursor on %q, expected alpha", it.Name)
	}
}

func TestStartItem(t *testing.T) {
	if it, _ := newModel("beta").Cursor(); it.Name != "beta" {
		t.Errorf("cursor on %q, expected beta", it.Name)
	}
	if it, _ := newModel("missing").Cursor(); it.Name != "alpha" {
		t.Errorf("cursor on %q, expected alpha", it.Name)
	}
}

func TestSelect(t *testing.T) {
	m := newModel("")
	m = press(m, "down")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.Selected() == nil || m.Selected().Name != "beta" {
		t.Fatalf("Selected() = %v, expected beta", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should quit the program")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m := press(newModel(""), k)
		if !m.quitting {
			t.Errorf("%q should quit", k)
		}
		if m.Selected() != nil {
			t.Errorf("%q should not select", k)
		}
		if m.View() != "" {
			t.Errorf("%q: view should be empty after quitting", k)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m := press(newModel(""), "?")
	if !m.help.ShowAll {
		t.Error("? should show full help")
	}
	m = press(m, "?")
	if m.help.ShowAll {
		t.Error("? should hide full help again")
	}
}

func TestViewListsThemes(t *testing.T) {
	view := newModel("beta").View()

	for _, name := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing %q", name)
		}
	}
	if !strings.Contains(view, "> ") {
		t.Error("view should show the cursor")
	}
	if strings.Count(view, "demo") != 3 {
		t.Errorf("expected one preview per theme, got:\n%s", view)
	}
}

func TestViewInvalidTheme(t *testing.T) {
	items := []theme.Info{{Name: "broken", Theme: theme.Theme{NameFG: "#XYZ"}}}
	view := New(items, versionflag.New("demo", "1", "x"), "").View()

	if !strings.Contains(view, "invalid hex color") {
		t.Errorf("view should explain the invalid color, got:\n%s", view)
	}
}

func TestEmpty(t *testing.T) {
	m := New(nil, versionflag.New("demo", "1", "x"), "")
	if _, ok := m.Cursor(); ok {
		t.Error("Cursor() should report no item")
	}
	m = press(m, "enter", "down")
	if m.Selected() != nil {
		t.Error("nothing to select")
	}
}
