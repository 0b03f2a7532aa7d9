package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_HandleBound(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")

	handled, cmd := reg.Handle(keyMsg("q"))
	if !handled || cmd == nil {
		t.Errorf("q: handled=%v cmd=%v", handled, cmd)
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit command")
	}
}

func TestKeybindRegistry_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")

	handled, _ := reg.Handle(keyMsg("j"))
	if handled {
		t.Error("unbound j should not be handled")
	}
}

func TestKeybindRegistry_HelpLineOrder(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("1-4", nil, "switch tab")
	reg.Bind("q", tea.Quit, "quit")
	reg.BindHidden("ctrl+c", tea.Quit)

	help := reg.HelpLine()
	if help != "1-4 switch tab · q quit" {
		t.Errorf("unexpected help line: %q", help)
	}
	if strings.Contains(help, "ctrl+c") {
		t.Error("hidden binding should not appear in help")
	}
}

func TestKeybindRegistry_RebindKeepsOrder(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("a", nil, "first")
	reg.Bind("b", nil, "second")
	reg.Bind("a", nil, "updated")

	if got := reg.HelpLine(); got != "a updated · b second" {
		t.Errorf("unexpected help line after rebind: %q", got)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType for
// special keys and KeyRunes for everything else; String() round-trips.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
