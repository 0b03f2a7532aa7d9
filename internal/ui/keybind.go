package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps single keys to commands. Keys use tea.KeyMsg
// String() notation: "q", "ctrl+c", "tab", "1".
type KeybindRegistry struct {
	order    []string
	bindings map[string]tea.Cmd
	descs    map[string]string
	hidden   map[string]bool
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]tea.Cmd),
		descs:    make(map[string]string),
		hidden:   make(map[string]bool),
	}
}

// Bind registers a key with a description for the help line. Overwrites
// any existing binding for the key.
func (r *KeybindRegistry) Bind(key string, cmd tea.Cmd, desc string) {
	if _, exists := r.bindings[key]; !exists {
		r.order = append(r.order, key)
	}
	r.bindings[key] = cmd
	r.descs[key] = desc
}

// BindHidden registers a key that does not appear in the help line
// (aliases like ctrl+c).
func (r *KeybindRegistry) BindHidden(key string, cmd tea.Cmd) {
	r.Bind(key, cmd, "")
	r.hidden[key] = true
}

// Handle processes a KeyMsg. Returns (consumed, cmd); consumed keys must
// not be passed on to views.
func (r *KeybindRegistry) Handle(msg tea.KeyMsg) (bool, tea.Cmd) {
	if cmd, ok := r.bindings[msg.String()]; ok {
		return true, cmd
	}
	return false, nil
}

// HelpLine renders the visible bindings in registration order, e.g.
// "1-4 switch tab · q quit".
func (r *KeybindRegistry) HelpLine() string {
	var parts []string
	for _, key := range r.order {
		if r.hidden[key] || r.descs[key] == "" {
			continue
		}
		parts = append(parts, key+" "+r.descs[key])
	}
	return strings.Join(parts, " · ")
}
