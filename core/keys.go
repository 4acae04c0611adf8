package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
	// Help overrides the key label shown in the footer.
	Help string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	return r.ActionKey(msg.String(), action, scope)
}

// ActionKey reports whether the key string triggers action in scope.
func (r *KeyRegistry) ActionKey(pressed, action, scope string) bool {
	pressed = normalizeKey(pressed)
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// FirstKey returns the primary key bound to action in scope, or "".
func (r *KeyRegistry) FirstKey(action, scope string) string {
	for _, b := range r.bindings {
		if b.Action == action && scopeMatch(scope, b.Scopes) && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return ""
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// KeyIndex returns the position of pressed among the keys bound to action in
// scope, or -1. Numbered pickers use it to map "1".."4" onto rows.
func (r *KeyRegistry) KeyIndex(pressed, action, scope string) int {
	pressed = normalizeKey(pressed)
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for i, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return i
			}
		}
	}
	return -1
}

// HelpBindings returns the scope's bindings as bubbles key bindings for the
// footer. Help overrides the first key as the displayed label.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.BindingsForScope(scope) {
		if len(b.Keys) == 0 {
			continue
		}
		label := b.Help
		if label == "" {
			label = b.Keys[0]
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(label, b.Description)))
	}
	return out
}
