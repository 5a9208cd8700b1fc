package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// KeyMap translates Bubble Tea key messages to engine commands.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Undo    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// NewKeyMap builds the key bindings from configuration.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Up:      binding(keys.Up, "up"),
		Down:    binding(keys.Down, "down"),
		Left:    binding(keys.Left, "left"),
		Right:   binding(keys.Right, "right"),
		Undo:    binding(keys.Undo, "undo"),
		Restart: binding(keys.Restart, "restart"),
		Help:    binding(keys.Help, "help"),
		Quit:    binding(keys.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings of the built-in configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Command maps a key to an engine command.
// Unbound keys, help and quit map to CommandNone.
func (k KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Up):
		return core.CommandMoveUp
	case key.Matches(msg, k.Down):
		return core.CommandMoveDown
	case key.Matches(msg, k.Left):
		return core.CommandMoveLeft
	case key.Matches(msg, k.Right):
		return core.CommandMoveRight
	case key.Matches(msg, k.Undo):
		return core.CommandUndo
	case key.Matches(msg, k.Restart):
		return core.CommandRestart
	}
	return core.CommandNone
}

// IsQuit reports whether the key is a quit request.
func (k KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}

// IsHelp reports whether the key toggles the full help view.
func (k KeyMap) IsHelp(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Help)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.Restart},
		{k.Help, k.Quit},
	}
}
