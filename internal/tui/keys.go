package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HaiFongPan/panes-cli/internal/panels"
)

// KeyMap defines keybindings for the pane view
type KeyMap struct {
	Move        key.Binding
	MoveCoarse  key.Binding
	Bounds      key.Binding
	Toggle      key.Binding
	NextDivider key.Binding
	PrevDivider key.Binding
	Collapse    key.Binding
	Expand      key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right", "up", "down"),
			key.WithHelp("←/→/↑/↓", "move divider"),
		),
		MoveCoarse: key.NewBinding(
			key.WithKeys("shift+left", "shift+right", "shift+up", "shift+down"),
			key.WithHelp("shift+arrow", "move divider 10%"),
		),
		Bounds: key.NewBinding(
			key.WithKeys("home", "end"),
			key.WithHelp("home/end", "move to bound"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle panel"),
		),
		NextDivider: key.NewBinding(
			key.WithKeys("tab", "f6"),
			key.WithHelp("tab/f6", "next divider"),
		),
		PrevDivider: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous divider"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse panel"),
		),
		Expand: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand panel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.NextDivider, k.Toggle, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.MoveCoarse, k.Bounds, k.Toggle},
		{k.NextDivider, k.PrevDivider},
		{k.Collapse, k.Expand, k.Copy},
		{k.Help, k.Quit},
	}
}

// dividerKey translates a key press into a divider key and the coarse flag.
func dividerKey(msg tea.KeyMsg) (panels.Key, bool) {
	switch msg.String() {
	case "left":
		return panels.KeyArrowLeft, false
	case "right":
		return panels.KeyArrowRight, false
	case "up":
		return panels.KeyArrowUp, false
	case "down":
		return panels.KeyArrowDown, false
	case "shift+left":
		return panels.KeyArrowLeft, true
	case "shift+right":
		return panels.KeyArrowRight, true
	case "shift+up":
		return panels.KeyArrowUp, true
	case "shift+down":
		return panels.KeyArrowDown, true
	case "home":
		return panels.KeyHome, false
	case "end":
		return panels.KeyEnd, false
	case "enter":
		return panels.KeyEnter, false
	}
	return panels.KeyNone, false
}
