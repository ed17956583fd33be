package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ctrlDeleteSeq is how bubbletea prints the CSI 3;5~ sequence terminals send
// for ctrl+delete. It has no key type of its own, so it never arrives as a
// tea.KeyMsg.
const ctrlDeleteSeq = "?CSI[51 59 53 126]?"

func isCtrlDelete(msg tea.Msg) bool {
	s, ok := msg.(fmt.Stringer)
	return ok && s.String() == ctrlDeleteSeq
}

// keyMap holds every binding the TUI reacts to. Bindings are matched
// per focus area in update.go.
type keyMap struct {
	Submit     key.Binding
	RemoveLast key.Binding
	Clear      key.Binding

	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Toggle   key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Grab     key.Binding
	Copy     key.Binding

	Focus  key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
	Abort  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add / save"),
		),
		RemoveLast: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete last"),
		),
		// ctrl+delete itself is matched in Update via isCtrlDelete; some
		// terminals report it as alt+delete, and ctrl+x works everywhere.
		Clear: key.NewBinding(
			key.WithKeys("alt+delete", "ctrl+x"),
			key.WithHelp("ctrl+del/alt+del/ctrl+x", "clear all"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑/K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓/J", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Grab: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "grab / drop"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy text"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// FullHelp implements help.KeyMap. Rows are rendered as sections of the
// help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.RemoveLast, k.Clear, k.Focus},
		{k.Up, k.Down, k.Toggle, k.Edit, k.Delete, k.Copy},
		{k.MoveUp, k.MoveDown, k.Grab, k.Cancel},
		{k.Help, k.Quit, k.Abort},
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Help, k.Abort}
}
