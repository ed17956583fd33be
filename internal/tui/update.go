package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/alexander-akhmetov/todolist/internal/debug"
	"github.com/alexander-akhmetov/todolist/internal/timing"
)

var writeClipboard = clipboard.WriteAll

func createRendererCmd(width int) tea.Cmd {
	return func() tea.Msg {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(max(width-8, 40)),
		)
		if err != nil {
			debug.Logf("tui: failed to create glamour renderer: %v", err)
		}
		return rendererReadyMsg{renderer: renderer}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: writeClipboard(text)}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.WindowSize())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		timing.Log("Update: WindowSizeMsg received")
		m, cmd = m.handleResize(msg)

	case rendererReadyMsg:
		timing.Log("Update: rendererReadyMsg received")
		m.renderer = msg.renderer

	case clipboardMsg:
		if msg.err != nil {
			debug.Logf("tui: clipboard write failed: %v", msg.err)
			m.status = fmt.Sprintf("Clipboard unavailable: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Copied %q", msg.text)
		}

	default:
		if isCtrlDelete(msg) {
			if !m.showHelp {
				m.store.Clear()
			}
			break
		}
		// Cursor blink and other textinput internals.
		if m.focus == focusEdit {
			m.editInput, cmd = m.editInput.Update(msg)
		} else {
			m.input, cmd = m.input.Update(msg)
		}
	}

	return m.sync(), cmd
}

// sync folds pending store events into the status line and debug log, and
// reconciles view state the store may have invalidated.
func (m Model) sync() Model {
	for _, e := range m.changes.drain() {
		debug.Logf("store: %s id=%s index=%d to=%d text=%q", e.Kind, e.ItemID, e.Index, e.To, e.Text)
		m.status = e.Summary()
	}

	if m.focus == focusEdit {
		if _, _, ok := m.store.Editing(); !ok {
			m, _ = m.leaveEdit()
		}
	}
	if _, _, ok := m.store.Dragging(); !ok && m.press == nil {
		m.dropTarget = -1
	}

	m.refresh()
	return m
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.input.Width = max(1, m.addButtonX()-len(m.input.Prompt)-2)
	m.editInput.Width = max(1, m.textWidth()-1)

	if m.ready {
		return m, nil
	}
	m.ready = true
	return m, createRendererCmd(m.contentWidth())
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Clear) {
		m.store.Clear()
		return m, nil
	}
	if key.Matches(msg, m.keys.RemoveLast) && m.deleteReachesList() {
		m.store.RemoveLast()
		return m, nil
	}

	switch m.focus {
	case focusEdit:
		return m.handleEditKey(msg)
	case focusList:
		return m.handleListKey(msg)
	default:
		return m.handleInputKey(msg)
	}
}

// deleteReachesList reports whether the Delete key removes the last item
// rather than a character in the focused text input.
func (m Model) deleteReachesList() bool {
	switch m.focus {
	case focusEdit:
		return false
	case focusInput:
		return m.input.Value() == ""
	default:
		return true
	}
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitInput(), nil

	case key.Matches(msg, m.keys.Focus, m.keys.Cancel):
		return m.focusListArea(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitInput() Model {
	if m.store.Add(m.input.Value()) {
		m.input.Reset()
	}
	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	_, _, dragging := m.store.Dragging()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(0, m.cursor-1)
		if dragging {
			m.dropTarget = m.cursor
		}

	case key.Matches(msg, m.keys.Down):
		m.cursor = max(0, min(m.store.Len()-1, m.cursor+1))
		if dragging {
			m.dropTarget = m.cursor
		}

	case key.Matches(msg, m.keys.MoveUp):
		if !dragging && m.store.Move(m.cursor, m.cursor-1) {
			m.cursor--
		}

	case key.Matches(msg, m.keys.MoveDown):
		if !dragging && m.store.Move(m.cursor, m.cursor+1) {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Grab), dragging && key.Matches(msg, m.keys.Submit):
		if dragging {
			m.store.DropAt(m.cursor)
			m.dropTarget = -1
		} else if m.store.BeginDrag(m.cursor) {
			m.dropTarget = m.cursor
		}

	case key.Matches(msg, m.keys.Toggle):
		m.store.Toggle(m.cursor)

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit(m.cursor)

	case key.Matches(msg, m.keys.Delete):
		m.store.Remove(m.cursor)

	case key.Matches(msg, m.keys.Copy):
		if it, ok := m.store.Item(m.cursor); ok {
			return m, copyCmd(it.Text)
		}

	case key.Matches(msg, m.keys.Cancel):
		if dragging {
			m.store.CancelDrag()
			m.dropTarget = -1
			return m, nil
		}
		return m.focusInputArea()

	case key.Matches(msg, m.keys.Focus):
		if dragging {
			m.store.CancelDrag()
		}
		return m.focusInputArea()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Focus):
		return m.commitEdit()

	case key.Matches(msg, m.keys.Cancel):
		m.store.CancelEdit()
		return m.leaveEdit()
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.store.SetDraft(m.editInput.Value())
	return m, cmd
}

func (m Model) beginEdit(index int) (Model, tea.Cmd) {
	if !m.store.BeginEdit(index) {
		return m, nil
	}
	edit, _, _ := m.store.Editing()

	if m.focus != focusEdit {
		m.editReturn = m.focus
	}
	m.focus = focusEdit
	m.cursor = index
	m.input.Blur()
	m.editInput.CharLimit = editLimit(m.charLimit, edit.Draft)
	m.editInput.SetValue(edit.Draft)
	m.editInput.CursorEnd()
	return m, m.editInput.Focus()
}

// editLimit keeps the configured input limit from cutting an item that
// entered the list another way (arguments, --from) and is already longer.
func editLimit(limit int, text string) int {
	if limit <= 0 {
		return 0
	}
	return max(limit, utf8.RuneCountInString(text))
}

func (m Model) commitEdit() (Model, tea.Cmd) {
	m.store.CommitEdit(m.editInput.Value())
	return m.leaveEdit()
}

// leaveEdit returns focus to where it was before the edit began.
func (m Model) leaveEdit() (Model, tea.Cmd) {
	m.editInput.Blur()
	m.editInput.Reset()
	if m.editReturn == focusInput {
		return m.focusInputArea()
	}
	m.focus = focusList
	return m, nil
}

func (m Model) focusInputArea() (Model, tea.Cmd) {
	m.focus = focusInput
	return m, m.input.Focus()
}

func (m Model) focusListArea() Model {
	m.input.Blur()
	m.focus = focusList
	return m
}
