package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexander-akhmetov/todolist/internal/todo"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder
	b.WriteString(m.styles.title.MaxWidth(m.contentWidth()).Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.renderInputRow())
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatusLine())
	if !m.hideHelp {
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
	}
	return b.String()
}

// fit pads or cuts s to exactly one line of width w.
func fit(s string, w int) string {
	return lipgloss.NewStyle().Width(w).MaxWidth(w).MaxHeight(1).Render(s)
}

func (m Model) renderInputRow() string {
	button := m.styles.buttonDim.Render(addButton)
	if m.focus == focusInput {
		button = m.styles.button.Render(addButton)
	}
	return fit(m.input.View(), m.addButtonX()) + button
}

func (m Model) renderRows() string {
	if m.store.Len() == 0 {
		return m.styles.empty.Render("  Nothing to do. Type above and press enter.")
	}

	edit, _, editing := m.store.Editing()
	drag, _, dragging := m.store.Dragging()

	items := m.store.Items()
	rows := make([]string, len(items))
	for i, it := range items {
		rows[i] = m.renderRow(i, it, editing && edit.ID == it.ID, dragging && drag.ID == it.ID, dragging)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(i int, it todo.Item, editing, dragged, dragActive bool) string {
	marker := "  "
	if i == m.cursor && m.focus != focusInput {
		marker = m.styles.cursor.Render("> ")
	}

	box := "[ ]"
	if it.Completed {
		box = m.styles.check.Render("[x]")
	}

	textW := m.textWidth()
	var text string
	if editing {
		text = fit(m.editInput.View(), textW)
	} else {
		style := m.styles.text
		if it.Completed {
			style = m.styles.done
		}
		switch {
		case dragged:
			style = m.styles.dragged
		case dragActive && i == m.dropTarget:
			style = style.Inherit(m.styles.dropTarget)
		}
		t := ansi.Truncate(it.Text, textW, "…")
		text = style.Render(t) + strings.Repeat(" ", max(0, textW-ansi.StringWidth(t)))
	}

	return marker + box + " " + text + " " + m.styles.delete.Render(deleteButton)
}

func (m Model) renderStatusLine() string {
	left := m.status
	if _, _, dragging := m.store.Dragging(); dragging && m.press == nil {
		left = "Moving: ↑/↓ to choose a spot, m or enter to drop, esc to cancel"
	}

	right := fmt.Sprintf("%d of %d left", m.store.Remaining(), m.store.Len())
	w := m.contentWidth()
	left = ansi.Truncate(left, max(0, w-len(right)-1), "…")
	gap := max(1, w-ansi.StringWidth(left)-len(right))

	return m.styles.status.Render(left) + strings.Repeat(" ", gap) + m.styles.label.Render(right)
}

// contextHelp returns the bindings worth showing for the focused area.
func (m Model) contextHelp() []key.Binding {
	k := m.keys
	switch m.focus {
	case focusEdit:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			k.Cancel,
		}
	case focusList:
		if _, _, dragging := m.store.Dragging(); dragging {
			return []key.Binding{k.Up, k.Down, k.Grab, k.Cancel}
		}
		return []key.Binding{k.Toggle, k.Edit, k.Delete, k.Grab, k.RemoveLast, k.Clear, k.Help, k.Quit}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
			k.Focus, k.RemoveLast, k.Clear, k.Abort,
		}
	}
}

func (m Model) renderHelp() string {
	return m.help.ShortHelpView(m.contextHelp())
}
