package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/todolist/internal/debug"
)

func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.mouse || m.showHelp {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.cursor = max(0, m.cursor-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.cursor = max(0, min(m.store.Len()-1, m.cursor+1))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.mousePress(msg)
	case msg.Action == tea.MouseActionMotion:
		return m.mouseMotion(msg), nil
	case msg.Action == tea.MouseActionRelease:
		return m.mouseRelease(msg)
	}
	return m, nil
}

func (m Model) mousePress(msg tea.MouseMsg) (Model, tea.Cmd) {
	row := m.rowAt(msg.Y)

	// Pressing anywhere outside the text being edited leaves the edit
	// input, which saves it.
	if m.focus == focusEdit {
		_, editRow, _ := m.store.Editing()
		if row >= 0 && row == editRow && m.inTextArea(msg.X) {
			return m, nil
		}
		m, _ = m.commitEdit()
	}

	if msg.Y == inputRow {
		if msg.X >= m.addButtonX() {
			m = m.submitInput()
		}
		return m.focusInputArea()
	}

	if row < 0 {
		return m, nil
	}
	m.press = &press{row: row}
	m.cursor = row
	if m.focus == focusInput {
		m = m.focusListArea()
	}
	return m, nil
}

func (m Model) mouseMotion(msg tea.MouseMsg) Model {
	if m.press == nil {
		return m
	}
	row := m.rowAt(msg.Y)

	_, _, dragging := m.store.Dragging()
	if !dragging && row >= 0 && row != m.press.row {
		dragging = m.store.BeginDrag(m.press.row)
	}
	if dragging {
		m.dropTarget = row
	}
	return m
}

func (m Model) mouseRelease(msg tea.MouseMsg) (Model, tea.Cmd) {
	p := m.press
	m.press = nil
	m.dropTarget = -1
	if p == nil {
		return m, nil
	}
	row := m.rowAt(msg.Y)

	if _, _, dragging := m.store.Dragging(); dragging {
		if row < 0 {
			m.store.CancelDrag()
			return m, nil
		}
		if m.store.DropAt(row) {
			m.cursor = row
		}
		return m, nil
	}

	if row != p.row {
		return m, nil
	}
	return m.clickRow(row, msg.X)
}

// clickRow handles a press and release on the same row. A click on the
// delete button removes the item; anywhere else toggles it, and a second
// click on the same item within the double-click window starts editing.
func (m Model) clickRow(row, x int) (Model, tea.Cmd) {
	if x >= m.deleteX() {
		m.store.Remove(row)
		return m, nil
	}

	it, ok := m.store.Item(row)
	if !ok {
		return m, nil
	}
	m.store.Toggle(row)

	now := m.now()
	if m.lastClick.id == it.ID && now.Sub(m.lastClick.at) <= m.doubleClick {
		debug.Logf("tui: double-click on row %d", row)
		m.lastClick = click{}
		return m.beginEdit(row)
	}
	m.lastClick = click{id: it.ID, at: now}
	return m, nil
}
