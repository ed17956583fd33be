package tui

// Screen layout, top to bottom: title, blank, input row, blank, list rows,
// blank, status line, help line. Mouse hit-testing relies on these rows.
const (
	inputRow = 2
	listTop  = 4

	addButton    = "[ Add ]"
	deleteButton = "[del]"

	// rowPrefix is the cursor marker ("> ") plus the checkbox ("[ ] ").
	rowPrefix = 6

	minWidth = 30
)

func (m Model) contentWidth() int {
	return max(m.width, minWidth)
}

func (m Model) bottomLines() int {
	if m.hideHelp {
		return 2
	}
	return 3
}

func (m Model) listHeight() int {
	return max(1, m.height-listTop-m.bottomLines())
}

// textWidth is the space for item text between the checkbox and the
// delete button.
func (m Model) textWidth() int {
	return m.contentWidth() - rowPrefix - 1 - len(deleteButton)
}

func (m Model) addButtonX() int {
	return m.contentWidth() - len(addButton)
}

func (m Model) deleteX() int {
	return m.contentWidth() - len(deleteButton)
}

// rowAt maps a screen line to an item index, or -1 when the line shows no item.
func (m Model) rowAt(y int) int {
	r := y - listTop
	if r < 0 || r >= m.list.Height {
		return -1
	}
	idx := r + m.list.YOffset
	if idx >= m.store.Len() {
		return -1
	}
	return idx
}

func (m Model) inTextArea(x int) bool {
	return x >= rowPrefix && x < m.deleteX()
}

// refresh clamps the cursor, re-renders the rows and scrolls the list so
// the cursor (or the drop target while dragging) stays visible.
func (m *Model) refresh() {
	n := m.store.Len()
	m.cursor = max(0, min(m.cursor, n-1))

	m.list.Width = m.contentWidth()
	m.list.Height = m.listHeight()
	m.list.SetContent(m.renderRows())

	row := m.cursor
	if m.dropTarget >= 0 {
		row = m.dropTarget
	}
	switch {
	case row < m.list.YOffset:
		m.list.SetYOffset(row)
	case row >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(row - m.list.Height + 1)
	}
}
