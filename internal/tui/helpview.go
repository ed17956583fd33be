package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/todolist/internal/debug"
)

var helpSections = []string{"Adding and clearing", "Working with items", "Reordering", "General"}

// helpMarkdown builds the key reference shown by the help overlay from the
// key map, so the overlay never drifts from the actual bindings.
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n")

	for i, group := range m.keys.FullHelp() {
		title := "More"
		if i < len(helpSections) {
			title = helpSections[i]
		}
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n| --- | --- |\n", title)
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}

	if m.mouse {
		b.WriteString("\n## Mouse\n\n")
		b.WriteString("- Click an item to toggle it, double-click to edit.\n")
		b.WriteString("- Drag an item onto another row to move it there.\n")
		b.WriteString("- Click `[del]` to delete, `[ Add ]` to add.\n")
	}

	b.WriteString("\nPress `?` or `esc` to close.\n")
	return b.String()
}

func (m Model) renderHelpOverlay() string {
	content := m.helpMarkdown()
	if m.renderer != nil {
		rendered, err := m.renderer.Render(content)
		if err != nil {
			debug.Logf("tui: help render failed: %v", err)
		} else {
			content = strings.TrimSpace(rendered)
		}
	}

	box := m.styles.helpBox.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
