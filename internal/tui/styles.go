package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/todolist/internal/config"
)

type styles struct {
	title      lipgloss.Style
	button     lipgloss.Style
	buttonDim  lipgloss.Style
	cursor     lipgloss.Style
	text       lipgloss.Style
	done       lipgloss.Style
	check      lipgloss.Style
	dragged    lipgloss.Style
	dropTarget lipgloss.Style
	delete     lipgloss.Style
	label      lipgloss.Style
	status     lipgloss.Style
	empty      lipgloss.Style
	helpBox    lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)
	done := lipgloss.Color(theme.Done)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		buttonDim: lipgloss.NewStyle().
			Foreground(muted),

		cursor: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		text: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")),

		done: lipgloss.NewStyle().
			Foreground(muted).
			Strikethrough(true),

		check: lipgloss.NewStyle().
			Foreground(done),

		dragged: lipgloss.NewStyle().
			Foreground(accent).
			Faint(true).
			Italic(true),

		dropTarget: lipgloss.NewStyle().
			Underline(true),

		delete: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		label: lipgloss.NewStyle().
			Foreground(muted),

		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")),

		empty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		helpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
	}
}
