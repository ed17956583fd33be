package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/alexander-akhmetov/todolist/internal/config"
	"github.com/alexander-akhmetov/todolist/internal/debug"
	"github.com/alexander-akhmetov/todolist/internal/todo"
)

// runTUI is the program runner used by the root command; tests swap it out.
var runTUI = Run

// Run shows the to-do list until the user quits. Key and mouse input is
// read only while Run is active; nothing stays registered after it returns.
func Run(store *todo.Store, cfg *config.Config) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	// With --from - stdin holds the checklist, so keys come from the tty.
	if !term.IsTerminal(os.Stdin.Fd()) {
		opts = append(opts, tea.WithInputTTY())
	}
	// With --print > file stdout is for the list, so the screen goes elsewhere.
	out, closeOut := screenOutput(os.Stdout, openTTY)
	defer closeOut()
	opts = append(opts, tea.WithOutput(out))
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	debug.Logf("tui: starting with %d items, mouse=%t", store.Len(), cfg.Mouse)
	_, err := tea.NewProgram(NewModel(store, cfg), opts...).Run()
	debug.Logf("tui: stopped with %d items", store.Len())
	return err
}

func openTTY() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

// screenOutput picks where the TUI draws: stdout when it is a terminal,
// otherwise the controlling tty, and stderr as a last resort.
func screenOutput(stdout *os.File, tty func() (*os.File, error)) (io.Writer, func()) {
	if term.IsTerminal(stdout.Fd()) {
		return stdout, func() {}
	}
	f, err := tty()
	if err != nil {
		debug.Logf("tui: stdout is not a terminal and no tty: %v", err)
		return os.Stderr, func() {}
	}
	debug.Logf("tui: stdout is not a terminal, drawing to %s", f.Name())
	return f, func() { f.Close() }
}
