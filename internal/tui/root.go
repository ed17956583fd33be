package tui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/todolist/internal/checklist"
	"github.com/alexander-akhmetov/todolist/internal/config"
	"github.com/alexander-akhmetov/todolist/internal/debug"
	"github.com/alexander-akhmetov/todolist/internal/dirs"
	"github.com/alexander-akhmetov/todolist/internal/export"
	"github.com/alexander-akhmetov/todolist/internal/timing"
	"github.com/alexander-akhmetov/todolist/internal/todo"
)

// Version information set from main.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var (
	printFormat string
	noMouse     bool
	titleFlag   string
	fromFile    string
)

var rootCmd = &cobra.Command{
	Use:   "todolist [item...]",
	Short: "A to-do list in your terminal",
	Long: `todolist opens an interactive to-do list. Add, edit, delete, reorder and
check off items with the keyboard or the mouse. Items given as arguments
are added to the list before it opens.

Nothing is saved: the list lives only as long as the program. Use --print
to write the final list to stdout on exit.

Shortcuts:
  enter            add the typed item / save an edit
  delete           delete the last item
  ctrl+del, ctrl+x clear the list (alt+del where ctrl+del is not reported)
  tab              switch between the input and the list
  ?                show all keys`,
	Example: `  todolist
  todolist "buy milk" "walk the dog"
  todolist --print md > today.md
  todolist --from today.md --print md > tomorrow.md`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func Execute() error {
	return rootCmd.Execute()
}

// UsageError is an error caused by the command line itself: an unknown
// flag or a bad flag value.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func init() {
	rootCmd.Flags().StringVar(&printFormat, "print", "", "Print the list on exit: md, json or diff (changes since start)")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
	rootCmd.Flags().StringVar(&titleFlag, "title", "", "Heading shown above the list (overrides config)")
	rootCmd.Flags().StringVar(&fromFile, "from", "", "Start with the items of a markdown task list (- for stdin)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	rootCmd.AddCommand(configCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	timing.Start()
	timing.Log("runRoot: begin")

	format, err := export.ParseFormat(printFormat)
	if err != nil {
		return &UsageError{Err: err}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg.ApplyCLIFlags(titleFlag, noMouse)
	timing.Log("runRoot: config loaded")

	logFile, err := debug.Open(dirs.DebugLogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open debug log: %v\n", err)
	} else {
		defer logFile.Close()
	}
	debug.Logf("config sources: %v", cfg.Sources())

	store := todo.NewStore()
	if fromFile != "" {
		list, err := checklist.ReadFile(fromFile)
		if err != nil {
			return err
		}
		n := list.AddTo(store)
		debug.Logf("loaded %d items (%d open) from %s", n, list.Remaining(), fromFile)
		if list.Title != "" && titleFlag == "" {
			cfg.Title = list.Title
		}
	}
	seedStore(store, args)
	before := store.Items()

	timing.Log("runRoot: starting TUI")
	if err := runTUI(store, cfg); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	return export.Write(cmd.OutOrStdout(), format, before, store.Items())
}

// seedStore appends the given items to store; blank ones are skipped and
// line breaks inside an argument become spaces.
func seedStore(store *todo.Store, items []string) {
	for _, text := range items {
		store.Add(todo.SingleLine(text))
	}
}
