package tui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/todolist/internal/config"
	"github.com/alexander-akhmetov/todolist/internal/debug"
	"github.com/alexander-akhmetov/todolist/internal/dirs"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage todolist configuration",
	Long:  `View and manage todolist configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration with source annotations",
	Long: `Show the fully resolved configuration and the sources it came from.

Configuration is loaded from multiple sources with the following precedence:
  1. Embedded defaults (built into binary)
  2. Global config (~/.config/todolist/config.yaml)
  3. Environment variables (TODOLIST_*)
  4. Local config (.todolist/config.yaml)
  5. CLI flags (highest precedence)`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "# todolist configuration")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "## Sources (in order of precedence)")
	for _, src := range cfg.Sources() {
		fmt.Fprintf(out, "  - %s\n", src)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Directories")
	fmt.Fprintf(out, "  Global config: %s\n", cfg.ConfigDir())
	if cfg.LocalDir() != "" {
		fmt.Fprintf(out, "  Local config:  %s\n", cfg.LocalDir())
	} else {
		fmt.Fprintf(out, "  Local config:  (none detected)\n")
	}
	logState := "off, set TODOLIST_DEBUG=1"
	if debug.Enabled() {
		logState = "on"
	}
	fmt.Fprintf(out, "  Debug log:     %s (%s)\n", dirs.DebugLogPath(), logState)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Display")
	fmt.Fprintf(out, "  title:           %s\n", cfg.Title)
	fmt.Fprintf(out, "  placeholder:     %s\n", cfg.Placeholder)
	if cfg.CharLimit > 0 {
		fmt.Fprintf(out, "  char_limit:      %d\n", cfg.CharLimit)
	} else {
		fmt.Fprintf(out, "  char_limit:      (unlimited)\n")
	}
	fmt.Fprintf(out, "  hide_help:       %t\n", cfg.HideHelp)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Mouse")
	fmt.Fprintf(out, "  mouse:           %t\n", cfg.Mouse)
	fmt.Fprintf(out, "  double_click_ms: %d\n", cfg.DoubleClickMS)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Theme")
	fmt.Fprintf(out, "  accent: %s\n", cfg.Theme.Accent)
	fmt.Fprintf(out, "  muted:  %s\n", cfg.Theme.Muted)
	fmt.Fprintf(out, "  done:   %s\n", cfg.Theme.Done)

	return nil
}
