// Package dirs provides XDG Base Directory Specification compliant paths
// for todolist's configuration and state.
package dirs

import (
	"os"
	"path/filepath"
)

const appName = "todolist"

// ConfigDir returns the todolist configuration directory.
// Resolution order: XDG_CONFIG_HOME/todolist > ~/.config/todolist.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appName)
	}
	return filepath.Join(home, ".config", appName)
}

// StateDir returns the todolist state directory. Only the debug log lives
// here; the list itself is never written to disk.
// Resolution order: TODOLIST_STATE_DIR > XDG_STATE_HOME/todolist > ~/.local/state/todolist.
func StateDir() string {
	if dir := os.Getenv("TODOLIST_STATE_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "state", appName)
	}
	return filepath.Join(home, ".local", "state", appName)
}

// DebugLogPath returns the debug log file path (StateDir/debug.log).
func DebugLogPath() string {
	return filepath.Join(StateDir(), "debug.log")
}
