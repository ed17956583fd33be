package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/todolist/internal/config"
	"github.com/alexander-akhmetov/todolist/internal/todo"
)

// isolateRoot points config and state at temp dirs and restores the root
// command's flags and runner afterwards.
func isolateRoot(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TODOLIST_STATE_DIR", t.TempDir())
	t.Setenv("TODOLIST_TITLE", "")

	orig := runTUI
	t.Cleanup(func() {
		runTUI = orig
		printFormat, titleFlag, fromFile, noMouse = "", "", "", false
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
}

func TestSeedStore(t *testing.T) {
	store := todo.NewStore()
	seedStore(store, []string{"buy milk", "  ", "", "walk\nthe dog"})
	assert.Equal(t, []string{"buy milk", "walk the dog"}, texts(store))
}

func TestRootRejectsUnknownPrintFormat(t *testing.T) {
	isolateRoot(t)

	rootCmd.SetArgs([]string{"--print", "xml"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")

	var usage *UsageError
	assert.True(t, errors.As(err, &usage))
}

func TestRootUnknownFlagIsUsageError(t *testing.T) {
	isolateRoot(t)

	rootCmd.SetArgs([]string{"--bogus"})
	err := rootCmd.Execute()
	require.Error(t, err)

	var usage *UsageError
	assert.True(t, errors.As(err, &usage))
}

func TestRootPrintsFinalList(t *testing.T) {
	isolateRoot(t)

	var seen []string
	runTUI = func(store *todo.Store, cfg *config.Config) error {
		seen = texts(store)
		store.Add("milk")
		store.Toggle(0)
		return nil
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--print", "md", "bread"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, []string{"bread"}, seen)
	assert.Equal(t, "- [x] bread\n- [ ] milk\n", out.String(), "stdout holds only the list")
}

func TestRootWithoutPrintWritesNothing(t *testing.T) {
	isolateRoot(t)
	runTUI = func(*todo.Store, *config.Config) error { return nil }

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"bread"})
	require.NoError(t, rootCmd.Execute())

	assert.Empty(t, out.String())
}

func TestRootFromChecklist(t *testing.T) {
	isolateRoot(t)
	path := filepath.Join(t.TempDir(), "today.md")
	require.NoError(t, os.WriteFile(path, []byte("# Saturday\n- [x] bread\n- [ ] eggs\n"), 0o600))

	var title string
	var items []todo.Item
	runTUI = func(store *todo.Store, cfg *config.Config) error {
		title = cfg.Title
		items = store.Items()
		return nil
	}

	rootCmd.SetArgs([]string{"--from", path, "milk"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "Saturday", title)
	require.Len(t, items, 3)
	assert.True(t, items[0].Completed)
	assert.Equal(t, "milk", items[2].Text)
}

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"print", "no-mouse", "title", "from"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-01-15")
	t.Cleanup(func() { SetVersionInfo("dev", "unknown", "unknown") })

	assert.Equal(t, "1.2.3 (abc1234, 2026-01-15)", rootCmd.Version)
}

func TestConfigShow(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TODOLIST_TITLE", "Groceries")
	t.Setenv("TODOLIST_STATE_DIR", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "show"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "title:           Groceries")
	assert.Contains(t, got, "env:TODOLIST_TITLE")
	assert.Contains(t, got, "double_click_ms: 400")
	assert.Regexp(t, `Debug log: +\S+ \((on|off, set TODOLIST_DEBUG=1)\)`, got)
}

func TestRootFromMissingFile(t *testing.T) {
	isolateRoot(t)

	rootCmd.SetArgs([]string{"--from", "/nonexistent/today.md"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open checklist")
}
