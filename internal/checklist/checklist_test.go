package checklist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/todolist/internal/export"
	"github.com/alexander-akhmetov/todolist/internal/todo"
)

func TestParse(t *testing.T) {
	content := `# Saturday

Some notes that are not tasks.

- [ ] buy milk
- [x] walk the dog
* [X] call mom  
  - [ ] nested item
- [] not a checkbox
- plain bullet
`
	c := Parse(content)

	assert.Equal(t, "Saturday", c.Title)
	assert.Equal(t, []Entry{
		{Text: "buy milk"},
		{Text: "walk the dog", Completed: true},
		{Text: "call mom", Completed: true},
		{Text: "nested item"},
	}, c.Entries)
	assert.Equal(t, 2, c.Remaining())
}

func TestParseWithoutTitle(t *testing.T) {
	c := Parse("- [ ] only task\n")
	assert.Empty(t, c.Title)
	assert.Len(t, c.Entries, 1)
}

func TestParseEmpty(t *testing.T) {
	c := Parse("")
	assert.Empty(t, c.Title)
	assert.Empty(t, c.Entries)
	assert.Zero(t, c.Remaining())
}

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader("- [x] done\n"))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Text: "done", Completed: true}}, c.Entries)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "today.md")
	require.NoError(t, os.WriteFile(path, []byte("# Today\n- [ ] a\n- [x] b\n"), 0o600))

	c, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Today", c.Title)
	assert.Len(t, c.Entries, 2)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open checklist")
}

func TestAddTo(t *testing.T) {
	store := todo.NewStore()
	require.True(t, store.Add("existing"))

	c := Parse("- [ ] a\n- [x] b\n")
	assert.Equal(t, 2, c.AddTo(store))

	items := store.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[1].Text)
	assert.False(t, items[1].Completed)
	assert.Equal(t, "b", items[2].Text)
	assert.True(t, items[2].Completed)
}

func TestMarkdownRoundTrip(t *testing.T) {
	store := todo.NewStore()
	store.Add("one")
	store.Add("two")
	store.Toggle(1)

	restored := todo.NewStore()
	Parse(export.Markdown(store.Items())).AddTo(restored)

	want := store.Items()
	got := restored.Items()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Text, got[i].Text)
		assert.Equal(t, want[i].Completed, got[i].Completed)
	}
}
