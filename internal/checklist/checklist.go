// Package checklist reads markdown task lists ("- [ ] text" lines) so a
// list can be started from a file written by --print md. Entry text is
// trimmed, so surrounding spaces do not survive a round trip.
package checklist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alexander-akhmetov/todolist/internal/todo"
)

// Entry is one checkbox line.
type Entry struct {
	Text      string
	Completed bool
}

// Checklist is a parsed markdown task list.
type Checklist struct {
	// Title is taken from the first # heading, if any.
	Title   string
	Entries []Entry
}

var (
	titleRegex = regexp.MustCompile(`(?m)^#[ \t]+(.+?)[ \t]*$`)
	entryRegex = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+\[([ xX])\][ \t]+(.+?)[ \t]*$`)
)

// ReadFile parses the checklist at path. A path of "-" reads stdin.
func ReadFile(path string) (*Checklist, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("open checklist: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a checklist from r.
func Read(r io.Reader) (*Checklist, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read checklist: %w", err)
	}
	return Parse(string(content)), nil
}

// Parse extracts the title and checkbox entries from markdown. Lines that
// are not checkboxes are ignored.
func Parse(content string) *Checklist {
	c := &Checklist{}
	if m := titleRegex.FindStringSubmatch(content); len(m) > 1 {
		c.Title = strings.TrimSpace(m[1])
	}

	matches := entryRegex.FindAllStringSubmatch(content, -1)
	c.Entries = make([]Entry, 0, len(matches))
	for _, m := range matches {
		c.Entries = append(c.Entries, Entry{
			Text:      m[2],
			Completed: m[1] != " ",
		})
	}
	return c
}

// Remaining counts entries not yet completed.
func (c *Checklist) Remaining() int {
	n := 0
	for _, e := range c.Entries {
		if !e.Completed {
			n++
		}
	}
	return n
}

// AddTo appends the entries to store, keeping their completed state, and
// returns how many were added.
func (c *Checklist) AddTo(store *todo.Store) int {
	added := 0
	for _, e := range c.Entries {
		if !store.Add(e.Text) {
			continue
		}
		if e.Completed {
			store.Toggle(store.Len() - 1)
		}
		added++
	}
	return added
}
