// Package export renders a to-do list for printing after the TUI exits.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/alexander-akhmetov/todolist/internal/todo"
)

// Format selects the output representation.
type Format string

const (
	FormatNone     Format = ""
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatDiff     Format = "diff"
)

// ParseFormat validates a --print flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatNone, FormatMarkdown, FormatJSON, FormatDiff:
		return f, nil
	case "markdown":
		return FormatMarkdown, nil
	default:
		return FormatNone, fmt.Errorf("unknown print format %q (want md, json or diff)", s)
	}
}

// Markdown renders items as a GitHub-style task list.
func Markdown(items []todo.Item) string {
	var b strings.Builder
	for _, it := range items {
		mark := " "
		if it.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, todo.SingleLine(it.Text))
	}
	return b.String()
}

// JSON renders items as an indented JSON document with totals.
func JSON(items []todo.Item) (string, error) {
	doc, err := sjson.SetRaw("", "items", "[]")
	if err != nil {
		return "", fmt.Errorf("build json: %w", err)
	}
	remaining := 0
	for _, it := range items {
		doc, err = sjson.Set(doc, "items.-1", map[string]any{
			"id":        it.ID,
			"text":      it.Text,
			"completed": it.Completed,
		})
		if err != nil {
			return "", fmt.Errorf("add item %s: %w", it.ID, err)
		}
		if !it.Completed {
			remaining++
		}
	}
	if doc, err = sjson.Set(doc, "total", len(items)); err != nil {
		return "", fmt.Errorf("set total: %w", err)
	}
	if doc, err = sjson.Set(doc, "remaining", remaining); err != nil {
		return "", fmt.Errorf("set remaining: %w", err)
	}
	return string(pretty.Pretty([]byte(doc))), nil
}

// Diff renders a unified diff between two lists in markdown form. It is
// empty when nothing changed.
func Diff(before, after []todo.Item) string {
	return udiff.Unified("before", "after", Markdown(before), Markdown(after))
}

// Write prints the list in format f. before is the list as it was when the
// session started and is only used by FormatDiff.
func Write(w io.Writer, f Format, before, after []todo.Item) error {
	var out string
	switch f {
	case FormatNone:
		return nil
	case FormatMarkdown:
		out = Markdown(after)
	case FormatJSON:
		s, err := JSON(after)
		if err != nil {
			return err
		}
		out = s
	case FormatDiff:
		out = Diff(before, after)
	default:
		return fmt.Errorf("unknown print format %q", f)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write %s output: %w", f, err)
	}
	return nil
}
