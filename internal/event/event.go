// Package event defines typed change notifications emitted by the to-do
// store and consumed by the TUI status line and the debug log.
package event

import "fmt"

// Kind identifies the type of event.
type Kind int

const (
	// KindAdded is a new item appended to the list.
	KindAdded Kind = iota
	// KindRemoved is an item removed from the list.
	KindRemoved
	// KindToggled is a flip of an item's completed flag.
	KindToggled
	// KindEditStarted marks an item entering edit mode.
	KindEditStarted
	// KindEdited is a committed edit.
	KindEdited
	// KindEditCancelled is an edit discarded without writing.
	KindEditCancelled
	// KindMoved is an item reinserted at a new position.
	KindMoved
	// KindCleared is the whole list emptied.
	KindCleared
	// KindDragStarted marks an item picked up for reordering.
	KindDragStarted
	// KindDragCancelled is a drag that ended without a drop.
	KindDragCancelled
)

var kindNames = map[Kind]string{
	KindAdded:         "added",
	KindRemoved:       "removed",
	KindToggled:       "toggled",
	KindEditStarted:   "edit-started",
	KindEdited:        "edited",
	KindEditCancelled: "edit-cancelled",
	KindMoved:         "moved",
	KindCleared:       "cleared",
	KindDragStarted:   "drag-started",
	KindDragCancelled: "drag-cancelled",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is a single applied store mutation.
type Event struct {
	Kind   Kind
	ItemID string // empty for KindCleared
	Text   string // item text after the mutation
	Index  int    // position of the item before the mutation
	To     int    // destination position (KindMoved only)
	Count  int    // items removed (KindCleared only)
	Done   bool   // completed flag after the mutation (KindToggled only)
}

// Handler is a callback that receives typed events.
type Handler func(Event)

// Summary returns a short human-readable description for status lines.
func (e Event) Summary() string {
	switch e.Kind {
	case KindAdded:
		return fmt.Sprintf("Added %q", e.Text)
	case KindRemoved:
		return fmt.Sprintf("Deleted %q", e.Text)
	case KindToggled:
		if e.Done {
			return fmt.Sprintf("Completed %q", e.Text)
		}
		return fmt.Sprintf("Reopened %q", e.Text)
	case KindEditStarted:
		return fmt.Sprintf("Editing %q", e.Text)
	case KindEdited:
		return fmt.Sprintf("Saved %q", e.Text)
	case KindEditCancelled:
		return "Edit cancelled"
	case KindMoved:
		return fmt.Sprintf("Moved %q to position %d", e.Text, e.To+1)
	case KindCleared:
		if e.Count == 1 {
			return "Cleared 1 item"
		}
		return fmt.Sprintf("Cleared %d items", e.Count)
	case KindDragStarted:
		return fmt.Sprintf("Moving %q", e.Text)
	case KindDragCancelled:
		return "Move cancelled"
	default:
		return e.Kind.String()
	}
}
