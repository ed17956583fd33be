package todo

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/alexander-akhmetov/todolist/internal/event"
)

// Store is the ordered to-do list together with its edit and drag state.
//
// Callers address items by position. Internally every item is keyed by a
// stable ID, so a pending edit or drag keeps pointing at the same item when
// other items are removed or reordered.
//
// Every mutation either applies completely or leaves the store unchanged.
// Out-of-range indexes are no-ops reported as false. A Store is not safe for
// concurrent use; the TUI drives it from a single goroutine.
type Store struct {
	order []string
	items map[string]Item

	edit *EditState
	drag *DragState

	onChange event.Handler
	newID    func() string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		items: make(map[string]Item),
		newID: uuid.NewString,
	}
}

// OnChange registers the handler notified after each applied mutation.
// A nil handler disables notifications.
func (s *Store) OnChange(h event.Handler) {
	s.onChange = h
}

func (s *Store) emit(e event.Event) {
	if s.onChange != nil {
		s.onChange(e)
	}
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.order)
}

func (s *Store) valid(index int) bool {
	return index >= 0 && index < len(s.order)
}

// Items returns a copy of the list in display order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.order))
	for i, id := range s.order {
		out[i] = s.items[id]
	}
	return out
}

// Item returns the item at index.
func (s *Store) Item(index int) (Item, bool) {
	if !s.valid(index) {
		return Item{}, false
	}
	return s.items[s.order[index]], true
}

// IndexOf returns the current position of the item with the given ID, or -1.
func (s *Store) IndexOf(id string) int {
	return slices.Index(s.order, id)
}

// Remaining returns the number of items not yet completed.
func (s *Store) Remaining() int {
	n := 0
	for _, id := range s.order {
		if !s.items[id].Completed {
			n++
		}
	}
	return n
}

// Add appends a new, not completed item. Text that is empty after trimming
// whitespace is ignored. The text itself is stored as given.
func (s *Store) Add(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	item := Item{ID: s.newID(), Text: text}
	order := slices.Clone(s.order)
	s.order = append(order, item.ID)
	s.items[item.ID] = item
	s.emit(event.Event{Kind: event.KindAdded, ItemID: item.ID, Text: item.Text, Index: len(s.order) - 1})
	return true
}

// Remove deletes the item at index; later items shift down by one.
func (s *Store) Remove(index int) bool {
	if !s.valid(index) {
		return false
	}
	id := s.order[index]
	item := s.items[id]
	s.order = slices.Delete(slices.Clone(s.order), index, index+1)
	delete(s.items, id)
	s.forget(id)
	s.emit(event.Event{Kind: event.KindRemoved, ItemID: id, Text: item.Text, Index: index})
	return true
}

// RemoveLast deletes the final item if the list is non-empty.
func (s *Store) RemoveLast() bool {
	return s.Remove(len(s.order) - 1)
}

// Clear empties the list and drops any pending edit or drag.
func (s *Store) Clear() {
	if len(s.order) == 0 {
		return
	}
	n := len(s.order)
	s.order = nil
	s.items = make(map[string]Item)
	s.edit = nil
	s.drag = nil
	s.emit(event.Event{Kind: event.KindCleared, Count: n})
}

// Toggle flips the completed flag of the item at index.
func (s *Store) Toggle(index int) bool {
	if !s.valid(index) {
		return false
	}
	id := s.order[index]
	item := s.items[id]
	item.Completed = !item.Completed
	s.items[id] = item
	s.emit(event.Event{Kind: event.KindToggled, ItemID: id, Text: item.Text, Index: index, Done: item.Completed})
	return true
}

// Move removes the item at from and reinserts it at to, where to is a
// position in the resulting sequence. Both indexes must be in range.
func (s *Store) Move(from, to int) bool {
	if !s.valid(from) || !s.valid(to) {
		return false
	}
	if from == to {
		return true
	}
	id := s.order[from]
	order := slices.Delete(slices.Clone(s.order), from, from+1)
	s.order = slices.Insert(order, to, id)
	s.emit(event.Event{Kind: event.KindMoved, ItemID: id, Text: s.items[id].Text, Index: from, To: to})
	return true
}

// forget drops edit or drag state that points at a removed item.
func (s *Store) forget(id string) {
	if s.edit != nil && s.edit.ID == id {
		s.edit = nil
	}
	if s.drag != nil && s.drag.ID == id {
		s.drag = nil
	}
}
