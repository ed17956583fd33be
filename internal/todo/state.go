package todo

import "github.com/alexander-akhmetov/todolist/internal/event"

// Editing returns the pending edit, if any. The returned index is the
// edited item's current position.
func (s *Store) Editing() (EditState, int, bool) {
	if s.edit == nil {
		return EditState{}, -1, false
	}
	return *s.edit, s.IndexOf(s.edit.ID), true
}

// BeginEdit puts the item at index into edit mode with its current text as
// the draft. Any other pending edit is replaced.
func (s *Store) BeginEdit(index int) bool {
	if !s.valid(index) {
		return false
	}
	id := s.order[index]
	item := s.items[id]
	s.edit = &EditState{ID: id, Draft: item.Text}
	s.emit(event.Event{Kind: event.KindEditStarted, ItemID: id, Text: item.Text, Index: index})
	return true
}

// SetDraft replaces the draft text of the pending edit.
func (s *Store) SetDraft(text string) {
	if s.edit != nil {
		s.edit.Draft = text
	}
}

// CommitEdit writes text into the item in edit mode and leaves edit mode.
// The item is the one chosen by BeginEdit, wherever it sits now. It
// returns false when no edit is pending.
func (s *Store) CommitEdit(text string) bool {
	if s.edit == nil {
		return false
	}
	id := s.edit.ID
	s.edit = nil
	item, ok := s.items[id]
	if !ok {
		return false
	}
	item.Text = text
	s.items[id] = item
	s.emit(event.Event{Kind: event.KindEdited, ItemID: id, Text: text, Index: s.IndexOf(id)})
	return true
}

// CancelEdit leaves edit mode without writing the draft.
func (s *Store) CancelEdit() {
	if s.edit == nil {
		return
	}
	id := s.edit.ID
	s.edit = nil
	s.emit(event.Event{Kind: event.KindEditCancelled, ItemID: id, Index: s.IndexOf(id)})
}

// Dragging returns the pending drag, if any, with the dragged item's
// current position.
func (s *Store) Dragging() (DragState, int, bool) {
	if s.drag == nil {
		return DragState{}, -1, false
	}
	return *s.drag, s.IndexOf(s.drag.ID), true
}

// BeginDrag records the item at index as the drag source, replacing any
// earlier drag.
func (s *Store) BeginDrag(index int) bool {
	if !s.valid(index) {
		return false
	}
	id := s.order[index]
	s.drag = &DragState{ID: id}
	s.emit(event.Event{Kind: event.KindDragStarted, ItemID: id, Text: s.items[id].Text, Index: index})
	return true
}

// DropAt moves the dragged item to target. The source position is looked
// up from the dragged item's ID at drop time. Drag state is cleared whether
// or not the move applies; it reports whether the item now sits at target.
func (s *Store) DropAt(target int) bool {
	if s.drag == nil {
		return false
	}
	id := s.drag.ID
	s.drag = nil
	from := s.IndexOf(id)
	if from == target || !s.valid(target) {
		s.emit(event.Event{Kind: event.KindDragCancelled, ItemID: id, Index: from})
		return from == target
	}
	return s.Move(from, target)
}

// CancelDrag ends a drag without moving anything.
func (s *Store) CancelDrag() {
	if s.drag == nil {
		return
	}
	id := s.drag.ID
	s.drag = nil
	s.emit(event.Event{Kind: event.KindDragCancelled, ItemID: id, Index: s.IndexOf(id)})
}
