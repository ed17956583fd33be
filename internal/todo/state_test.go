package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/todolist/internal/event"
)

func TestBeginAndCommitEdit(t *testing.T) {
	s := newTestStore(t, "a", "b")

	require.True(t, s.BeginEdit(1))
	edit, idx, ok := s.Editing()
	require.True(t, ok)
	assert.Equal(t, "b", edit.Draft)
	assert.Equal(t, 1, idx)

	require.True(t, s.CommitEdit("bee"))
	assert.Equal(t, []string{"a", "bee"}, texts(s))

	_, _, ok = s.Editing()
	assert.False(t, ok)
	assert.False(t, s.CommitEdit("again"), "no edit pending")
}

func TestBeginEditOutOfRange(t *testing.T) {
	s := newTestStore(t, "a")
	assert.False(t, s.BeginEdit(1))
	assert.False(t, s.BeginEdit(-1))
	_, _, ok := s.Editing()
	assert.False(t, ok)
}

func TestBeginEditReplacesPendingEdit(t *testing.T) {
	s := newTestStore(t, "a", "b")
	s.BeginEdit(0)
	s.BeginEdit(1)

	edit, idx, ok := s.Editing()
	require.True(t, ok)
	assert.Equal(t, "id-2", edit.ID)
	assert.Equal(t, 1, idx)
}

func TestSetDraft(t *testing.T) {
	s := newTestStore(t, "a")
	s.SetDraft("ignored without an edit")

	s.BeginEdit(0)
	s.SetDraft("draft")
	edit, _, _ := s.Editing()
	assert.Equal(t, "draft", edit.Draft)

	it, _ := s.Item(0)
	assert.Equal(t, "a", it.Text, "draft is not written until commit")
}

func TestCommitEditKeepsEmptyText(t *testing.T) {
	s := newTestStore(t, "a")
	s.BeginEdit(0)
	require.True(t, s.CommitEdit(""))
	assert.Equal(t, []string{""}, texts(s))
}

func TestCancelEdit(t *testing.T) {
	s := newTestStore(t, "a")
	s.BeginEdit(0)
	s.SetDraft("changed")
	s.CancelEdit()

	_, _, ok := s.Editing()
	assert.False(t, ok)
	assert.Equal(t, []string{"a"}, texts(s))
}

func TestEditTargetSurvivesEarlierRemoval(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	s.BeginEdit(2)

	s.Remove(0)

	_, idx, ok := s.Editing()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	s.CommitEdit("C")
	assert.Equal(t, []string{"b", "C"}, texts(s))
}

func TestEditTargetSurvivesMove(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	s.BeginEdit(0)
	s.Move(0, 2)

	s.CommitEdit("A")
	assert.Equal(t, []string{"b", "c", "A"}, texts(s))
}

func TestRemovingEditTargetClearsEdit(t *testing.T) {
	s := newTestStore(t, "a", "b")
	s.BeginEdit(1)
	s.RemoveLast()

	_, _, ok := s.Editing()
	assert.False(t, ok)
	assert.False(t, s.CommitEdit("b2"))
	assert.Equal(t, []string{"a"}, texts(s))
}

func TestDragAndDrop(t *testing.T) {
	s := newTestStore(t, "A", "B", "C")

	require.True(t, s.BeginDrag(0))
	drag, idx, ok := s.Dragging()
	require.True(t, ok)
	assert.Equal(t, "id-1", drag.ID)
	assert.Equal(t, 0, idx)

	require.True(t, s.DropAt(2))
	assert.Equal(t, []string{"B", "C", "A"}, texts(s))

	_, _, ok = s.Dragging()
	assert.False(t, ok)
}

func TestDropClearsDragOnInvalidTarget(t *testing.T) {
	s := newTestStore(t, "A", "B")
	s.BeginDrag(0)

	assert.False(t, s.DropAt(5))
	_, _, ok := s.Dragging()
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "B"}, texts(s))
}

func TestDropOnSourceRow(t *testing.T) {
	s := newTestStore(t, "A", "B")
	var events []event.Event
	s.OnChange(func(e event.Event) { events = append(events, e) })

	s.BeginDrag(1)
	assert.True(t, s.DropAt(1))

	assert.Equal(t, []string{"A", "B"}, texts(s))
	require.Len(t, events, 2)
	assert.Equal(t, event.KindDragCancelled, events[1].Kind)
}

func TestDropWithoutDrag(t *testing.T) {
	s := newTestStore(t, "A", "B")
	assert.False(t, s.DropAt(1))
	assert.Equal(t, []string{"A", "B"}, texts(s))
}

func TestDropUsesCurrentSourcePosition(t *testing.T) {
	s := newTestStore(t, "A", "B", "C", "D")
	s.BeginDrag(2) // C

	s.Remove(0) // B C D, C now at 1

	require.True(t, s.DropAt(0))
	assert.Equal(t, []string{"C", "B", "D"}, texts(s))
}

func TestRemovingDragSourceClearsDrag(t *testing.T) {
	s := newTestStore(t, "A", "B")
	s.BeginDrag(0)
	s.Remove(0)

	_, _, ok := s.Dragging()
	assert.False(t, ok)
	assert.False(t, s.DropAt(0))
	assert.Equal(t, []string{"B"}, texts(s))
}

func TestCancelDrag(t *testing.T) {
	s := newTestStore(t, "A", "B")
	var events []event.Event
	s.OnChange(func(e event.Event) { events = append(events, e) })

	s.CancelDrag()
	assert.Empty(t, events)

	s.BeginDrag(1)
	s.CancelDrag()

	_, _, ok := s.Dragging()
	assert.False(t, ok)
	require.Len(t, events, 2)
	assert.Equal(t, event.KindDragStarted, events[0].Kind)
	assert.Equal(t, event.KindDragCancelled, events[1].Kind)
	assert.Equal(t, 1, events[1].Index)
}
