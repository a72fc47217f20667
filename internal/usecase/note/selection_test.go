package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
)

func TestToggleIsAnInvolution(t *testing.T) {
	start := Selection{"a", "b"}

	for _, id := range []string{"a", "c"} {
		assert.Equal(t, start, start.Toggle(id).Toggle(id).sorted(start))
	}
	assert.Equal(t, Selection{"a", "b"}, start)
}

func TestToggleAll(t *testing.T) {
	filtered := []entities.ProjectNote{textNote("a", "A"), textNote("b", "B"), textNote("c", "C")}

	all := Selection{}.ToggleAll(filtered)
	assert.Equal(t, Selection{"a", "b", "c"}, all)
	assert.True(t, all.AllSelected(filtered))

	assert.Empty(t, all.ToggleAll(filtered))

	partial := Selection{"b"}.ToggleAll(filtered)
	assert.Equal(t, Selection{"a", "b", "c"}, partial)
}

func TestToggleAllComparesSizesOnly(t *testing.T) {
	filtered := []entities.ProjectNote{textNote("a", "A")}

	// One stale selection against a one-note view reads as all selected.
	stale := Selection{"z"}
	assert.True(t, stale.AllSelected(filtered))
	assert.Empty(t, stale.ToggleAll(filtered))
}

func TestAllSelectedEmptyView(t *testing.T) {
	assert.False(t, Selection{}.AllSelected(nil))
}

func TestTableStateScenario(t *testing.T) {
	notes := projectNotes("42")
	state := NewTableState()

	state, err := state.Apply(notes, TableEvent{Type: TableEventSearch, Query: "hero"})
	require.NoError(t, err)
	require.Len(t, state.Filtered(notes), 1)

	state, err = state.Apply(notes, TableEvent{Type: TableEventToggleAll})
	require.NoError(t, err)
	assert.Equal(t, Selection{"42-note-5"}, state.Selected)

	state, err = state.Apply(notes, TableEvent{Type: TableEventSearch, Query: "roadmap"})
	require.NoError(t, err)
	assert.Equal(t, Selection{"42-note-5"}, state.Selected)
	assert.Equal(t, []string{"Roadmap"}, titlesOf(state.Filtered(notes)))
}

func TestTableStateToggleOutsideView(t *testing.T) {
	notes := projectNotes("42")
	state := TableState{Query: "hero", Selected: Selection{}}

	next, err := state.Apply(notes, TableEvent{Type: TableEventToggle, NoteID: "42-note-2"})
	require.NoError(t, err)
	assert.Empty(t, next.Selected)

	next, err = next.Apply(notes, TableEvent{Type: TableEventToggle, NoteID: "42-note-5"})
	require.NoError(t, err)
	assert.Equal(t, Selection{"42-note-5"}, next.Selected)
}

func TestTableStateDoesNotMutate(t *testing.T) {
	notes := projectNotes("42")
	state := TableState{Selected: Selection{"42-note-1"}}

	_, err := state.Apply(notes, TableEvent{Type: TableEventToggle, NoteID: "42-note-2"})
	require.NoError(t, err)
	assert.Equal(t, Selection{"42-note-1"}, state.Selected)
}

func TestTableStateInvalidEvent(t *testing.T) {
	state := NewTableState()

	next, err := state.Apply(nil, TableEvent{Type: "sort"})
	require.ErrorIs(t, err, usecaseErrors.ErrInvalidEvent)
	assert.Equal(t, state, next)
}

// sorted reorders s to follow the order of ref, for order-insensitive comparison
func (s Selection) sorted(ref Selection) Selection {
	out := Selection{}
	for _, id := range ref {
		if s.Contains(id) {
			out = append(out, id)
		}
	}
	for _, id := range s {
		if !ref.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}
