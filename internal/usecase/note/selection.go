package note

import (
	"fmt"
	"slices"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
)

// Selection is an immutable set of selected note ids in selection order.
// Every transition returns a new Selection.
type Selection []string

// Contains reports whether id is selected
func (s Selection) Contains(id string) bool {
	return slices.Contains(s, id)
}

// Toggle flips the membership of id
func (s Selection) Toggle(id string) Selection {
	if s.Contains(id) {
		out := make(Selection, 0, len(s))
		for _, existing := range s {
			if existing != id {
				out = append(out, existing)
			}
		}
		return out
	}
	return append(slices.Clone(s), id)
}

// ToggleAll clears the selection when its size equals the filtered view's
// size, and otherwise selects exactly the filtered notes.
func (s Selection) ToggleAll(filtered []entities.ProjectNote) Selection {
	if len(s) == len(filtered) {
		return Selection{}
	}
	return Selection(NoteIDs(filtered))
}

// AllSelected reports the header checkbox state for the filtered view
func (s Selection) AllSelected(filtered []entities.ProjectNote) bool {
	return len(filtered) > 0 && len(s) == len(filtered)
}

// TableEventType names a notes table transition
type TableEventType string

const (
	TableEventSearch    TableEventType = "search"
	TableEventToggleAll TableEventType = "toggle_all"
	TableEventToggle    TableEventType = "toggle"
)

// TableEvent is a user input on the notes table
type TableEvent struct {
	Type   TableEventType `json:"type"`
	Query  string         `json:"query,omitempty"`
	NoteID string         `json:"note_id,omitempty"`
}

// TableState is the ephemeral state of a notes table: the search text and
// the selection. Changing the search text keeps selections that are no
// longer visible.
type TableState struct {
	Query    string    `json:"query"`
	Selected Selection `json:"selected"`
}

// NewTableState returns an empty table state
func NewTableState() TableState {
	return TableState{Selected: Selection{}}
}

// Filtered returns the notes visible under the current search text
func (s TableState) Filtered(notes []entities.ProjectNote) []entities.ProjectNote {
	return FilterNotesByTitle(notes, s.Query)
}

// Apply returns the state after ev. A toggle of a note outside the
// filtered view is ignored.
func (s TableState) Apply(notes []entities.ProjectNote, ev TableEvent) (TableState, error) {
	next := TableState{Query: s.Query, Selected: slices.Clone(s.Selected)}
	if next.Selected == nil {
		next.Selected = Selection{}
	}

	switch ev.Type {
	case TableEventSearch:
		next.Query = ev.Query
	case TableEventToggleAll:
		next.Selected = next.Selected.ToggleAll(s.Filtered(notes))
	case TableEventToggle:
		if !slices.Contains(NoteIDs(s.Filtered(notes)), ev.NoteID) {
			return next, nil
		}
		next.Selected = next.Selected.Toggle(ev.NoteID)
	default:
		return s, fmt.Errorf("%w: table event %q", usecaseErrors.ErrInvalidEvent, ev.Type)
	}
	return next, nil
}
