package note

import (
	"strings"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

// RecentLimit is the number of notes shown in the recent-notes grid
const RecentLimit = 8

// FilterNotesByTitle keeps the notes whose title contains query, ignoring
// case. An empty query keeps every note. Order is preserved and the input
// is not modified.
func FilterNotesByTitle(notes []entities.ProjectNote, query string) []entities.ProjectNote {
	filtered := make([]entities.ProjectNote, 0, len(notes))
	needle := entities.Fold(query)
	for _, n := range notes {
		if strings.Contains(entities.Fold(n.Title), needle) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// RecentNotes returns the first RecentLimit notes
func RecentNotes(notes []entities.ProjectNote) []entities.ProjectNote {
	n := len(notes)
	if n > RecentLimit {
		n = RecentLimit
	}
	return append([]entities.ProjectNote(nil), notes[:n]...)
}

// NoteIDs returns the ids of notes in order
func NoteIDs(notes []entities.ProjectNote) []string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}
