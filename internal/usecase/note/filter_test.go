package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

func TestFilterNotesByTitle(t *testing.T) {
	notes := projectNotes("42")
	require.Len(t, notes, 8)

	tests := []struct {
		name   string
		query  string
		titles []string
	}{
		{name: "empty query keeps all", query: "", titles: titlesOf(notes)},
		{name: "case insensitive", query: "hero", titles: []string{"Hero Description"}},
		{name: "upper case query", query: "BRAINSTORM", titles: []string{"Internal brainstorm", "Brainstorm"}},
		{name: "no match", query: "ZZZ-no-match", titles: []string{}},
		{name: "content is not searched", query: "hero section", titles: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterNotesByTitle(notes, tt.query)
			assert.Equal(t, tt.titles, titlesOf(got))
		})
	}
}

func TestFilterNotesReturnsNewSlice(t *testing.T) {
	notes := []entities.ProjectNote{textNote("a", "Alpha"), textNote("b", "Beta")}

	got := FilterNotesByTitle(notes, "")
	got[0].Title = "changed"

	assert.Equal(t, "Alpha", notes[0].Title)
}

func TestFilterNotesNil(t *testing.T) {
	got := FilterNotesByTitle(nil, "x")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecentNotes(t *testing.T) {
	notes := make([]entities.ProjectNote, 0, 10)
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"} {
		notes = append(notes, textNote(id, "n"+id))
	}

	recent := RecentNotes(notes)
	require.Len(t, recent, RecentLimit)
	assert.Equal(t, "1", recent[0].ID)
	assert.Equal(t, "8", recent[7].ID)

	assert.Len(t, RecentNotes(notes[:3]), 3)
}

func titlesOf(notes []entities.ProjectNote) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}
