package presenter

import (
	noteDTO "github.com/johnquangdev/project-hub/internal/adapter/dto/note"
	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/usecase/note"
)

// ToNoteRowResponse converts a note to a table row or card
func ToNoteRowResponse(n entities.ProjectNote, format DateFormatter) noteDTO.NoteRowResponse {
	return noteDTO.NoteRowResponse{
		ID:        n.ID,
		Title:     n.Title,
		NoteType:  n.NoteType,
		Status:    n.Status,
		DateLabel: format(n.AddedDate),
		AddedBy:   n.AddedBy,
		Initial:   n.AddedBy.Initial(),
		Icon:      note.Icon(n),
	}
}

// ToNoteRowResponses converts notes in order
func ToNoteRowResponses(notes []entities.ProjectNote, format DateFormatter) []noteDTO.NoteRowResponse {
	rows := make([]noteDTO.NoteRowResponse, len(notes))
	for i, n := range notes {
		rows[i] = ToNoteRowResponse(n, format)
	}
	return rows
}

// ToNoteListResponse converts a filtered note list
func ToNoteListResponse(query string, notes []entities.ProjectNote, format DateFormatter) *noteDTO.NoteListResponse {
	return &noteDTO.NoteListResponse{
		Query: query,
		Notes: ToNoteRowResponses(notes, format),
		Total: len(notes),
	}
}

// ToNotePreviewResponse converts a rendered note view
func ToNotePreviewResponse(v note.View, format DateFormatter) noteDTO.NotePreviewResponse {
	return noteDTO.NotePreviewResponse{
		Kind:      string(v.Kind),
		ID:        v.Note.ID,
		Title:     v.Note.Title,
		NoteType:  v.Note.NoteType,
		Status:    v.Note.Status,
		DateLabel: format(v.Note.AddedDate),
		AddedBy:   v.Note.AddedBy,
		Content:   v.Content,
		Audio:     v.Audio,
	}
}
