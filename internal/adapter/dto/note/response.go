package note

import "github.com/johnquangdev/project-hub/internal/domain/entities"

// NoteRowResponse represents a note in the notes table or card grid
type NoteRowResponse struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	NoteType  entities.NoteType   `json:"note_type"`
	Status    entities.NoteStatus `json:"status"`
	DateLabel string              `json:"date_label"`
	AddedBy   entities.User       `json:"added_by"`
	Initial   string              `json:"initial"`
	Icon      string              `json:"icon"`
}

// NoteListResponse represents a filtered note list
type NoteListResponse struct {
	Query string            `json:"query"`
	Notes []NoteRowResponse `json:"notes"`
	Total int               `json:"total"`
}

// NotePreviewResponse represents a note opened in the preview modal
type NotePreviewResponse struct {
	Kind      string                  `json:"kind"`
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	NoteType  entities.NoteType       `json:"note_type"`
	Status    entities.NoteStatus     `json:"status"`
	DateLabel string                  `json:"date_label"`
	AddedBy   entities.User           `json:"added_by"`
	Content   string                  `json:"content,omitempty"`
	Audio     *entities.AudioNoteData `json:"audio,omitempty"`
}
