package view

import (
	noteDTO "github.com/johnquangdev/project-hub/internal/adapter/dto/note"
	"github.com/johnquangdev/project-hub/internal/usecase/note"
)

// ViewResponse represents a view session snapshot
type ViewResponse struct {
	ID        string               `json:"id"`
	Kind      string               `json:"kind"`
	ProjectID string               `json:"project_id"`
	Table     *TableViewResponse   `json:"table,omitempty"`
	Preview   *PreviewViewResponse `json:"preview,omitempty"`
}

// TableViewResponse represents the notes table state
type TableViewResponse struct {
	Query       string                    `json:"query"`
	Selected    []string                  `json:"selected"`
	AllSelected bool                      `json:"all_selected"`
	Notes       []noteDTO.NoteRowResponse `json:"notes"`
	Total       int                       `json:"total"`
}

// PreviewViewResponse represents the preview modal state
type PreviewViewResponse struct {
	State note.PreviewState           `json:"state"`
	Note  noteDTO.NotePreviewResponse `json:"note"`
}
