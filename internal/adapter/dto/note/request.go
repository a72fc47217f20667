package note

// ListNotesRequest represents query parameters for listing notes
type ListNotesRequest struct {
	Search string `query:"search" validate:"max=200"`
}

// CreateNoteRequest represents the content of the create-note dialog
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"max=200"`
	Content string `json:"content" validate:"max=20000"`
}

// UpdateNoteRequest represents an edit of an existing note
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=20000"`
}

// UploadAudioRequest represents an audio file selected in the upload dialog
type UploadAudioRequest struct {
	FileName string `json:"file_name" validate:"omitempty,max=255"`
}
