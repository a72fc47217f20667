package view

// EventRequest represents one user input on a view session
type EventRequest struct {
	Type      string `json:"type" validate:"required,oneof=search toggle_all toggle toggle_section select_segment toggle_play"`
	Query     string `json:"query,omitempty" validate:"max=200"`
	NoteID    string `json:"note_id,omitempty"`
	Section   string `json:"section,omitempty" validate:"omitempty,oneof=summary key_points insights"`
	SegmentID string `json:"segment_id,omitempty"`
}
