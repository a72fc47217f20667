package entities

import "time"

// NoteType classifies how a note is captured and rendered
type NoteType string

const (
	NoteTypeGeneral NoteType = "general"
	NoteTypeMeeting NoteType = "meeting"
	NoteTypeAudio   NoteType = "audio"
)

// IsValid checks if the note type is valid
func (t NoteType) IsValid() bool {
	switch t {
	case NoteTypeGeneral, NoteTypeMeeting, NoteTypeAudio:
		return true
	}
	return false
}

// NoteStatus reports whether a note finished processing
type NoteStatus string

const (
	NoteStatusCompleted  NoteStatus = "completed"
	NoteStatusProcessing NoteStatus = "processing"
)

// NoContentPlaceholder is shown for text notes without a body
const NoContentPlaceholder = "No content available for this note."

// TranscriptSegment is one speaker turn in an audio note transcript
type TranscriptSegment struct {
	ID        string `json:"id"`
	Speaker   string `json:"speaker"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// AudioNoteData carries the derived payload of an audio note
type AudioNoteData struct {
	Duration   string              `json:"duration"`
	FileName   string              `json:"file_name"`
	AISummary  string              `json:"ai_summary"`
	KeyPoints  []string            `json:"key_points"`
	Insights   []string            `json:"insights"`
	Transcript []TranscriptSegment `json:"transcript"`
}

// HasSegment reports whether the transcript contains a segment with the given ID
func (a *AudioNoteData) HasSegment(segmentID string) bool {
	if a == nil {
		return false
	}
	for _, seg := range a.Transcript {
		if seg.ID == segmentID {
			return true
		}
	}
	return false
}

// ProjectNote is a note attached to a project
type ProjectNote struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content,omitempty"`
	NoteType  NoteType       `json:"note_type"`
	Status    NoteStatus     `json:"status"`
	AddedDate time.Time      `json:"added_date"`
	AddedBy   User           `json:"added_by"`
	AudioData *AudioNoteData `json:"audio_data,omitempty"`
}

// IsAudio reports whether the note renders as an audio note.
// Both the type and the payload are required.
func (n ProjectNote) IsAudio() bool {
	return n.NoteType == NoteTypeAudio && n.AudioData != nil
}

// DisplayContent returns the body of a text note or the placeholder
func (n ProjectNote) DisplayContent() string {
	if n.Content == "" {
		return NoContentPlaceholder
	}
	return n.Content
}
