package note

import (
	"fmt"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
)

// Kind is the render shape of a note
type Kind string

const (
	KindAudio Kind = "audio"
	KindText  Kind = "text"
)

// View is a note rendered as exactly one of the two shapes. Audio is set
// for KindAudio and Content for KindText.
type View struct {
	Kind    Kind                    `json:"kind"`
	Note    entities.ProjectNote    `json:"note"`
	Content string                  `json:"content,omitempty"`
	Audio   *entities.AudioNoteData `json:"audio,omitempty"`
}

// RenderNote discriminates a note into its audio or text shape. An audio
// note without a payload renders as text.
func RenderNote(n entities.ProjectNote) View {
	if n.IsAudio() {
		return View{Kind: KindAudio, Note: n, Audio: n.AudioData}
	}
	return View{Kind: KindText, Note: n, Content: n.DisplayContent()}
}

// Icon returns the card icon name. Cards look at the note type only.
func Icon(n entities.ProjectNote) string {
	if n.NoteType == entities.NoteTypeAudio {
		return "waveform"
	}
	return "file"
}

// Section names a collapsible insight panel of an audio preview
type Section string

const (
	SectionSummary   Section = "summary"
	SectionKeyPoints Section = "key_points"
	SectionInsights  Section = "insights"
)

// PreviewEventType names a preview transition
type PreviewEventType string

const (
	PreviewEventToggleSection PreviewEventType = "toggle_section"
	PreviewEventSelectSegment PreviewEventType = "select_segment"
	PreviewEventTogglePlay    PreviewEventType = "toggle_play"
)

// PreviewEvent is a user input on the note preview
type PreviewEvent struct {
	Type      PreviewEventType `json:"type"`
	Section   Section          `json:"section,omitempty"`
	SegmentID string           `json:"segment_id,omitempty"`
}

// PreviewState is the ephemeral state of a note preview. Playing is a
// display flag only.
type PreviewState struct {
	SummaryOpen   bool   `json:"summary_open"`
	KeyPointsOpen bool   `json:"key_points_open"`
	InsightsOpen  bool   `json:"insights_open"`
	ActiveSegment string `json:"active_segment,omitempty"`
	Playing       bool   `json:"playing"`
}

// NewPreviewState opens the summary and closes everything else
func NewPreviewState() PreviewState {
	return PreviewState{SummaryOpen: true}
}

// Apply returns the state after ev on note n. Text notes have no panels,
// transcript or player, so every valid event leaves their state unchanged.
func (s PreviewState) Apply(n entities.ProjectNote, ev PreviewEvent) (PreviewState, error) {
	switch ev.Type {
	case PreviewEventToggleSection, PreviewEventSelectSegment, PreviewEventTogglePlay:
	default:
		return s, fmt.Errorf("%w: preview event %q", usecaseErrors.ErrInvalidEvent, ev.Type)
	}
	if !n.IsAudio() {
		return s, nil
	}

	next := s
	switch ev.Type {
	case PreviewEventToggleSection:
		switch ev.Section {
		case SectionSummary:
			next.SummaryOpen = !s.SummaryOpen
		case SectionKeyPoints:
			next.KeyPointsOpen = !s.KeyPointsOpen
		case SectionInsights:
			next.InsightsOpen = !s.InsightsOpen
		default:
			return s, fmt.Errorf("%w: %w %q", usecaseErrors.ErrInvalidEvent, entities.ErrUnknownSection, ev.Section)
		}
	case PreviewEventSelectSegment:
		if n.AudioData.HasSegment(ev.SegmentID) {
			next.ActiveSegment = ev.SegmentID
		}
	case PreviewEventTogglePlay:
		next.Playing = !s.Playing
	}
	return next, nil
}
