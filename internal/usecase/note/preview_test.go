package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
)

func audioNote() entities.ProjectNote {
	return projectNotes("42")[0]
}

func TestRenderNoteDiscrimination(t *testing.T) {
	audio := audioNote()
	require.True(t, audio.IsAudio())

	view := RenderNote(audio)
	assert.Equal(t, KindAudio, view.Kind)
	assert.NotNil(t, view.Audio)
	assert.Empty(t, view.Content)

	// An audio-typed note without a payload falls back to text.
	bare := audio
	bare.AudioData = nil
	view = RenderNote(bare)
	assert.Equal(t, KindText, view.Kind)
	assert.Nil(t, view.Audio)
	assert.Equal(t, entities.NoContentPlaceholder, view.Content)

	// The card icon only looks at the type.
	assert.Equal(t, "waveform", Icon(bare))
	assert.Equal(t, "file", Icon(textNote("x", "Text")))
}

func TestRenderTextNoteContent(t *testing.T) {
	n := textNote("x", "Text")
	n.Content = "body"
	assert.Equal(t, "body", RenderNote(n).Content)
}

func TestPreviewStateDefaults(t *testing.T) {
	assert.Equal(t, PreviewState{SummaryOpen: true}, NewPreviewState())
}

func TestPreviewSections(t *testing.T) {
	n := audioNote()
	state := NewPreviewState()

	for _, section := range []Section{SectionSummary, SectionKeyPoints, SectionInsights} {
		var err error
		state, err = state.Apply(n, PreviewEvent{Type: PreviewEventToggleSection, Section: section})
		require.NoError(t, err)
	}
	assert.Equal(t, PreviewState{SummaryOpen: false, KeyPointsOpen: true, InsightsOpen: true}, state)

	_, err := state.Apply(n, PreviewEvent{Type: PreviewEventToggleSection, Section: "chapters"})
	require.ErrorIs(t, err, usecaseErrors.ErrInvalidEvent)
	require.ErrorIs(t, err, entities.ErrUnknownSection)
}

func TestPreviewSegmentsLastWins(t *testing.T) {
	n := audioNote()
	state := NewPreviewState()

	for _, id := range []string{"t1", "t4", "unknown"} {
		var err error
		state, err = state.Apply(n, PreviewEvent{Type: PreviewEventSelectSegment, SegmentID: id})
		require.NoError(t, err)
	}
	assert.Equal(t, "t4", state.ActiveSegment)
}

func TestPreviewTogglePlay(t *testing.T) {
	n := audioNote()

	state, err := NewPreviewState().Apply(n, PreviewEvent{Type: PreviewEventTogglePlay})
	require.NoError(t, err)
	assert.True(t, state.Playing)

	state, err = state.Apply(n, PreviewEvent{Type: PreviewEventTogglePlay})
	require.NoError(t, err)
	assert.False(t, state.Playing)
}

func TestPreviewTextNoteIgnoresEvents(t *testing.T) {
	n := textNote("x", "Text")
	start := NewPreviewState()

	events := []PreviewEvent{
		{Type: PreviewEventToggleSection, Section: SectionSummary},
		{Type: PreviewEventSelectSegment, SegmentID: "t1"},
		{Type: PreviewEventTogglePlay},
	}
	for _, ev := range events {
		next, err := start.Apply(n, ev)
		require.NoError(t, err)
		assert.Equal(t, start, next)
	}

	_, err := start.Apply(n, PreviewEvent{Type: "rewind"})
	require.ErrorIs(t, err, usecaseErrors.ErrInvalidEvent)
}
