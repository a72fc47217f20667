package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Jane   Doe ", "jane-doe"},
		{"JasonD", "jasond"},
		{"Jason Duong", "jason-duong"},
		{"Ann\tLee", "ann-lee"},
		{"", ""},
		{"ÉLODIE Ñúñez", "élodie-ñúñez"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestNewUser(t *testing.T) {
	u := NewUser("Jason Duong", UserRolePIC, "/avatars/jd.png")

	assert.Equal(t, "jason-duong", u.ID)
	assert.Equal(t, "Jason Duong", u.Name)
	assert.Equal(t, UserRolePIC, u.Role)
	assert.Equal(t, "J", u.Initial())
	assert.Equal(t, "", User{}.Initial())
}

func TestNoteHelpers(t *testing.T) {
	audio := ProjectNote{NoteType: NoteTypeAudio, AudioData: &AudioNoteData{
		Transcript: []TranscriptSegment{{ID: "t1"}},
	}}
	assert.True(t, audio.IsAudio())
	assert.True(t, audio.AudioData.HasSegment("t1"))
	assert.False(t, audio.AudioData.HasSegment("t9"))

	bare := ProjectNote{NoteType: NoteTypeAudio}
	assert.False(t, bare.IsAudio())
	assert.False(t, bare.AudioData.HasSegment("t1"))

	assert.Equal(t, NoContentPlaceholder, ProjectNote{}.DisplayContent())
	assert.Equal(t, "body", ProjectNote{Content: "body"}.DisplayContent())

	assert.True(t, NoteTypeMeeting.IsValid())
	assert.False(t, NoteType("video").IsValid())
	assert.True(t, ProjectStatusCancelled.IsValid())
	assert.False(t, ProjectStatus("paused").IsValid())
}
