package note

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, n entities.Notification) {
	m.Called(ctx, n)
}

func newActionService(notifier *mockNotifier) *ActionService {
	return NewActionService(notifier, func() time.Time { return fixedNow }, zap.NewNop())
}

func TestCreateDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	notes := newNoteService()
	before := notes.ListNotes(ctx, "42", "")

	notifier := new(mockNotifier)
	notifier.On("Notify", ctx, entities.Notification{
		Level:     entities.NotificationSuccess,
		Message:   "Note created",
		Action:    string(ActionCreate),
		ProjectID: "42",
		CreatedAt: fixedNow,
	}).Once()

	author := entities.NewUser("JasonD", entities.UserRolePIC, "")
	ack := newActionService(notifier).Create(ctx, CreateNoteInput{
		ProjectID: "42",
		Title:     "Launch checklist",
		Content:   "Ship it",
		Author:    author,
	})

	assert.False(t, ack.Persisted)
	assert.Equal(t, ActionCreate, ack.Action)
	assert.Equal(t, "Launch checklist", ack.Title)
	require.NotNil(t, ack.Author)
	assert.Equal(t, "jasond", ack.Author.ID)
	notifier.AssertExpectations(t)

	after := notes.ListNotes(ctx, "42", "")
	assert.Equal(t, before, after)
	assert.Empty(t, FilterNotesByTitle(after, "Launch checklist"))
}

func TestEditAndDeleteAcknowledge(t *testing.T) {
	ctx := context.Background()
	notifier := new(mockNotifier)
	notifier.On("Notify", ctx, mock.MatchedBy(func(n entities.Notification) bool {
		return n.NoteID == "42-note-3" && n.Level == entities.NotificationSuccess
	})).Twice()

	svc := newActionService(notifier)

	edit := svc.Edit(ctx, "42", "42-note-3")
	assert.Equal(t, "Note updated", edit.Message)
	assert.False(t, edit.Persisted)

	del := svc.Delete(ctx, "42", "42-note-3")
	assert.Equal(t, "Note deleted", del.Message)
	assert.False(t, del.Persisted)

	notifier.AssertExpectations(t)
	assert.Len(t, newNoteService().ListNotes(ctx, "42", ""), 8)
}

func TestUploadAudioDefaultsFileName(t *testing.T) {
	ctx := context.Background()
	notifier := new(mockNotifier)
	notifier.On("Notify", ctx, mock.AnythingOfType("entities.Notification")).Twice()

	svc := newActionService(notifier)

	ack := svc.UploadAudio(ctx, "42", "")
	assert.Equal(t, DefaultUploadFileName, ack.FileName)
	assert.Equal(t, "Audio file received", ack.Message)

	ack = svc.UploadAudio(ctx, "42", "standup.m4a")
	assert.Equal(t, "standup.m4a", ack.FileName)

	notifier.AssertExpectations(t)
	last := notifier.Calls[1].Arguments.Get(1).(entities.Notification)
	assert.Equal(t, entities.NotificationInfo, last.Level)
}

func TestActionsWithoutNotifier(t *testing.T) {
	svc := NewActionService(nil, nil, nil)
	ack := svc.Delete(context.Background(), "1", "1-note-1")
	assert.False(t, ack.Persisted)
	assert.False(t, ack.At.IsZero())
}
