package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	notifier := NewLogNotifier(zap.New(core))

	notifier.Notify(context.Background(), entities.Notification{
		Level:     entities.NotificationSuccess,
		Message:   "Note created",
		Action:    "create",
		ProjectID: "1",
		CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	})
	notifier.Notify(context.Background(), entities.Notification{
		Level:   entities.NotificationError,
		Message: "Upload rejected",
		Action:  "upload_audio",
		NoteID:  "note-9",
	})

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "Note created", entries[0].Message)
	assert.Equal(t, "1", entries[0].ContextMap()["project_id"])
	assert.NotContains(t, entries[0].ContextMap(), "note_id")

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "note-9", entries[1].ContextMap()["note_id"])
}
