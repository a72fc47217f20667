package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

// LogNotifier writes notifications to the application log
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new log notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notify")}
}

// Notify implements repositories.Notifier
func (n *LogNotifier) Notify(_ context.Context, note entities.Notification) {
	fields := []zap.Field{
		zap.String("level", string(note.Level)),
		zap.String("action", note.Action),
		zap.String("project_id", note.ProjectID),
		zap.Time("created_at", note.CreatedAt),
	}
	if note.NoteID != "" {
		fields = append(fields, zap.String("note_id", note.NoteID))
	}

	if note.Level == entities.NotificationError {
		n.logger.Error(note.Message, fields...)
		return
	}
	n.logger.Info(note.Message, fields...)
}
