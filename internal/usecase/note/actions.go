package note

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/domain/repositories"
)

// Action names a note mutation
type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionUpload Action = "upload_audio"
)

// DefaultUploadFileName is reported when an upload names no file
const DefaultUploadFileName = "uploaded-audio.mp3"

// Acknowledgement is returned by every note mutation. No note store is
// wired, so Persisted is always false and later reads of the note list are
// unchanged.
type Acknowledgement struct {
	Action    Action         `json:"action"`
	ProjectID string         `json:"project_id"`
	NoteID    string         `json:"note_id,omitempty"`
	Title     string         `json:"title,omitempty"`
	FileName  string         `json:"file_name,omitempty"`
	Author    *entities.User `json:"author,omitempty"`
	Message   string         `json:"message"`
	Persisted bool           `json:"persisted"`
	At        time.Time      `json:"at"`
}

// CreateNoteInput is the content of the create-note dialog
type CreateNoteInput struct {
	ProjectID string
	Title     string
	Content   string
	Author    entities.User
}

// ActionService accepts note mutations and acknowledges them through the notifier
type ActionService struct {
	notifier repositories.Notifier
	now      func() time.Time
	logger   *zap.Logger
}

// NewActionService creates a new action service
func NewActionService(notifier repositories.Notifier, now func() time.Time, logger *zap.Logger) *ActionService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActionService{notifier: notifier, now: now, logger: logger}
}

// Create acknowledges a new note
func (s *ActionService) Create(ctx context.Context, in CreateNoteInput) Acknowledgement {
	author := in.Author
	ack := s.ack(ActionCreate, in.ProjectID, "", "Note created")
	ack.Title = in.Title
	ack.Author = &author
	s.logger.Info("note create accepted",
		zap.String("project_id", in.ProjectID),
		zap.String("title", in.Title),
		zap.Int("content_length", len(in.Content)),
		zap.String("author_id", author.ID),
	)
	s.notify(ctx, entities.NotificationSuccess, ack)
	return ack
}

// Edit acknowledges an edit of noteID
func (s *ActionService) Edit(ctx context.Context, projectID, noteID string) Acknowledgement {
	ack := s.ack(ActionEdit, projectID, noteID, "Note updated")
	s.logger.Info("note edit accepted", zap.String("project_id", projectID), zap.String("note_id", noteID))
	s.notify(ctx, entities.NotificationSuccess, ack)
	return ack
}

// Delete acknowledges a deletion of noteID
func (s *ActionService) Delete(ctx context.Context, projectID, noteID string) Acknowledgement {
	ack := s.ack(ActionDelete, projectID, noteID, "Note deleted")
	s.logger.Info("note delete accepted", zap.String("project_id", projectID), zap.String("note_id", noteID))
	s.notify(ctx, entities.NotificationSuccess, ack)
	return ack
}

// UploadAudio acknowledges an audio file selection
func (s *ActionService) UploadAudio(ctx context.Context, projectID, fileName string) Acknowledgement {
	if fileName == "" {
		fileName = DefaultUploadFileName
	}
	ack := s.ack(ActionUpload, projectID, "", "Audio file received")
	ack.FileName = fileName
	s.logger.Info("audio upload accepted", zap.String("project_id", projectID), zap.String("file_name", fileName))
	s.notify(ctx, entities.NotificationInfo, ack)
	return ack
}

func (s *ActionService) ack(action Action, projectID, noteID, message string) Acknowledgement {
	return Acknowledgement{
		Action:    action,
		ProjectID: projectID,
		NoteID:    noteID,
		Message:   message,
		Persisted: false,
		At:        s.now(),
	}
}

func (s *ActionService) notify(ctx context.Context, level entities.NotificationLevel, ack Acknowledgement) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, entities.Notification{
		Level:     level,
		Message:   ack.Message,
		Action:    string(ack.Action),
		ProjectID: ack.ProjectID,
		NoteID:    ack.NoteID,
		CreatedAt: ack.At,
	})
}
