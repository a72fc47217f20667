package entities

import "time"

// NotificationLevel is the severity of a user-facing notification
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationInfo    NotificationLevel = "info"
	NotificationError   NotificationLevel = "error"
)

// Notification is a fire-and-forget message shown to the user after an action
type Notification struct {
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	Action    string            `json:"action"`
	ProjectID string            `json:"project_id,omitempty"`
	NoteID    string            `json:"note_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
