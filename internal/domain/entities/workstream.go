package entities

import "time"

// WorkstreamTaskStatus is the progress state of a workstream task
type WorkstreamTaskStatus string

const (
	TaskStatusTodo       WorkstreamTaskStatus = "todo"
	TaskStatusInProgress WorkstreamTaskStatus = "in-progress"
	TaskStatusDone       WorkstreamTaskStatus = "done"
)

// DueTone colours the due label of a task
type DueTone string

const (
	DueToneDanger  DueTone = "danger"
	DueToneWarning DueTone = "warning"
	DueToneMuted   DueTone = "muted"
)

// TaskPriority is the optional priority of a task
type TaskPriority string

const (
	TaskPriorityNone   TaskPriority = "no-priority"
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// WorkstreamTask is a single task inside a workstream
type WorkstreamTask struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Status      WorkstreamTaskStatus `json:"status"`
	DueLabel    string               `json:"due_label,omitempty"`
	DueTone     DueTone              `json:"due_tone,omitempty"`
	Assignee    *User                `json:"assignee,omitempty"`
	StartDate   *time.Time           `json:"start_date,omitempty"`
	Priority    TaskPriority         `json:"priority,omitempty"`
	Tag         string               `json:"tag,omitempty"`
	Description string               `json:"description,omitempty"`
}

// Clone returns a copy that shares no pointers with the receiver
func (t WorkstreamTask) Clone() WorkstreamTask {
	out := t
	if t.Assignee != nil {
		assignee := *t.Assignee
		out.Assignee = &assignee
	}
	if t.StartDate != nil {
		start := *t.StartDate
		out.StartDate = &start
	}
	return out
}

// WorkstreamGroup is a named, ordered group of tasks
type WorkstreamGroup struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Tasks []WorkstreamTask `json:"tasks"`
}

// ProjectTask is a workstream task qualified with its project and workstream.
// It is only produced by projecting a ProjectDetails.
type ProjectTask struct {
	WorkstreamTask
	ProjectID      string `json:"project_id"`
	ProjectName    string `json:"project_name"`
	WorkstreamID   string `json:"workstream_id"`
	WorkstreamName string `json:"workstream_name"`
}
