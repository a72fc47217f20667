package entities

import "time"

// ProjectStatus is the lifecycle state of a catalog project
type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusBacklog   ProjectStatus = "backlog"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// IsValid checks if the project status is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanned, ProjectStatusActive, ProjectStatusBacklog,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// ListTask is a task summary carried by a catalog project
type ListTask struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Assignee string `json:"assignee,omitempty" yaml:"assignee"`
	Status   string `json:"status" yaml:"status"`
}

// ProjectListItem is the base record of a project as shown in the project list
type ProjectListItem struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	TaskCount     int           `json:"task_count" yaml:"task_count"`
	Progress      int           `json:"progress" yaml:"progress"`
	StartDate     time.Time     `json:"start_date" yaml:"start_date"`
	EndDate       time.Time     `json:"end_date" yaml:"end_date"`
	Status        ProjectStatus `json:"status" yaml:"status"`
	Priority      string        `json:"priority" yaml:"priority"`
	Tags          []string      `json:"tags" yaml:"tags"`
	Members       []string      `json:"members" yaml:"members"`
	Tasks         []ListTask    `json:"tasks" yaml:"tasks"`
	Client        string        `json:"client,omitempty" yaml:"client"`
	TypeLabel     string        `json:"type_label,omitempty" yaml:"type_label"`
	DurationLabel string        `json:"duration_label,omitempty" yaml:"duration_label"`
}

// Clone returns a deep copy of the list item
func (p ProjectListItem) Clone() ProjectListItem {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	out.Members = append([]string(nil), p.Members...)
	out.Tasks = append([]ListTask(nil), p.Tasks...)
	return out
}

// ProjectMeta holds the display labels shown in the project header
type ProjectMeta struct {
	PriorityLabel string `json:"priority_label"`
	LocationLabel string `json:"location_label"`
	SprintLabel   string `json:"sprint_label"`
	LastSyncLabel string `json:"last_sync_label"`
}

// ProjectScope lists what a project covers and excludes
type ProjectScope struct {
	InScope    []string `json:"in_scope"`
	OutOfScope []string `json:"out_of_scope"`
}

// KeyFeatures groups features by priority bucket
type KeyFeatures struct {
	P0 []string `json:"p0"`
	P1 []string `json:"p1"`
	P2 []string `json:"p2"`
}

// TimelineStatus is the state of a timeline entry
type TimelineStatus string

const (
	TimelineStatusPlanned    TimelineStatus = "planned"
	TimelineStatusInProgress TimelineStatus = "in-progress"
	TimelineStatusDone       TimelineStatus = "done"
)

// TimelineTask is a calendar-anchored entry on the project timeline
type TimelineTask struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Status    TimelineStatus `json:"status"`
}

// TimeSummary describes estimate and progress of a project
type TimeSummary struct {
	EstimateLabel      string    `json:"estimate_label"`
	DueDate            time.Time `json:"due_date"`
	DaysRemainingLabel string    `json:"days_remaining_label"`
	ProgressPercent    int       `json:"progress_percent"`
}

// BacklogStatus is the planning label of a project
type BacklogStatus string

const (
	BacklogStatusActive    BacklogStatus = "Active"
	BacklogStatusBacklog   BacklogStatus = "Backlog"
	BacklogStatusPlanned   BacklogStatus = "Planned"
	BacklogStatusCompleted BacklogStatus = "Completed"
	BacklogStatusCancelled BacklogStatus = "Cancelled"
)

// BacklogSummary is the status, priority and label metadata of a project
type BacklogSummary struct {
	StatusLabel   BacklogStatus `json:"status_label"`
	GroupLabel    string        `json:"group_label"`
	PriorityLabel string        `json:"priority_label"`
	LabelBadge    string        `json:"label_badge"`
	PICUsers      []User        `json:"pic_users"`
	SupportUsers  []User        `json:"support_users,omitempty"`
}

// QuickLinkType is the file kind of a quick link
type QuickLinkType string

const (
	QuickLinkPDF  QuickLinkType = "pdf"
	QuickLinkZIP  QuickLinkType = "zip"
	QuickLinkFig  QuickLinkType = "fig"
	QuickLinkDoc  QuickLinkType = "doc"
	QuickLinkFile QuickLinkType = "file"
)

// QuickLink is a named external file attached to a project
type QuickLink struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Type   QuickLinkType `json:"type"`
	SizeMB float64       `json:"size_mb"`
	URL    string        `json:"url"`
}

// ProjectDetails is the aggregate root of a project and owns every nested collection
type ProjectDetails struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Meta          ProjectMeta       `json:"meta"`
	Scope         ProjectScope      `json:"scope"`
	Outcomes      []string          `json:"outcomes"`
	KeyFeatures   KeyFeatures       `json:"key_features"`
	TimelineTasks []TimelineTask    `json:"timeline_tasks"`
	Workstreams   []WorkstreamGroup `json:"workstreams"`
	Time          TimeSummary       `json:"time"`
	Backlog       BacklogSummary    `json:"backlog"`
	QuickLinks    []QuickLink       `json:"quick_links"`
	Notes         []ProjectNote     `json:"notes"`
	Source        *ProjectListItem  `json:"source,omitempty"`
}

// FindNote returns the note with the given ID
func (d *ProjectDetails) FindNote(noteID string) (ProjectNote, bool) {
	if d == nil {
		return ProjectNote{}, false
	}
	for _, n := range d.Notes {
		if n.ID == noteID {
			return n, true
		}
	}
	return ProjectNote{}, false
}

// TaskCount returns the number of tasks across all workstreams
func (d *ProjectDetails) TaskCount() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, g := range d.Workstreams {
		total += len(g.Tasks)
	}
	return total
}
