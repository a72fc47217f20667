package project

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/domain/repositories"
)

// Clock returns the current time. The synthesizer anchors relative task
// start dates to it and places calendar fixtures in its location.
type Clock func() time.Time

// SynthesizerConfig holds the values the synthesizer falls back to
type SynthesizerConfig struct {
	DefaultPICName string
	SupportName    string
	LocationLabel  string
}

// DefaultSynthesizerConfig returns the stock fallback values
func DefaultSynthesizerConfig() SynthesizerConfig {
	return SynthesizerConfig{
		DefaultPICName: "Jason Duong",
		SupportName:    "Support",
		LocationLabel:  "Australia",
	}
}

const (
	defaultSprintLabel = "MVP 2 weeks"
	lastSyncLabel      = "Just now"
	mockDescription    = "This is mock content that will be replaced by API later."
)

// Synthesizer expands a base list item into a full ProjectDetails aggregate
type Synthesizer struct {
	cfg       SynthesizerConfig
	now       Clock
	avatars   repositories.AvatarDirectory
	overrides map[string]Override
}

// NewSynthesizer creates a synthesizer. A nil clock uses time.Now and a nil
// avatar directory resolves no avatars.
func NewSynthesizer(cfg SynthesizerConfig, now Clock, avatars repositories.AvatarDirectory, overrides map[string]Override) *Synthesizer {
	if now == nil {
		now = time.Now
	}
	if avatars == nil {
		avatars = repositories.NoAvatars
	}
	if cfg.DefaultPICName == "" {
		cfg.DefaultPICName = DefaultSynthesizerConfig().DefaultPICName
	}
	if cfg.SupportName == "" {
		cfg.SupportName = DefaultSynthesizerConfig().SupportName
	}
	if cfg.LocationLabel == "" {
		cfg.LocationLabel = DefaultSynthesizerConfig().LocationLabel
	}
	return &Synthesizer{
		cfg:       cfg,
		now:       now,
		avatars:   avatars,
		overrides: overrides,
	}
}

// Placeholder builds the list item used for ids missing from the catalog
func Placeholder(id string, now time.Time) entities.ProjectListItem {
	return entities.ProjectListItem{
		ID:        id,
		Name:      fmt.Sprintf("Untitled project %s", id),
		TaskCount: 0,
		Progress:  0,
		StartDate: now,
		EndDate:   now,
		Status:    entities.ProjectStatusPlanned,
		Priority:  "medium",
		Tags:      []string{},
		Members:   []string{},
		Tasks:     []entities.ListTask{},
	}
}

// Synthesize builds the details of project id. base is the catalog record,
// or nil when id is not in the catalog; a placeholder is synthesized then.
// Overrides only apply to catalog records.
func (s *Synthesizer) Synthesize(id string, base *entities.ProjectListItem) *entities.ProjectDetails {
	now := s.now()

	effective := Placeholder(id, now)
	if base != nil {
		effective = base.Clone()
	}

	details := s.baseDetails(effective, now)

	if base != nil {
		if override, ok := s.overrides[base.ID]; ok {
			override(details, now)
		}
	}

	return details
}

func (s *Synthesizer) user(name, role string) entities.User {
	url, _ := s.avatars.AvatarURL(name)
	return entities.NewUser(name, role, url)
}

func (s *Synthesizer) baseDetails(p entities.ProjectListItem, today time.Time) *entities.ProjectDetails {
	loc := today.Location()

	picUsers := make([]entities.User, 0, len(p.Members))
	for _, name := range p.Members {
		picUsers = append(picUsers, s.user(name, entities.UserRolePIC))
	}
	if len(picUsers) == 0 {
		picUsers = append(picUsers, s.user(s.cfg.DefaultPICName, entities.UserRolePIC))
	}
	owner := picUsers[0]

	description := mockDescription
	if p.Client != "" {
		description = fmt.Sprintf("Project for %s. %s", p.Client, mockDescription)
	}

	priorityLabel := capitalize(p.Priority)
	source := p.Clone()

	return &entities.ProjectDetails{
		ID:          p.ID,
		Name:        p.Name,
		Description: description,
		Meta: entities.ProjectMeta{
			PriorityLabel: priorityLabel,
			LocationLabel: s.cfg.LocationLabel,
			SprintLabel:   sprintLabel(p.TypeLabel, p.DurationLabel),
			LastSyncLabel: lastSyncLabel,
		},
		Scope: entities.ProjectScope{
			InScope:    []string{"Define scope", "Draft solution", "Validate with stakeholders", "Prepare handoff"},
			OutOfScope: []string{"Backend logic changes", "Marketing landing pages"},
		},
		Outcomes: []string{"Reduce steps and improve usability", "Increase success rate", "Deliver production-ready UI"},
		KeyFeatures: entities.KeyFeatures{
			P0: []string{"Core user flow"},
			P1: []string{"Filters and empty states"},
			P2: []string{"Visual polish"},
		},
		Workstreams:   genericWorkstreams(p.ID, owner, today),
		TimelineTasks: timeline(p.ID, loc),
		Time: entities.TimeSummary{
			EstimateLabel:      "1 months",
			DueDate:            time.Date(2025, time.December, 31, 0, 0, 0, 0, loc),
			DaysRemainingLabel: "21 Days to go",
			ProgressPercent:    75,
		},
		Backlog: entities.BacklogSummary{
			StatusLabel:   entities.BacklogStatusActive,
			GroupLabel:    "None",
			PriorityLabel: priorityLabel,
			LabelBadge:    "Design",
			PICUsers:      picUsers,
			SupportUsers:  []entities.User{s.user(s.cfg.SupportName, entities.UserRoleSupport)},
		},
		QuickLinks: []entities.QuickLink{},
		Notes:      seedNotes(p.ID, owner, loc),
		Source:     &source,
	}
}

func genericWorkstreams(projectID string, owner entities.User, today time.Time) []entities.WorkstreamGroup {
	return []entities.WorkstreamGroup{
		{
			ID:   fmt.Sprintf("%s-ws-1", projectID),
			Name: "Initial discovery & alignment",
			Tasks: []entities.WorkstreamTask{
				{
					ID:        fmt.Sprintf("%s-ws-1-t1", projectID),
					Name:      "Kickoff with stakeholders",
					Status:    entities.TaskStatusDone,
					DueLabel:  "Today",
					DueTone:   entities.DueToneMuted,
					Assignee:  userRef(owner),
					StartDate: addDays(today, 0),
				},
				{
					ID:        fmt.Sprintf("%s-ws-1-t2", projectID),
					Name:      "Define problem statement",
					Status:    entities.TaskStatusInProgress,
					DueLabel:  "Tomorrow",
					DueTone:   entities.DueToneWarning,
					Assignee:  userRef(owner),
					StartDate: addDays(today, 1),
				},
				{
					ID:        fmt.Sprintf("%s-ws-1-t3", projectID),
					Name:      "Collect existing assets",
					Status:    entities.TaskStatusTodo,
					StartDate: addDays(today, 2),
				},
			},
		},
		{
			ID:   fmt.Sprintf("%s-ws-2", projectID),
			Name: "Design & validation",
			Tasks: []entities.WorkstreamTask{
				{
					ID:        fmt.Sprintf("%s-ws-2-t1", projectID),
					Name:      "Draft wireframes",
					Status:    entities.TaskStatusTodo,
					StartDate: addDays(today, 3),
				},
				{
					ID:        fmt.Sprintf("%s-ws-2-t2", projectID),
					Name:      "Review with team",
					Status:    entities.TaskStatusTodo,
					StartDate: addDays(today, 4),
				},
			},
		},
	}
}

func timeline(projectID string, loc *time.Location) []entities.TimelineTask {
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, loc)
	}
	return []entities.TimelineTask{
		{
			ID:        fmt.Sprintf("%s-t1", projectID),
			Name:      "Audit existing flows",
			StartDate: day(2025, time.December, 26),
			EndDate:   day(2025, time.December, 27),
			Status:    entities.TimelineStatusDone,
		},
		{
			ID:        fmt.Sprintf("%s-t2", projectID),
			Name:      "Redesign onboarding & payment",
			StartDate: day(2025, time.December, 28),
			EndDate:   day(2025, time.December, 30),
			Status:    entities.TimelineStatusInProgress,
		},
		{
			ID:        fmt.Sprintf("%s-t3", projectID),
			Name:      "Usability testing",
			StartDate: day(2025, time.December, 30),
			EndDate:   day(2026, time.January, 1),
			Status:    entities.TimelineStatusPlanned,
		},
		{
			ID:        fmt.Sprintf("%s-t4", projectID),
			Name:      "Iterate based on feedback",
			StartDate: day(2026, time.January, 1),
			EndDate:   day(2026, time.January, 2),
			Status:    entities.TimelineStatusPlanned,
		},
	}
}

// capitalize upper-cases the first letter and keeps the remainder unchanged
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func sprintLabel(typeLabel, durationLabel string) string {
	switch {
	case typeLabel != "" && durationLabel != "":
		return typeLabel + " " + durationLabel
	case durationLabel != "":
		return durationLabel
	default:
		return defaultSprintLabel
	}
}

// addDays moves t by whole calendar days, keeping the time of day
func addDays(t time.Time, days int) *time.Time {
	d := t.AddDate(0, 0, days)
	return &d
}

func userRef(u entities.User) *entities.User {
	return &u
}
