package repository

import (
	"time"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SeedProjects returns the built-in project list
func SeedProjects() []entities.ProjectListItem {
	return []entities.ProjectListItem{
		{
			ID:            "1",
			Name:          "PM System Core Redesign",
			Progress:      45,
			StartDate:     day(2025, time.December, 1),
			EndDate:       day(2026, time.January, 15),
			Status:        entities.ProjectStatusActive,
			Priority:      "high",
			Tags:          []string{"design", "ux"},
			Members:       []string{"Jason Duong"},
			Client:        "Internal",
			TypeLabel:     "MVP",
			DurationLabel: "6 weeks",
			Tasks: []entities.ListTask{
				{ID: "1-1", Name: "Discovery interviews", Assignee: "Jason Duong", Status: "done"},
				{ID: "1-2", Name: "Onboarding flow redesign", Assignee: "Jason Duong", Status: "in-progress"},
				{ID: "1-3", Name: "Design system tokens", Assignee: "Jason Duong", Status: "todo"},
			},
		},
		{
			ID:            "2",
			Name:          "Mobile Banking Onboarding",
			Progress:      20,
			StartDate:     day(2025, time.November, 10),
			EndDate:       day(2026, time.February, 6),
			Status:        entities.ProjectStatusActive,
			Priority:      "urgent",
			Tags:          []string{"mobile", "fintech"},
			Members:       []string{"Mia Tran", "Jason Duong"},
			Client:        "Acme Bank",
			DurationLabel: "3 months",
			Tasks: []entities.ListTask{
				{ID: "2-1", Name: "KYC screens", Assignee: "Mia Tran", Status: "in-progress"},
				{ID: "2-2", Name: "Biometric login", Assignee: "Jason Duong", Status: "todo"},
			},
		},
		{
			ID:        "3",
			Name:      "Marketing Website Refresh",
			Progress:  100,
			StartDate: day(2025, time.August, 4),
			EndDate:   day(2025, time.October, 31),
			Status:    entities.ProjectStatusCompleted,
			Priority:  "low",
			Tags:      []string{"web"},
			Members:   []string{"Liam Nguyen"},
			Client:    "Northwind",
			TypeLabel: "Website",
			Tasks: []entities.ListTask{
				{ID: "3-1", Name: "Landing page copy", Assignee: "Liam Nguyen", Status: "done"},
			},
		},
		{
			ID:            "4",
			Name:          "Analytics Dashboard",
			Progress:      0,
			StartDate:     day(2026, time.January, 12),
			EndDate:       day(2026, time.March, 27),
			Status:        entities.ProjectStatusPlanned,
			Priority:      "medium",
			Tags:          []string{"data"},
			Members:       []string{},
			TypeLabel:     "Phase 1",
			DurationLabel: "10 weeks",
			Tasks:         []entities.ListTask{},
		},
		{
			ID:        "5",
			Name:      "Support Portal Migration",
			Progress:  10,
			StartDate: day(2025, time.October, 1),
			EndDate:   day(2026, time.April, 30),
			Status:    entities.ProjectStatusBacklog,
			Priority:  "no-priority",
			Tags:      []string{"ops"},
			Members:   []string{"Ava Pham"},
			Tasks: []entities.ListTask{
				{ID: "5-1", Name: "Ticket export", Assignee: "Ava Pham", Status: "todo"},
			},
		},
		{
			ID:            "6",
			Name:          "Design Ops Playbook",
			Progress:      60,
			StartDate:     day(2025, time.September, 15),
			EndDate:       day(2025, time.December, 19),
			Status:        entities.ProjectStatusCancelled,
			Priority:      "medium",
			Tags:          []string{"process"},
			Members:       []string{"Jason Duong", "Liam Nguyen"},
			Client:        "Internal",
			DurationLabel: "2 weeks",
			Tasks:         []entities.ListTask{},
		},
	}
}
