package project

import (
	"time"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

// Override replaces generic synthesized content with a hand-authored fixture
type Override func(d *entities.ProjectDetails, now time.Time)

// CoreRedesignProjectID is the catalog project that carries a hand-authored fixture
const CoreRedesignProjectID = "1"

// DefaultOverrides returns the fixture table keyed by project id
func DefaultOverrides() map[string]Override {
	return map[string]Override{
		CoreRedesignProjectID: coreRedesignFixture,
	}
}

func coreRedesignFixture(d *entities.ProjectDetails, today time.Time) {
	d.Description = "The internal project aims to optimize user experience and interface for the PM System Core. " +
		"The goal is to standardize UX, enhance usability, and create a design content repository for daily publication on social media."

	d.Scope = entities.ProjectScope{
		InScope: []string{
			"UX research (existing users, light interviews)",
			"Core flows redesign (Onboarding, Payment, Transaction history)",
			"Design system (starter components)",
			"Usability fixes for critical flows",
		},
		OutOfScope: []string{"New feature ideation", "Backend logic changes", "Marketing landing pages"},
	}

	d.Outcomes = []string{
		"Reduce payment flow steps from 6 → 4",
		"Increase task success rate (usability test) from 70% → 90%",
		"Deliver production-ready UI for MVP build",
		"Enable dev handoff without design clarification loops",
	}

	d.KeyFeatures = entities.KeyFeatures{
		P0: []string{"Onboarding & KYC flow", "Payment confirmation UX"},
		P1: []string{"Transaction history & filters", "Error / empty states"},
		P2: []string{"Visual polish & motion guidelines"},
	}

	d.QuickLinks = []entities.QuickLink{
		{ID: "ql-1", Name: "Proposal.pdf", Type: entities.QuickLinkPDF, SizeMB: 13.0, URL: "#"},
		{ID: "ql-2", Name: "Wireframe Layout.zip", Type: entities.QuickLinkZIP, SizeMB: 13.0, URL: "#"},
		{ID: "ql-3", Name: "UI Kit.fig", Type: entities.QuickLinkFig, SizeMB: 13.0, URL: "#"},
	}

	owner := d.Backlog.PICUsers[0]
	task := func(id, name string, status entities.WorkstreamTaskStatus, offset int) entities.WorkstreamTask {
		return entities.WorkstreamTask{
			ID:        id,
			Name:      name,
			Status:    status,
			Assignee:  userRef(owner),
			StartDate: addDays(today, offset),
		}
	}
	due := func(t entities.WorkstreamTask, label string, tone entities.DueTone) entities.WorkstreamTask {
		t.DueLabel = label
		t.DueTone = tone
		return t
	}

	d.Workstreams = []entities.WorkstreamGroup{
		{
			ID:   "1-ws-1",
			Name: "Processing documents for signing the deal",
			Tasks: []entities.WorkstreamTask{
				due(task("1-ws-1-t1", "Processing documents for signing the deal", entities.TaskStatusDone, 0), "Today", entities.DueToneMuted),
				due(task("1-ws-1-t2", "Internal approval & sign-off", entities.TaskStatusTodo, 0), "Today", entities.DueToneDanger),
				due(task("1-ws-1-t3", "Send contract to client", entities.TaskStatusTodo, 1), "Tomorrow", entities.DueToneWarning),
				task("1-ws-1-t4", "Track client signature", entities.TaskStatusTodo, 2),
			},
		},
		{
			ID:   "1-ws-2",
			Name: "Client onboarding setup",
			Tasks: []entities.WorkstreamTask{
				due(task("1-ws-2-t1", "Collect onboarding requirements", entities.TaskStatusInProgress, 2), "This week", entities.DueToneMuted),
				task("1-ws-2-t2", "Configure sandbox account", entities.TaskStatusTodo, 3),
				task("1-ws-2-t3", "Schedule onboarding session", entities.TaskStatusTodo, 4),
			},
		},
		{
			ID:   "1-ws-3",
			Name: "Product wireframe & review",
			Tasks: []entities.WorkstreamTask{
				task("1-ws-3-t1", "Prepare low-fidelity wireframes", entities.TaskStatusTodo, 3),
				task("1-ws-3-t2", "Review with stakeholders", entities.TaskStatusTodo, 4),
			},
		},
		{
			ID:   "1-ws-4",
			Name: "Demo UI Concept",
			Tasks: []entities.WorkstreamTask{
				task("1-ws-4-t1", "Prepare clickable prototype", entities.TaskStatusTodo, 4),
			},
		},
		{
			ID:   "1-ws-5",
			Name: "Feedback and iteration with stakeholders",
			Tasks: []entities.WorkstreamTask{
				task("1-ws-5-t1", "Collect feedback from stakeholders", entities.TaskStatusTodo, 5),
			},
		},
	}
}
