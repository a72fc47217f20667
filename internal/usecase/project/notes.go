package project

import (
	"fmt"
	"time"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

type seedNote struct {
	title    string
	noteType entities.NoteType
	status   entities.NoteStatus
	year     int
	month    time.Month
	day      int
	content  string
}

// seedNoteList is the fixed order of the eight seeded notes after the audio review
var seedNoteList = []seedNote{
	{"Meeting note", entities.NoteTypeMeeting, entities.NoteStatusCompleted, 2024, time.September, 18,
		"Discussion about current sprint goals, open issues, and next steps for the design handoff."},
	{"Client feedback", entities.NoteTypeGeneral, entities.NoteStatusCompleted, 2024, time.September, 18,
		"Client shared feedback on the latest homepage iteration. Main concern is clarity of the hero copy."},
	{"Internal brainstorm", entities.NoteTypeGeneral, entities.NoteStatusCompleted, 2024, time.September, 17,
		"Ideas for onboarding improvements, including checklists, progress indicators, and inline tips."},
	{"Hero Description", entities.NoteTypeGeneral, entities.NoteStatusCompleted, 2024, time.September, 17,
		"Copy options for the hero section headline and supporting description for A/B testing."},
	{"Trade-off", entities.NoteTypeMeeting, entities.NoteStatusProcessing, 2024, time.September, 17,
		"Notes about trade-offs between performance and flexibility for the new dashboard widgets."},
	{"Roadmap", entities.NoteTypeGeneral, entities.NoteStatusCompleted, 2024, time.September, 16,
		"High-level roadmap for the next two quarters focusing on analytics and collaboration features."},
	{"Brainstorm", entities.NoteTypeGeneral, entities.NoteStatusCompleted, 2024, time.September, 16,
		"Rough brainstorming around potential integrations and automation opportunities."},
}

func seedNotes(projectID string, author entities.User, loc *time.Location) []entities.ProjectNote {
	notes := make([]entities.ProjectNote, 0, len(seedNoteList)+1)
	notes = append(notes, entities.ProjectNote{
		ID:        fmt.Sprintf("%s-note-1", projectID),
		Title:     "Project review",
		NoteType:  entities.NoteTypeAudio,
		Status:    entities.NoteStatusCompleted,
		AddedDate: time.Date(2025, time.July, 12, 0, 0, 0, 0, loc),
		AddedBy:   author,
		AudioData: projectReviewAudio(),
	})
	for i, n := range seedNoteList {
		notes = append(notes, entities.ProjectNote{
			ID:        fmt.Sprintf("%s-note-%d", projectID, i+2),
			Title:     n.title,
			Content:   n.content,
			NoteType:  n.noteType,
			Status:    n.status,
			AddedDate: time.Date(n.year, n.month, n.day, 0, 0, 0, 0, loc),
			AddedBy:   author,
		})
	}
	return notes
}

func projectReviewAudio() *entities.AudioNoteData {
	return &entities.AudioNoteData{
		Duration: "00:02:21",
		FileName: "project-review-meeting.mp3",
		AISummary: "The meeting involved a review of ongoing projects and the planning of next steps. " +
			"The team discussed user testing for the week to gather feedback before deciding on new features and tasks for the next phase. " +
			"Contract payments and design considerations for the landing page were also addressed.",
		KeyPoints: []string{
			"User testing scheduled for this week",
			"New features to be decided after feedback",
			"Contract payment timeline confirmed",
			"Landing page design in progress",
		},
		Insights: []string{
			"Team alignment on priorities is strong",
			"Need more clarity on feature scope",
			"Design review needed before development",
		},
		Transcript: []entities.TranscriptSegment{
			{ID: "t1", Speaker: "SPK_1", Timestamp: "0:00", Text: "Co-founder should be joining on in a sec, but I kind of caught him up to speed on what we talked about last time."},
			{ID: "t2", Speaker: "SPK_2", Timestamp: "0:15", Text: "Kind of where Bino is, what type of help we ideally are looking for and then you know, if you are interested, a type of work trial moving forward, what that would look like."},
			{ID: "t3", Speaker: "SPK_1", Timestamp: "0:22", Text: "So today, really hoping to kind of go through some of those details and also like, if you have any insights on Bino as well as some design and suggestions that you have, we'd love to kind of talk through those as well."},
			{ID: "t4", Speaker: "SPK_2", Timestamp: "0:38", Text: "Okay, sure."},
			{ID: "t5", Speaker: "SPK_3", Timestamp: "0:43", Text: "Sounds good."},
			{ID: "t6", Speaker: "SPK_1", Timestamp: "0:55", Text: "So yeah, we can give him a sec."},
			{ID: "t7", Speaker: "SPK_2", Timestamp: "1:00", Text: "I think he should be drawing, but he doesn't."},
		},
	}
}
