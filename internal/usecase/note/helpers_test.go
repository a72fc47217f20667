package note

import (
	"context"
	"time"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/usecase/project"
)

type emptyCatalog struct{}

func (emptyCatalog) List(context.Context) ([]*entities.ProjectListItem, error) {
	return []*entities.ProjectListItem{}, nil
}

func (emptyCatalog) FindByID(context.Context, string) (*entities.ProjectListItem, error) {
	return nil, nil
}

var fixedNow = time.Date(2026, time.January, 2, 10, 0, 0, 0, time.UTC)

func newNoteService() *Service {
	clock := func() time.Time { return fixedNow }
	synth := project.NewSynthesizer(project.DefaultSynthesizerConfig(), clock, nil, project.DefaultOverrides())
	return NewService(project.NewProjectService(emptyCatalog{}, synth, nil))
}

func projectNotes(projectID string) []entities.ProjectNote {
	return newNoteService().ListNotes(context.Background(), projectID, "")
}

func textNote(id, title string) entities.ProjectNote {
	return entities.ProjectNote{ID: id, Title: title, NoteType: entities.NoteTypeGeneral}
}
