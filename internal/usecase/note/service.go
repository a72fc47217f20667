package note

import (
	"context"
	"fmt"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
	"github.com/johnquangdev/project-hub/internal/usecase/project"
)

// Service reads the notes of a project
type Service struct {
	projects project.Service
}

// NewService creates a new note service
func NewService(projects project.Service) *Service {
	return &Service{projects: projects}
}

// ListNotes returns the notes of projectID whose title matches query
func (s *Service) ListNotes(ctx context.Context, projectID, query string) []entities.ProjectNote {
	return FilterNotesByTitle(s.projects.GetProjectDetails(ctx, projectID).Notes, query)
}

// ListRecent returns the notes shown in the recent-notes grid
func (s *Service) ListRecent(ctx context.Context, projectID string) []entities.ProjectNote {
	return RecentNotes(s.projects.GetProjectDetails(ctx, projectID).Notes)
}

// GetNote returns one note of projectID
func (s *Service) GetNote(ctx context.Context, projectID, noteID string) (entities.ProjectNote, error) {
	n, ok := s.projects.GetProjectDetails(ctx, projectID).FindNote(noteID)
	if !ok {
		return entities.ProjectNote{}, fmt.Errorf("%w: %s", usecaseErrors.ErrNoteNotFound, noteID)
	}
	return n, nil
}

// Render returns the audio or text view of one note
func (s *Service) Render(ctx context.Context, projectID, noteID string) (View, error) {
	n, err := s.GetNote(ctx, projectID, noteID)
	if err != nil {
		return View{}, err
	}
	return RenderNote(n), nil
}
