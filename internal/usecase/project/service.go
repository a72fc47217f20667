package project

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/domain/repositories"
)

// Service defines the project details use case
type Service interface {
	// ListProjects returns the catalog list items
	ListProjects(ctx context.Context) ([]*entities.ProjectListItem, error)

	// GetProjectDetails resolves id into a full aggregate. It never fails:
	// unknown ids and catalog errors degrade to a placeholder project.
	GetProjectDetails(ctx context.Context, id string) *entities.ProjectDetails

	// ListProjectTasks returns the flattened tasks of one project
	ListProjectTasks(ctx context.Context, id string) []entities.ProjectTask

	// ListAllTasks returns the flattened tasks of every catalog project in catalog order
	ListAllTasks(ctx context.Context) ([]entities.ProjectTask, error)
}

// ProjectService resolves project details from the catalog and the synthesizer
type ProjectService struct {
	catalog     repositories.ProjectCatalog
	synthesizer *Synthesizer
	logger      *zap.Logger
}

// Ensure ProjectService implements Service interface
var _ Service = (*ProjectService)(nil)

// NewProjectService creates a new project service
func NewProjectService(catalog repositories.ProjectCatalog, synthesizer *Synthesizer, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		catalog:     catalog,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// ListProjects returns the catalog list items
func (s *ProjectService) ListProjects(ctx context.Context) ([]*entities.ProjectListItem, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return items, nil
}

// GetProjectDetails resolves id into a full aggregate
func (s *ProjectService) GetProjectDetails(ctx context.Context, id string) *entities.ProjectDetails {
	base, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("project catalog lookup failed, using placeholder",
			zap.String("project_id", id),
			zap.Error(err),
		)
		base = nil
	}
	return s.synthesizer.Synthesize(id, base)
}

// ListProjectTasks returns the flattened tasks of one project
func (s *ProjectService) ListProjectTasks(ctx context.Context, id string) []entities.ProjectTask {
	return ProjectTasks(s.GetProjectDetails(ctx, id))
}

// ListAllTasks returns the flattened tasks of every catalog project
func (s *ProjectService) ListAllTasks(ctx context.Context) ([]entities.ProjectTask, error) {
	items, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.ProjectTask, 0)
	for _, item := range items {
		tasks = append(tasks, ProjectTasks(s.synthesizer.Synthesize(item.ID, item))...)
	}
	return tasks, nil
}
