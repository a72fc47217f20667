package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/errors"
	"github.com/johnquangdev/project-hub/internal/adapter/presenter"
	projectUsecase "github.com/johnquangdev/project-hub/internal/usecase/project"
	"github.com/johnquangdev/project-hub/pkg/middleware"
)

// Project handles project-related HTTP requests
type Project struct {
	projectService projectUsecase.Service
	dates          presenter.DateFormatter
	logger         *zap.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService projectUsecase.Service, dates presenter.DateFormatter, logger *zap.Logger) *Project {
	if dates == nil {
		dates = presenter.CardDate
	}
	return &Project{
		projectService: projectService,
		dates:          dates,
		logger:         logger,
	}
}

// ListProjects handles GET /projects
// @Summary      List projects
// @Description  Returns the catalog projects in display order
// @Tags         Projects
// @Produce      json
// @Success      200  {object}  project.ProjectListResponse
// @Failure      500  {object}  map[string]interface{}  "Catalog unavailable"
// @Router       /projects [get]
func (h *Project) ListProjects(c echo.Context) error {
	items, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list projects", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToProjectListResponse(items))
}

// GetProject handles GET /projects/:id
// @Summary      Get project details
// @Description  Resolves a project id into its full details. Unknown ids resolve to a placeholder project.
// @Tags         Projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  entities.ProjectDetails
// @Router       /projects/{id} [get]
func (h *Project) GetProject(c echo.Context) error {
	details, ok := middleware.ProjectFromContext(c)
	if !ok {
		details = h.projectService.GetProjectDetails(c.Request().Context(), c.Param("id"))
	}
	return HandleSuccess(h.logger, c, details)
}

// ListProjectTasks handles GET /projects/:id/tasks
// @Summary      List project tasks
// @Description  Flattens the workstreams of one project into tasks
// @Tags         Tasks
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  project.TaskListResponse
// @Router       /projects/{id}/tasks [get]
func (h *Project) ListProjectTasks(c echo.Context) error {
	details, ok := middleware.ProjectFromContext(c)
	if !ok {
		details = h.projectService.GetProjectDetails(c.Request().Context(), c.Param("id"))
	}
	return HandleSuccess(h.logger, c, presenter.ToTaskListResponse(projectUsecase.ProjectTasks(details), h.dates))
}

// ListAllTasks handles GET /tasks
// @Summary      List all tasks
// @Description  Flattens the workstreams of every catalog project, in catalog order
// @Tags         Tasks
// @Produce      json
// @Success      200  {object}  project.TaskListResponse
// @Failure      500  {object}  map[string]interface{}  "Catalog unavailable"
// @Router       /tasks [get]
func (h *Project) ListAllTasks(c echo.Context) error {
	tasks, err := h.projectService.ListAllTasks(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list tasks", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToTaskListResponse(tasks, h.dates))
}
