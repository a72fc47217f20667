package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/project-hub/errors"
	"github.com/johnquangdev/project-hub/internal/adapter/dto/common"
	"github.com/johnquangdev/project-hub/internal/domain/entities"
	projectUsecase "github.com/johnquangdev/project-hub/internal/usecase/project"
)

const (
	projectKey     = "project"
	currentUserKey = "current_user"
)

// LoadProject middleware: resolves the :id route parameter into project
// details once per request. Unknown ids resolve to a placeholder project.
// The id is used as sent; a blank id is rejected.
func LoadProject(projectService projectUsecase.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			projectID := c.Param("id")
			if strings.TrimSpace(projectID) == "" {
				appErr := errors.ErrInvalidArgument("project ID must not be empty")
				return c.JSON(appErr.HTTPCode, common.ErrorResponse{
					Code:    appErr.Code,
					Message: appErr.Message,
				})
			}
			c.Set(projectKey, projectService.GetProjectDetails(c.Request().Context(), projectID))
			return next(c)
		}
	}
}

// ProjectFromContext returns the project loaded by LoadProject
func ProjectFromContext(c echo.Context) (*entities.ProjectDetails, bool) {
	details, ok := c.Get(projectKey).(*entities.ProjectDetails)
	return details, ok && details != nil
}

// CurrentUser middleware: attaches the acting user to the request
func CurrentUser(user entities.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUserFromContext returns the user attached by CurrentUser
func CurrentUserFromContext(c echo.Context) (entities.User, bool) {
	user, ok := c.Get(currentUserKey).(entities.User)
	return user, ok
}
