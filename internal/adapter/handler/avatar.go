package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/errors"
	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/domain/repositories"
)

// Avatar handles avatar lookups
type Avatar struct {
	avatars repositories.AvatarDirectory
	logger  *zap.Logger
}

// NewAvatarHandler creates a new avatar handler
func NewAvatarHandler(avatars repositories.AvatarDirectory, logger *zap.Logger) *Avatar {
	if avatars == nil {
		avatars = repositories.NoAvatars
	}
	return &Avatar{avatars: avatars, logger: logger}
}

// GetAvatar handles GET /users/:name/avatar
// @Summary      Resolve an avatar
// @Description  Resolves the avatar URL of a display name
// @Tags         Users
// @Produce      json
// @Param        name  path      string  true  "Display name"
// @Success      200   {object}  entities.User
// @Failure      404   {object}  map[string]interface{}  "No avatar for this name"
// @Router       /users/{name}/avatar [get]
func (h *Avatar) GetAvatar(c echo.Context) error {
	name := c.Param("name")
	url, ok := h.avatars.AvatarURL(name)
	if !ok {
		return HandleError(h.logger, c, errors.ErrNotFound("Avatar").WithDetail("name", name))
	}
	return HandleSuccess(h.logger, c, entities.NewUser(name, "", url))
}

// Me handles GET /me
// @Summary      Current user
// @Tags         Users
// @Produce      json
// @Success      200  {object}  entities.User
// @Router       /me [get]
func (h *Avatar) Me(user entities.User) echo.HandlerFunc {
	return func(c echo.Context) error {
		return HandleSuccess(h.logger, c, user)
	}
}
