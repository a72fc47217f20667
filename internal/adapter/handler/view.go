package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/errors"
	viewDTO "github.com/johnquangdev/project-hub/internal/adapter/dto/view"
	"github.com/johnquangdev/project-hub/internal/adapter/presenter"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
	"github.com/johnquangdev/project-hub/internal/usecase/note"
	viewUsecase "github.com/johnquangdev/project-hub/internal/usecase/view"
)

// View handles view session HTTP requests
type View struct {
	viewService *viewUsecase.Service
	rowDate     presenter.DateFormatter
	previewDate presenter.DateFormatter
	logger      *zap.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(viewService *viewUsecase.Service, rowDate, previewDate presenter.DateFormatter, logger *zap.Logger) *View {
	if rowDate == nil {
		rowDate = presenter.CardDate
	}
	if previewDate == nil {
		previewDate = presenter.PreviewDate
	}
	return &View{
		viewService: viewService,
		rowDate:     rowDate,
		previewDate: previewDate,
		logger:      logger,
	}
}

// OpenTable handles POST /projects/:id/views/table
// @Summary      Open a notes table view
// @Description  Starts an ephemeral search and selection session over the notes of a project
// @Tags         Views
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  view.ViewResponse
// @Router       /projects/{id}/views/table [post]
func (h *View) OpenTable(c echo.Context) error {
	snap, err := h.viewService.OpenTable(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "", err)
	}
	return HandleSuccess(h.logger, c, presenter.ToViewResponse(snap, h.rowDate, h.previewDate))
}

// OpenPreview handles POST /projects/:id/notes/:noteId/views/preview
// @Summary      Open a note preview view
// @Description  Starts an ephemeral preview session with the summary panel open
// @Tags         Views
// @Produce      json
// @Param        id      path      string  true  "Project ID"
// @Param        noteId  path      string  true  "Note ID"
// @Success      200     {object}  view.ViewResponse
// @Failure      404     {object}  map[string]interface{}  "Note not found"
// @Router       /projects/{id}/notes/{noteId}/views/preview [post]
func (h *View) OpenPreview(c echo.Context) error {
	projectID, noteID := c.Param("id"), c.Param("noteId")
	snap, err := h.viewService.OpenPreview(c.Request().Context(), projectID, noteID)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrNoteNotFound) {
			return HandleError(h.logger, c, errors.ErrNoteNotFound(projectID, noteID))
		}
		return h.fail(c, "", err)
	}
	return HandleSuccess(h.logger, c, presenter.ToViewResponse(snap, h.rowDate, h.previewDate))
}

// GetView handles GET /views/:viewId
// @Summary      Read a view
// @Tags         Views
// @Produce      json
// @Param        viewId  path      string  true  "View ID"
// @Success      200     {object}  view.ViewResponse
// @Failure      404     {object}  map[string]interface{}  "View not found or expired"
// @Router       /views/{viewId} [get]
func (h *View) GetView(c echo.Context) error {
	viewID := c.Param("viewId")
	snap, err := h.viewService.Get(c.Request().Context(), viewID)
	if err != nil {
		return h.fail(c, viewID, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToViewResponse(snap, h.rowDate, h.previewDate))
}

// ApplyEvent handles POST /views/:viewId/events
// @Summary      Apply a view event
// @Description  Transitions a view by one user input and returns the new snapshot
// @Tags         Views
// @Accept       json
// @Produce      json
// @Param        viewId   path      string                true  "View ID"
// @Param        request  body      view.EventRequest     true  "Event"
// @Success      200      {object}  view.ViewResponse
// @Failure      400      {object}  map[string]interface{}  "Event does not apply to this view"
// @Failure      404      {object}  map[string]interface{}  "View not found or expired"
// @Router       /views/{viewId}/events [post]
func (h *View) ApplyEvent(c echo.Context) error {
	var req viewDTO.EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	viewID := c.Param("viewId")
	snap, err := h.viewService.Apply(c.Request().Context(), viewID, viewUsecase.Event{
		Type:      req.Type,
		Query:     req.Query,
		NoteID:    req.NoteID,
		Section:   note.Section(req.Section),
		SegmentID: req.SegmentID,
	})
	if err != nil {
		return h.fail(c, viewID, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToViewResponse(snap, h.rowDate, h.previewDate))
}

// CloseView handles DELETE /views/:viewId
// @Summary      Close a view
// @Tags         Views
// @Produce      json
// @Param        viewId  path      string  true  "View ID"
// @Success      200     {object}  map[string]interface{}  "Closed"
// @Failure      404     {object}  map[string]interface{}  "View not found or expired"
// @Router       /views/{viewId} [delete]
func (h *View) CloseView(c echo.Context) error {
	viewID := c.Param("viewId")
	if err := h.viewService.Close(c.Request().Context(), viewID); err != nil {
		return h.fail(c, viewID, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"id": viewID, "closed": true})
}

func (h *View) fail(c echo.Context, viewID string, err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrViewNotFound):
		return HandleError(h.logger, c, errors.ErrViewNotFound(viewID))
	case stdErrors.Is(err, usecaseErrors.ErrInvalidEvent), stdErrors.Is(err, usecaseErrors.ErrViewKind):
		return HandleError(h.logger, c, errors.ErrViewInvalidEvent(err))
	case stdErrors.Is(err, usecaseErrors.ErrStateEncoding):
		return HandleError(h.logger, c, errors.ErrViewStateFailed(viewID, err))
	default:
		return HandleError(h.logger, c, errors.ErrCacheFailed("view state", err))
	}
}
