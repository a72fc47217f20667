package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/errors"
	noteDTO "github.com/johnquangdev/project-hub/internal/adapter/dto/note"
	"github.com/johnquangdev/project-hub/internal/adapter/presenter"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
	noteUsecase "github.com/johnquangdev/project-hub/internal/usecase/note"
	"github.com/johnquangdev/project-hub/pkg/middleware"
)

// Note handles note-related HTTP requests
type Note struct {
	notes       *noteUsecase.Service
	actions     *noteUsecase.ActionService
	rowDate     presenter.DateFormatter
	previewDate presenter.DateFormatter
	logger      *zap.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(notes *noteUsecase.Service, actions *noteUsecase.ActionService, rowDate, previewDate presenter.DateFormatter, logger *zap.Logger) *Note {
	if rowDate == nil {
		rowDate = presenter.CardDate
	}
	if previewDate == nil {
		previewDate = presenter.PreviewDate
	}
	return &Note{
		notes:       notes,
		actions:     actions,
		rowDate:     rowDate,
		previewDate: previewDate,
		logger:      logger,
	}
}

// ListNotes handles GET /projects/:id/notes
// @Summary      List notes
// @Description  Lists the notes of a project whose title contains the search text
// @Tags         Notes
// @Produce      json
// @Param        id      path      string  true   "Project ID"
// @Param        search  query     string  false  "Case-insensitive title filter"
// @Success      200     {object}  note.NoteListResponse
// @Failure      422     {object}  map[string]interface{}  "Validation failed"
// @Router       /projects/{id}/notes [get]
func (h *Note) ListNotes(c echo.Context) error {
	var req noteDTO.ListNotesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	notes := h.notes.ListNotes(c.Request().Context(), c.Param("id"), req.Search)
	return HandleSuccess(h.logger, c, presenter.ToNoteListResponse(req.Search, notes, h.rowDate))
}

// ListRecentNotes handles GET /projects/:id/notes/recent
// @Summary      Recent notes
// @Description  Returns the notes shown in the recent-notes card grid
// @Tags         Notes
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  note.NoteListResponse
// @Router       /projects/{id}/notes/recent [get]
func (h *Note) ListRecentNotes(c echo.Context) error {
	notes := h.notes.ListRecent(c.Request().Context(), c.Param("id"))
	return HandleSuccess(h.logger, c, presenter.ToNoteListResponse("", notes, h.rowDate))
}

// GetNote handles GET /projects/:id/notes/:noteId
// @Summary      Preview a note
// @Description  Renders a note as an audio or a text preview
// @Tags         Notes
// @Produce      json
// @Param        id      path      string  true  "Project ID"
// @Param        noteId  path      string  true  "Note ID"
// @Success      200     {object}  note.NotePreviewResponse
// @Failure      404     {object}  map[string]interface{}  "Note not found"
// @Router       /projects/{id}/notes/{noteId} [get]
func (h *Note) GetNote(c echo.Context) error {
	projectID, noteID := c.Param("id"), c.Param("noteId")
	v, err := h.notes.Render(c.Request().Context(), projectID, noteID)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrNoteNotFound) {
			return HandleError(h.logger, c, errors.ErrNoteNotFound(projectID, noteID))
		}
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToNotePreviewResponse(v, h.previewDate))
}

// CreateNote handles POST /projects/:id/notes
// @Summary      Create a note
// @Description  Accepts a new note. Notes are not persisted yet; the response carries persisted=false.
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Project ID"
// @Param        request  body      note.CreateNoteRequest  true  "Note content"
// @Success      202      {object}  map[string]interface{}  "Acknowledged"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Failure      422      {object}  map[string]interface{}  "Validation failed"
// @Router       /projects/{id}/notes [post]
func (h *Note) CreateNote(c echo.Context) error {
	var req noteDTO.CreateNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	author, _ := middleware.CurrentUserFromContext(c)
	ack := h.actions.Create(c.Request().Context(), noteUsecase.CreateNoteInput{
		ProjectID: c.Param("id"),
		Title:     req.Title,
		Content:   req.Content,
		Author:    author,
	})
	return HandleAccepted(h.logger, c, ack)
}

// UpdateNote handles PUT /projects/:id/notes/:noteId
// @Summary      Edit a note
// @Description  Accepts an edit. Notes are not persisted yet; the response carries persisted=false.
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Project ID"
// @Param        noteId   path      string                  true  "Note ID"
// @Param        request  body      note.UpdateNoteRequest  true  "Changed fields"
// @Success      202      {object}  map[string]interface{}  "Acknowledged"
// @Router       /projects/{id}/notes/{noteId} [put]
func (h *Note) UpdateNote(c echo.Context) error {
	var req noteDTO.UpdateNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	ack := h.actions.Edit(c.Request().Context(), c.Param("id"), c.Param("noteId"))
	return HandleAccepted(h.logger, c, ack)
}

// DeleteNote handles DELETE /projects/:id/notes/:noteId
// @Summary      Delete a note
// @Description  Accepts a deletion. Notes are not persisted yet; the response carries persisted=false.
// @Tags         Notes
// @Produce      json
// @Param        id      path      string  true  "Project ID"
// @Param        noteId  path      string  true  "Note ID"
// @Success      202     {object}  map[string]interface{}  "Acknowledged"
// @Router       /projects/{id}/notes/{noteId} [delete]
func (h *Note) DeleteNote(c echo.Context) error {
	ack := h.actions.Delete(c.Request().Context(), c.Param("id"), c.Param("noteId"))
	return HandleAccepted(h.logger, c, ack)
}

// UploadAudio handles POST /projects/:id/notes/audio
// @Summary      Upload audio
// @Description  Accepts an audio file selection. Nothing is transcribed yet.
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Project ID"
// @Param        request  body      note.UploadAudioRequest  true  "Selected file"
// @Success      202      {object}  map[string]interface{}   "Acknowledged"
// @Router       /projects/{id}/notes/audio [post]
func (h *Note) UploadAudio(c echo.Context) error {
	var req noteDTO.UploadAudioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	ack := h.actions.UploadAudio(c.Request().Context(), c.Param("id"), req.FileName)
	return HandleAccepted(h.logger, c, ack)
}
