package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/errors"
	"github.com/johnquangdev/project-hub/internal/adapter/dto/common"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
	pkgvalidator "github.com/johnquangdev/project-hub/pkg/validator"
)

// getRequestID reads the request id set by the RequestID middleware, or
// the one the client sent
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusOK, data)
}

// HandleAccepted writes a 202 response for requests that were acknowledged
// but not applied
func HandleAccepted(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusAccepted, data)
}

func respond(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := common.SuccessResponse{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)
	appErr := toAppError(err)

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps use-case errors onto application errors. Anything
// unrecognised is an internal error.
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidEvent),
		stdErrors.Is(err, usecaseErrors.ErrViewKind):
		return errors.ErrViewInvalidEvent(err)
	case stdErrors.Is(err, usecaseErrors.ErrViewNotFound):
		return errors.ErrNotFound("View")
	case stdErrors.Is(err, usecaseErrors.ErrStateEncoding):
		return errors.ErrInternal(err)
	case stdErrors.Is(err, usecaseErrors.ErrNoteNotFound):
		return errors.ErrNotFound("Note")
	default:
		return errors.ErrInternal(err)
	}
}

// bindAndValidate binds the request into req and validates it
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		appErr := errors.ErrValidationFailed(err)
		for field, tag := range pkgvalidator.FieldErrors(err) {
			appErr = appErr.WithDetail(field, tag)
		}
		return appErr
	}
	return nil
}
