// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "pokeradar/internal/domain/errors"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// sentinelStatus maps well-known service errors onto HTTP semantics.
var sentinelStatus = []struct {
	err  error
	code int
	tag  string
}{
	{repository.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{repository.ErrSpeciesNotFound, http.StatusNotFound, "SPECIES_NOT_FOUND"},
	{repository.ErrPositionNotFound, http.StatusNotFound, "POSITION_NOT_FOUND"},
	{repository.ErrDuplicateFilter, http.StatusConflict, "FILTER_EXISTS"},
	{impl.ErrInvalidChatID, http.StatusBadRequest, "INVALID_CHAT_ID"},
	{impl.ErrInvalidCoordinates, http.StatusBadRequest, "INVALID_COORDINATES"},
	{impl.ErrRadiusOutOfRange, http.StatusBadRequest, "RADIUS_OUT_OF_RANGE"},
	{impl.ErrInvalidSpawnEvent, http.StatusBadRequest, "INVALID_SPAWN_EVENT"},
	{impl.ErrNoSpeciesGiven, http.StatusBadRequest, "NO_SPECIES_GIVEN"},
	{impl.ErrInvalidSpecies, http.StatusBadRequest, "INVALID_SPECIES"},
}

type errorBody struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *errorInfo `json:"error,omitempty"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), errorBody{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &errorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	for _, sentinel := range sentinelStatus {
		if errors.Is(err, sentinel.err) {
			_ = c.JSON(sentinel.code, errorBody{
				Success: false,
				Code:    sentinel.code,
				Message: sentinel.err.Error(),
				Error: &errorInfo{
					Code:    sentinel.tag,
					Details: err.Error(),
				},
			})

			return
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		_ = c.JSON(httpErr.Code, errorBody{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &errorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, errorBody{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &errorInfo{
			Code:    "INTERNAL_ERROR",
			Details: err.Error(),
		},
	})
}
