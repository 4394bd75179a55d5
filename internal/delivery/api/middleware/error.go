package middleware

import (
	"log/slog"
	"net/http"

	"funnel/internal/delivery/api/response"
	deliverycontext "funnel/internal/delivery/context"
	domainerrors "funnel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logError(c, err)
		}

		_ = response.Error(c, httpErr.Code, message, nil)

		return
	}

	// Internal details never reach the client.
	m.logError(c, err)
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
