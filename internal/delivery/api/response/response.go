package response

import (
	"net/http"

	deliverycontext "funnel/internal/delivery/context"
	domainerrors "funnel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response is the envelope of every JSON endpoint. Clients show Message as-is.
type Response struct {
	Success   bool                      `json:"success"`
	Message   string                    `json:"message,omitempty"`
	Data      any                       `json:"data,omitempty"`
	Errors    []domainerrors.FieldError `json:"errors,omitempty"` // Failing fields, validation only
	RequestID string                    `json:"requestId,omitempty"`
}

// LookupResponse answers a phone lookup. Inquiry is null when nothing matched.
type LookupResponse struct {
	Success bool `json:"success"`
	Inquiry any  `json:"inquiry"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string, fields []domainerrors.FieldError) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	// Field details are only meaningful for client errors.
	if statusCode >= 500 {
		fields = nil
	}

	return c.JSON(statusCode, Response{
		Success:   false,
		Message:   message,
		Errors:    fields,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// AppError renders a domain error, including the failing fields of a ValidationError.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var fields []domainerrors.FieldError

	var validationErr *domainerrors.ValidationError
	if errors.As(appErr, &validationErr) {
		fields = validationErr.Fields()
	}

	return Error(c, appErr.HTTPCode(), appErr.Message(), fields)
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message, nil)
}
