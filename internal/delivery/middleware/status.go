package middleware

import (
	"net/http"

	domainerrors "funnel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// responseStatus returns the status the error handler will write for err. Middleware
// runs before the central error handler, so c.Response().Status is not final yet when
// a handler returned an error.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
