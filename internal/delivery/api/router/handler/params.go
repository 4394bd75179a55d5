package handler

import (
	"io"
	"strings"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// readBody returns the raw request body. Body size is capped by the BodyLimit middleware.
func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.Wrap(err, "read request body")
	}

	return body, nil
}

// bindPage reads limit and offset query parameters. Absent values stay zero so the
// use case applies its defaults.
func bindPage(c echo.Context) (limit, offset int, err error) {
	err = echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	if err != nil {
		return 0, 0, queryError(err)
	}

	return limit, offset, nil
}

// queryError turns an echo binding failure into a field-identifying rejection.
func queryError(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return domainerrors.NewValidationError("", domainerrors.FieldError{
			Field:   bindErr.Field,
			Message: "형식이 올바르지 않습니다.",
		})
	}

	return errors.WithStack(err)
}

// parseDateParam parses a YYYY-MM-DD value named field.
func parseDateParam(field, raw string) (entity.Date, error) {
	d, err := entity.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return entity.Date{}, domainerrors.NewValidationError("", domainerrors.FieldError{
			Field:   field,
			Message: "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)",
		})
	}

	return d, nil
}
