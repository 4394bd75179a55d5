package handler

import (
	"net/http"
	"strings"

	"funnel/internal/delivery/api/response"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/submission"
	"funnel/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CalendarHandler serves the blocked-date calendar.
type CalendarHandler struct {
	calendarUC usecase.CalendarUsecase
}

// NewCalendarHandler is the constructor for CalendarHandler
func NewCalendarHandler(calendarUC usecase.CalendarUsecase) *CalendarHandler {
	return &CalendarHandler{calendarUC: calendarUC}
}

// SetBlockedDateRequest creates or replaces one override.
type SetBlockedDateRequest struct {
	Date      entity.Date `json:"date"`
	IsBlocked *bool       `json:"isBlocked"`
}

// ListBlockedDates handles GET /api/blocked-dates. The body is the bare array of
// override rows.
func (h *CalendarHandler) ListBlockedDates(c echo.Context) error {
	rows, err := h.calendarUC.ListBlockedDates(c.Request().Context())
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []*entity.BlockedDate{}
	}

	return c.JSON(http.StatusOK, rows)
}

// AvailableDates handles GET /api/reservation/available-dates?from=&days=
func (h *CalendarHandler) AvailableDates(c echo.Context) error {
	var from *entity.Date
	if raw := c.QueryParam("from"); strings.TrimSpace(raw) != "" {
		d, err := parseDateParam("from", raw)
		if err != nil {
			return err
		}
		from = &d
	}

	var days int
	if err := echo.QueryParamsBinder(c).Int("days", &days).BindError(); err != nil {
		return queryError(err)
	}

	availability, err := h.calendarUC.AvailableDates(c.Request().Context(), from, days)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, availability, "")
}

// SetBlockedDate handles PUT /api/admin/blocked-dates
func (h *CalendarHandler) SetBlockedDate(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var req SetBlockedDateRequest
	if err := submission.DecodeJSON(body, &req); err != nil {
		return err
	}
	if req.IsBlocked == nil {
		return domainerrors.NewValidationError("", domainerrors.FieldError{
			Field:   "isBlocked",
			Message: "필수 입력 항목입니다.",
		})
	}

	row, err := h.calendarUC.SetBlockedDate(c.Request().Context(), req.Date, *req.IsBlocked)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, row, "")
}

// DeleteBlockedDate handles DELETE /api/admin/blocked-dates/:date
func (h *CalendarHandler) DeleteBlockedDate(c echo.Context) error {
	d, err := parseDateParam("date", c.Param("date"))
	if err != nil {
		return err
	}

	if err := h.calendarUC.DeleteBlockedDate(c.Request().Context(), d); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
