package handler

import (
	"net/http"

	"funnel/internal/delivery/api/response"
	"funnel/internal/domain/entity"
	"funnel/internal/domain/submission"
	"funnel/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the privileged inquiry routes.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(adminUC usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// ChangeStatusRequest carries an administrative status.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress contracted cancelled"`
}

// ListInquiries handles GET /api/admin/inquiries?status=&marketerCode=&phone=&limit=&offset=
func (h *AdminHandler) ListInquiries(c echo.Context) error {
	limit, offset, err := bindPage(c)
	if err != nil {
		return err
	}

	page, err := h.adminUC.ListInquiries(c.Request().Context(), &usecase.InquiryListInput{
		Status:       c.QueryParam("status"),
		MarketerCode: c.QueryParam("marketerCode"),
		PhoneNumber:  c.QueryParam("phone"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, page, "")
}

// CompleteReservation handles POST /api/admin/inquiries/:id/complete
func (h *AdminHandler) CompleteReservation(c echo.Context) error {
	inquiry, err := h.adminUC.CompleteReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, inquiry, "예약이 확정되었습니다.")
}

// ChangeStatus handles PATCH /api/admin/inquiries/:id/status
func (h *AdminHandler) ChangeStatus(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if err := submission.DecodeJSON(body, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	inquiry, err := h.adminUC.ChangeStatus(c.Request().Context(), c.Param("id"), entity.InquiryStatus(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, inquiry, "")
}
