package handler

import (
	"net/http"

	"funnel/internal/delivery/api/middleware"
	"funnel/internal/delivery/api/response"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PartnerHandler serves the partner dashboard.
type PartnerHandler struct {
	partnerUC usecase.PartnerUsecase
}

// NewPartnerHandler is the constructor for PartnerHandler
func NewPartnerHandler(partnerUC usecase.PartnerUsecase) *PartnerHandler {
	return &PartnerHandler{partnerUC: partnerUC}
}

// ListInquiries handles GET /api/partner/inquiries?limit=&offset=
func (h *PartnerHandler) ListInquiries(c echo.Context) error {
	operator, ok := middleware.GetOperator(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	limit, offset, err := bindPage(c)
	if err != nil {
		return err
	}

	page, err := h.partnerUC.ListInquiries(c.Request().Context(), operator, limit, offset)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, page, "")
}

// ReferralQR handles GET /api/partner/qr and returns a PNG image.
func (h *PartnerHandler) ReferralQR(c echo.Context) error {
	operator, ok := middleware.GetOperator(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	png, err := h.partnerUC.ReferralQR(c.Request().Context(), operator)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
