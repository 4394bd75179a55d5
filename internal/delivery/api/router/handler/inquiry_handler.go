package handler

import (
	"log/slog"
	"net/http"

	"funnel/internal/delivery/api/response"
	"funnel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InquiryHandlerParams holds dependencies for InquiryHandler, injected by Fx.
type InquiryHandlerParams struct {
	fx.In

	InquiryUC usecase.InquiryUsecase
	Logger    *slog.Logger
}

// InquiryHandler accepts landing page and reservation funnel submissions.
type InquiryHandler struct {
	inquiryUC usecase.InquiryUsecase
	logger    *slog.Logger
}

// NewInquiryHandler is the constructor for InquiryHandler
func NewInquiryHandler(params InquiryHandlerParams) *InquiryHandler {
	return &InquiryHandler{
		inquiryUC: params.InquiryUC,
		logger:    params.Logger,
	}
}

// Submit handles POST /api/inquiry. The body is either the legacy landing shape or
// the unified shape; the use case tells them apart.
func (h *InquiryHandler) Submit(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	result, err := h.inquiryUC.Submit(c.Request().Context(), body)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result.Inquiry, result.Message)
}
