package handler

import (
	"log/slog"
	"net/http"

	"funnel/internal/delivery/api/response"
	"funnel/internal/domain/entity"
	"funnel/internal/domain/reservation"
	"funnel/internal/domain/submission"
	"funnel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
	LookupUC      usecase.LookupUsecase
	DocumentUC    usecase.DocumentUsecase
	Logger        *slog.Logger
}

// ReservationHandler serves the customer-facing reservation steps.
type ReservationHandler struct {
	reservationUC usecase.ReservationUsecase
	lookupUC      usecase.LookupUsecase
	documentUC    usecase.DocumentUsecase
	logger        *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler
func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: params.ReservationUC,
		lookupUC:      params.LookupUC,
		documentUC:    params.DocumentUC,
		logger:        params.Logger,
	}
}

// UpdateReservationRequest is a partial update. Omitted or null fields are left as stored.
type UpdateReservationRequest struct {
	ReservationDate     *entity.Date      `json:"reservationDate"`
	ReservationTimeSlot *entity.TimeSlot  `json:"reservationTimeSlot"`
	OutdoorCount        *int              `json:"outdoorCount"`
	IndoorCount         *int              `json:"indoorCount"`
	Address             *string           `json:"address"`
	AddressDetail       *string           `json:"addressDetail"`
	Zonecode            *string           `json:"zonecode"`
	Documents           map[string]string `json:"documents"`
	DocumentsSubmitted  *bool             `json:"documentsSubmitted"`
}

// toPatch converts the request into a state machine patch.
func (r *UpdateReservationRequest) toPatch() *reservation.Patch {
	patch := &reservation.Patch{
		ReservationDate:     r.ReservationDate,
		ReservationTimeSlot: r.ReservationTimeSlot,
		OutdoorCount:        r.OutdoorCount,
		IndoorCount:         r.IndoorCount,
		Address:             r.Address,
		AddressDetail:       r.AddressDetail,
		Zonecode:            r.Zonecode,
		DocumentsSubmitted:  r.DocumentsSubmitted,
	}
	if len(r.Documents) > 0 {
		patch.Documents = make(entity.Documents, len(r.Documents))
		for kind, ref := range r.Documents {
			patch.Documents[entity.DocumentKind(kind)] = ref
		}
	}

	return patch
}

// GetReservation handles GET /api/reservation/:id
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	inquiry, err := h.reservationUC.GetReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, inquiry, "")
}

// UpdateReservation handles PATCH /api/reservation/:id
func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var req UpdateReservationRequest
	if len(body) > 0 {
		if err := submission.DecodeJSON(body, &req); err != nil {
			return err
		}
	}

	inquiry, err := h.reservationUC.UpdateReservation(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, inquiry, "예약 정보가 저장되었습니다.")
}

// Lookup handles GET /api/reservation/lookup?phone=. No match is a success with a
// null inquiry.
func (h *ReservationHandler) Lookup(c echo.Context) error {
	inquiry, err := h.lookupUC.FindByPhone(c.Request().Context(), c.QueryParam("phone"))
	if err != nil {
		return err
	}

	resp := response.LookupResponse{Success: true}
	if inquiry != nil {
		resp.Inquiry = inquiry
	}

	return c.JSON(http.StatusOK, resp)
}

// UploadDocument handles POST /api/reservation/:id/documents/:kind (multipart field "file")
func (h *ReservationHandler) UploadDocument(c echo.Context) error {
	var file *usecase.DocumentFile

	fileHeader, err := c.FormFile("file")
	switch {
	case err == nil:
		src, openErr := fileHeader.Open()
		if openErr != nil {
			return errors.Wrap(openErr, "open uploaded file")
		}
		defer src.Close()

		file = &usecase.DocumentFile{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get(echo.HeaderContentType),
			Size:        fileHeader.Size,
			Content:     src,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// The use case rejects a missing file with a field error.
	default:
		return errors.Wrap(err, "read multipart form")
	}

	uploaded, err := h.documentUC.Upload(c.Request().Context(), c.Param("id"), c.Param("kind"), file)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, uploaded, "")
}
