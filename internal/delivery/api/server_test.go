package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"funnel/config"
	apimiddleware "funnel/internal/delivery/api/middleware"
	"funnel/internal/delivery/api/router"
	"funnel/internal/delivery/api/router/handler"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/reservation"
	"funnel/internal/domain/service"
	"funnel/internal/domain/submission"
	"funnel/internal/infra/metrics"
	mockSvc "funnel/internal/mocks/service"
	mockUC "funnel/internal/mocks/usecase"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo          *echo.Echo
	inquiryUC     *mockUC.MockInquiryUsecase
	reservationUC *mockUC.MockReservationUsecase
	lookupUC      *mockUC.MockLookupUsecase
	documentUC    *mockUC.MockDocumentUsecase
	calendarUC    *mockUC.MockCalendarUsecase
	adminUC       *mockUC.MockAdminUsecase
	partnerUC     *mockUC.MockPartnerUsecase
	tokenSvc      *mockSvc.MockTokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.Storage = &config.StorageConfig{MaxUploadBytes: 1 << 10}

	ts := &testServer{
		inquiryUC:     mockUC.NewMockInquiryUsecase(t),
		reservationUC: mockUC.NewMockReservationUsecase(t),
		lookupUC:      mockUC.NewMockLookupUsecase(t),
		documentUC:    mockUC.NewMockDocumentUsecase(t),
		calendarUC:    mockUC.NewMockCalendarUsecase(t),
		adminUC:       mockUC.NewMockAdminUsecase(t),
		partnerUC:     mockUC.NewMockPartnerUsecase(t),
		tokenSvc:      mockSvc.NewMockTokenService(t),
	}

	ts.echo = NewEcho(ServerParams{
		Cfg:       cfg,
		Logger:    logger,
		Validator: submission.NewValidator(0),
		Metrics:   metrics.New(metrics.NewRegistry()),
		RouterParams: router.RouterParams{
			InquiryHandler: handler.NewInquiryHandler(handler.InquiryHandlerParams{
				InquiryUC: ts.inquiryUC,
				Logger:    logger,
			}),
			ReservationHandler: handler.NewReservationHandler(handler.ReservationHandlerParams{
				ReservationUC: ts.reservationUC,
				LookupUC:      ts.lookupUC,
				DocumentUC:    ts.documentUC,
				Logger:        logger,
			}),
			CalendarHandler: handler.NewCalendarHandler(ts.calendarUC),
			AdminHandler:    handler.NewAdminHandler(ts.adminUC),
			PartnerHandler:  handler.NewPartnerHandler(ts.partnerUC),
			AuthMiddleware:  apimiddleware.NewAuthMiddleware(ts.tokenSvc),
			Metrics:         metrics.New(metrics.NewRegistry()),
			Config:          cfg,
		},
	})

	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func (ts *testServer) authorize(token string, roles ...string) {
	ts.tokenSvc.EXPECT().ValidateToken(token).Return(&service.Claims{
		Roles:        roles,
		MarketerCode: "AB12",
	}, nil)
}

type envelope struct {
	Success   bool                      `json:"success"`
	Message   string                    `json:"message"`
	Data      json.RawMessage           `json:"data"`
	Errors    []domainerrors.FieldError `json:"errors"`
	RequestID string                    `json:"requestId"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestServer_HealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_SubmitInquiry(t *testing.T) {
	ts := newTestServer(t)
	body := `{"phoneNumber":"010-1234-5678","privacyConsent":true}`
	id := uuid.New()

	ts.inquiryUC.EXPECT().
		Submit(mock.Anything, []byte(body)).
		Return(&usecase.SubmitResult{
			Inquiry: &entity.Inquiry{ID: id, PhoneNumber: "01012345678", Status: entity.StatusNew},
			Message: "상담 신청이 완료되었습니다.",
		}, nil)

	rec := ts.do(jsonRequest(http.MethodPost, "/api/inquiry", body))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "상담 신청이 완료되었습니다.", env.Message)
	assert.Contains(t, string(env.Data), id.String())
	assert.NotEmpty(t, env.RequestID)
}

func TestServer_SubmitInquiry_ValidationError(t *testing.T) {
	ts := newTestServer(t)

	ts.inquiryUC.EXPECT().
		Submit(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError("", domainerrors.FieldError{
			Field:   "phoneNumber",
			Message: "올바른 전화번호를 입력해주세요.",
		}))

	rec := ts.do(jsonRequest(http.MethodPost, "/api/inquiry", `{"phoneNumber":"123"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "phoneNumber", env.Errors[0].Field)
}

func TestServer_SubmitInquiry_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodPost, "/api/inquiry", `{"memo":"`+strings.Repeat("a", 2048)+`"}`))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_InternalErrorHidesCause(t *testing.T) {
	ts := newTestServer(t)

	ts.inquiryUC.EXPECT().
		Submit(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	rec := ts.do(jsonRequest(http.MethodPost, "/api/inquiry", `{}`))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), env.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestServer_GetReservation_NotFound(t *testing.T) {
	ts := newTestServer(t)

	ts.reservationUC.EXPECT().
		GetReservation(mock.Anything, "missing").
		Return(nil, domainerrors.ErrInquiryNotFound)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/reservation/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrInquiryNotFound.Message(), decodeEnvelope(t, rec).Message)
}

func TestServer_UpdateReservation(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()

	ts.reservationUC.EXPECT().
		UpdateReservation(mock.Anything, id.String(), mock.MatchedBy(func(p *reservation.Patch) bool {
			return p.ReservationDate != nil && p.ReservationDate.String() == "2024-03-04" &&
				p.ReservationTimeSlot != nil && *p.ReservationTimeSlot == entity.TimeSlotMorning &&
				p.Documents[entity.DocumentIDCard] == "https://cdn.example.com/a.png"
		})).
		Return(&entity.Inquiry{ID: id, Status: entity.StatusScheduled}, nil)

	rec := ts.do(jsonRequest(http.MethodPatch, "/api/reservation/"+id.String(),
		`{"reservationDate":"2024-03-04","reservationTimeSlot":"morning","documents":{"idCard":"https://cdn.example.com/a.png"}}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "예약 정보가 저장되었습니다.", decodeEnvelope(t, rec).Message)
}

func TestServer_UpdateReservation_MalformedField(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodPatch, "/api/reservation/abc", `{"outdoorCount":"two"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "outdoorCount", env.Errors[0].Field)
}

func TestServer_Lookup(t *testing.T) {
	ts := newTestServer(t)

	t.Run("match", func(t *testing.T) {
		id := uuid.New()
		ts.lookupUC.EXPECT().
			FindByPhone(mock.Anything, "01012345678").
			Return(&entity.Inquiry{ID: id}, nil).Once()

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/reservation/lookup?phone=01012345678", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), id.String())
	})

	t.Run("no match", func(t *testing.T) {
		ts.lookupUC.EXPECT().
			FindByPhone(mock.Anything, "01099998888").
			Return(nil, nil).Once()

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/reservation/lookup?phone=01099998888", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"inquiry":null}`, rec.Body.String())
	})
}

func TestServer_UploadDocument(t *testing.T) {
	ts := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "card.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	ts.documentUC.EXPECT().
		Upload(mock.Anything, "inq-1", "idCard", mock.MatchedBy(func(f *usecase.DocumentFile) bool {
			return f != nil && f.Filename == "card.png" && f.Size == 8
		})).
		Return(&usecase.UploadedDocument{Kind: entity.DocumentIDCard, URL: "https://cdn.example.com/card.png"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/reservation/inq-1/documents/idCard", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := ts.do(req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/card.png")
}

func TestServer_BlockedDates(t *testing.T) {
	ts := newTestServer(t)

	ts.calendarUC.EXPECT().ListBlockedDates(mock.Anything).Return(nil, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/blocked-dates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServer_AvailableDates_InvalidDays(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/reservation/available-dates?days=abc", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "days", env.Errors[0].Field)
}

func TestServer_AdminRoutes_RequireToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/admin/inquiries", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_AdminRoutes_RejectPartner(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize("partner-token", "partner")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/inquiries", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer partner-token")
	rec := ts.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_AdminListInquiries(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize("admin-token", "admin")

	ts.adminUC.EXPECT().
		ListInquiries(mock.Anything, &usecase.InquiryListInput{
			Status: "scheduled",
			Limit:  20,
			Offset: 40,
		}).
		Return(&usecase.InquiryPage{Items: []*entity.Inquiry{}, Total: 41, Limit: 20, Offset: 40}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/inquiries?status=scheduled&limit=20&offset=40", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":41`)
}

func TestServer_AdminChangeStatus_RejectsNonAdministrative(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize("admin-token", "admin")

	req := jsonRequest(http.MethodPatch, "/api/admin/inquiries/inq-1/status", `{"status":"reservation_complete"}`)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := ts.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "status", env.Errors[0].Field)
}

func TestServer_AdminSetBlockedDate_RequiresFlag(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize("admin-token", "admin")

	req := jsonRequest(http.MethodPut, "/api/admin/blocked-dates", `{"date":"2024-03-04"}`)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := ts.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "isBlocked", decodeEnvelope(t, rec).Errors[0].Field)
}

func TestServer_AdminDeleteBlockedDate(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize("admin-token", "admin")

	ts.calendarUC.EXPECT().
		DeleteBlockedDate(mock.Anything, mock.MatchedBy(func(d entity.Date) bool {
			return d.String() == "2024-03-04"
		})).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/blocked-dates/2024-03-04", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := ts.do(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_PartnerReferralQR(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize("partner-token", "partner")

	ts.partnerUC.EXPECT().
		ReferralQR(mock.Anything, mock.MatchedBy(func(op *entity.Operator) bool {
			return op.MarketerCode == "AB12"
		})).
		Return([]byte("png"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/partner/qr", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer partner-token")
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png", rec.Body.String())
}

func TestServer_CORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/reservation/abc", nil)
	req.Header.Set(echo.HeaderOrigin, "https://landing.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPatch)
	rec := ts.do(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPatch)
}
