package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"funnel/config"
	deliverycontext "funnel/internal/delivery/context"
	domainerrors "funnel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	observations []observation
}

func (r *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	r.observations = append(r.observations, observation{method: method, route: route, status: status})
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(newDiscardLogger())

	var ctxRequestID string
	var hasLogger bool
	e.GET("/", func(c echo.Context) error {
		ctxRequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

		return c.NoContent(http.StatusOK)
	}, mw.Process)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ctxRequestID)
	assert.True(t, hasLogger)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(newDiscardLogger())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Process)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestMetricsMiddleware_RouteAndStatus(t *testing.T) {
	observer := &recordingObserver{}
	e := echo.New()
	e.Use(NewMetricsMiddleware(observer).Handle)

	e.GET("/api/reservation/:id", func(c echo.Context) error {
		return domainerrors.ErrInquiryNotFound
	})
	e.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("boom")
	})

	for _, path := range []string{"/api/reservation/abc", "/ok", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, observer.observations, 3)
	assert.Equal(t, observation{http.MethodGet, "/api/reservation/:id", http.StatusNotFound}, observer.observations[0])
	assert.Equal(t, observation{http.MethodGet, "/ok", http.StatusNoContent}, observer.observations[1])
	assert.Equal(t, observation{http.MethodGet, "/boom", http.StatusInternalServerError}, observer.observations[2])
}

func TestLoggerMiddleware_LogsServerErrorsOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?phone=01012345678", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom?phone=01012345678", nil))
	assert.Contains(t, buf.String(), "status=500")
	assert.NotContains(t, buf.String(), "01012345678")
}
