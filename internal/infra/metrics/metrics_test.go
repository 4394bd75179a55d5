package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(NewRegistry())

	m.InquirySubmitted("installation")
	m.InquirySubmitted("installation")
	m.InquirySubmitted("consultation")
	m.ReservationTransition("scheduled")
	m.SideEffectFailed("attribution_log")
	m.ObserveHTTP(http.MethodPost, "/api/inquiry", http.StatusOK, 20*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.inquiriesSubmitted.WithLabelValues("installation")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.inquiriesSubmitted.WithLabelValues("consultation")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.reservationTransition.WithLabelValues("scheduled")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.sideEffectFailures.WithLabelValues("attribution_log")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/inquiry", "200")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New(NewRegistry())
	m.InquirySubmitted("consultation")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `funnel_inquiries_submitted_total{inquiry_type="consultation"} 1`)
}
