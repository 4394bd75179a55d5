package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"funnel/config"
	"funnel/internal/domain/constants"
	"funnel/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.InquiryEvent {
	return &service.InquiryEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.EventInquirySubmitted,
		InquiryID:   "inq-1",
		InquiryType: "installation",
		Status:      "new",
		PhoneNumber: "01012345678",
		OccurredAt:  time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishInquiryEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishInquiryEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, LocalSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"inquiry_id": "inq-1",
		"type":       service.EventInquirySubmitted,
		"request_id": "req-1",
	}, received.Message.Attributes)

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())

	err := publisher.PublishInquiryEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestPushMessage_DecodeEvent_Malformed(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%not-base64"
	_, err := msg.DecodeEvent()
	assert.Error(t, err)

	msg.Message.Data = "bm90IGpzb24=" // "not json"
	_, err = msg.DecodeEvent()
	assert.Error(t, err)
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""

	attrs := eventAttributes(event)
	assert.NotContains(t, attrs, "request_id")
	assert.Equal(t, "inq-1", attrs["inquiry_id"])
}

func TestNewEventPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		want    any
	}{
		{name: "nil config", cfg: nil, want: &noopPublisher{}},
		{name: "none", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNone}, want: &noopPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, want: &localHTTPPublisher{}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
		})
	}
}
