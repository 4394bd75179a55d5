package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"funnel/internal/domain/service"

	"github.com/pkg/errors"
)

// LocalSubscription names the subscription the local publisher pretends to push from.
const LocalSubscription = "projects/local/subscriptions/inquiry-events"

// PushMessage is the body Pub/Sub sends to push endpoints. The local publisher
// produces the same shape so the notifier has one decode path.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeEvent extracts the inquiry event carried in the message data.
func (m *PushMessage) DecodeEvent() (*service.InquiryEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.InquiryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal inquiry event")
	}

	return &event, nil
}

// NewPushMessage wraps event the way a push subscription delivers it.
func NewPushMessage(event *service.InquiryEvent, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: LocalSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg, nil
}

// eventAttributes are set on every message for subscription filtering and tracing.
func eventAttributes(event *service.InquiryEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"inquiry_id": event.InquiryID,
		"type":       event.Type,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
