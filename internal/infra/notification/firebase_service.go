package notification

import (
	"context"
	"log/slog"

	"funnel/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the part of the FCM client the service uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.NotificationService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendTopicNotification sends a push notification to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := newTopicMessage(topic, title, body, data)

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("[Firebase] Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

func newTopicMessage(topic, title, body string, data map[string]string) *messaging.Message {
	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}

// logOnlyService stands in when Firebase is not configured. Notifications are logged
// and dropped.
type logOnlyService struct {
	logger *slog.Logger
}

// NewLogOnlyService returns a NotificationService that only logs.
func NewLogOnlyService(logger *slog.Logger) service.NotificationService {
	return &logOnlyService{logger: logger}
}

func (s *logOnlyService) SendTopicNotification(ctx context.Context, topic, title, body string, _ map[string]string) error {
	s.logger.InfoContext(ctx, "[Notification] Firebase disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}
