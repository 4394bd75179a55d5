package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"funnel/config"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/constants"
	"funnel/internal/infra/pubsub"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a push OIDC token against an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying inquiry events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push requests are signed only by real Pub/Sub outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
//
// Malformed messages are acknowledged with 200 so Pub/Sub does not redeliver them
// forever; a failed notification returns 503 so the message is retried.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Notifier] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Notifier] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Notifier] Dropping undecodable message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	// Priority: message attributes > event field > existing context
	requestID := extractRequestID(ctx, pushMsg.Message.Attributes, event.RequestID)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Notifier] Processing inquiry event",
		slog.String("event_id", event.EventID),
		slog.String("inquiry_id", event.InquiryID),
		slog.String("type", event.Type),
	)

	if err := h.notificationUC.HandleInquiryEvent(ctx, event); err != nil {
		reqLogger.Error("[Notifier] Failed to notify",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID picks the first non-empty request id, generating one as a fallback.
func extractRequestID(ctx context.Context, attributes map[string]string, eventRequestID string) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}

	if eventRequestID != "" {
		return eventRequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
