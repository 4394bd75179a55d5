package usecase

import (
	"context"

	"funnel/internal/domain/service"
)

// NotificationUsecase turns inquiry events into push notifications.
type NotificationUsecase interface {
	// HandleInquiryEvent notifies the attributed partner and the admins.
	HandleInquiryEvent(ctx context.Context, event *service.InquiryEvent) error
}
