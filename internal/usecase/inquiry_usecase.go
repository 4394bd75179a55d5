package usecase

import (
	"context"

	"funnel/internal/domain/entity"
)

// SubmitResult is the persisted inquiry and the message shown to the customer.
type SubmitResult struct {
	Inquiry *entity.Inquiry
	Message string
}

// InquiryUsecase accepts new inquiries from landing pages and the reservation funnel.
type InquiryUsecase interface {
	// Submit validates a raw submission body, persists it and fires side effects.
	Submit(ctx context.Context, body []byte) (*SubmitResult, error)
}
