package usecase

import (
	"context"

	"funnel/internal/domain/entity"
)

// PartnerUsecase serves the partner dashboard.
type PartnerUsecase interface {
	// ListInquiries returns inquiries attributed to the operator's marketer code.
	ListInquiries(ctx context.Context, operator *entity.Operator, limit, offset int) (*InquiryPage, error)

	// ReferralQR returns a PNG QR code of the landing URL carrying the operator's code.
	ReferralQR(ctx context.Context, operator *entity.Operator) ([]byte, error)
}
