package usecase

import (
	"context"

	"funnel/internal/domain/entity"
)

// InquiryPage is one page of an inquiry listing.
type InquiryPage struct {
	Items  []*entity.Inquiry `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// InquiryListInput narrows an admin listing.
type InquiryListInput struct {
	Status       string
	MarketerCode string
	PhoneNumber  string
	Limit        int
	Offset       int
}

// AdminUsecase is the privileged path over inquiries.
type AdminUsecase interface {
	// ListInquiries returns a page of inquiries, newest first.
	ListInquiries(ctx context.Context, input *InquiryListInput) (*InquiryPage, error)

	// CompleteReservation moves a documents_submitted inquiry to reservation_complete.
	CompleteReservation(ctx context.Context, rawID string) (*entity.Inquiry, error)

	// ChangeStatus applies an administrative status (in_progress, contracted, cancelled).
	ChangeStatus(ctx context.Context, rawID string, status entity.InquiryStatus) (*entity.Inquiry, error)
}
