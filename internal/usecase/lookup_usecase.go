package usecase

import (
	"context"

	"funnel/internal/domain/entity"
)

// LookupUsecase resolves a phone number back to an inquiry so a customer can resume.
type LookupUsecase interface {
	// FindByPhone returns the most recently created inquiry for the phone number, or nil
	// when there is none.
	FindByPhone(ctx context.Context, phoneNumber string) (*entity.Inquiry, error)
}
