package repository

import (
	"context"

	"funnel/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPartnerNotFound is returned when no partner owns a referral code.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerRepository defines the interface for partner lookups.
type PartnerRepository interface {
	// FindByCode retrieves a partner by referral code.
	FindByCode(ctx context.Context, code string) (*entity.Partner, error)
}
