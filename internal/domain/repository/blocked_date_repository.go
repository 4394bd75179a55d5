package repository

import (
	"context"

	"funnel/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrBlockedDateNotFound is returned when no override exists for a date.
var ErrBlockedDateNotFound = errors.New("blocked date not found")

// BlockedDateRepository defines the interface for calendar override operations.
type BlockedDateRepository interface {
	// FindAll returns every override ordered by date.
	FindAll(ctx context.Context) ([]*entity.BlockedDate, error)

	// FindBetween returns overrides with from <= date <= to.
	FindBetween(ctx context.Context, from, to entity.Date) ([]*entity.BlockedDate, error)

	// FindByDate returns the override for a single date.
	FindByDate(ctx context.Context, date entity.Date) (*entity.BlockedDate, error)

	// Upsert creates or replaces the override for a date.
	Upsert(ctx context.Context, blocked *entity.BlockedDate) error

	// Delete removes the override for a date.
	Delete(ctx context.Context, date entity.Date) error
}
