package usecase

import (
	"context"

	"funnel/internal/domain/calendar"
	"funnel/internal/domain/entity"
)

// Availability lists selectable dates starting at From.
type Availability struct {
	Today   entity.Date    `json:"today"`
	MinDate entity.Date    `json:"minDate"`
	Days    []calendar.Day `json:"days"`
}

// CalendarUsecase exposes the blocked-date calendar.
type CalendarUsecase interface {
	// ListBlockedDates returns every override row.
	ListBlockedDates(ctx context.Context) ([]*entity.BlockedDate, error)

	// AvailableDates evaluates days dates starting at from (today when nil).
	AvailableDates(ctx context.Context, from *entity.Date, days int) (*Availability, error)

	// EnsureSelectable returns ErrDateNotAvailable when d cannot be picked today.
	EnsureSelectable(ctx context.Context, d entity.Date) error

	// SetBlockedDate creates or replaces the override for a date.
	SetBlockedDate(ctx context.Context, d entity.Date, isBlocked bool) (*entity.BlockedDate, error)

	// DeleteBlockedDate removes the override for a date.
	DeleteBlockedDate(ctx context.Context, d entity.Date) error
}
