package usecase

import (
	"context"

	"funnel/internal/domain/entity"
	"funnel/internal/domain/reservation"
)

// ReservationUsecase reads and advances an existing inquiry through the reservation steps.
type ReservationUsecase interface {
	// GetReservation returns the inquiry with the given id.
	GetReservation(ctx context.Context, rawID string) (*entity.Inquiry, error)

	// UpdateReservation applies a partial update and returns the updated inquiry.
	UpdateReservation(ctx context.Context, rawID string, patch *reservation.Patch) (*entity.Inquiry, error)
}
