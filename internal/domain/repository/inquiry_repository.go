// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"funnel/internal/domain/entity"
	"funnel/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for inquiry persistence.
var (
	// ErrInquiryNotFound is returned when an inquiry is not found.
	ErrInquiryNotFound = errors.New("inquiry not found")
	// ErrVersionConflict is returned when a row changed between read and write.
	ErrVersionConflict = errors.New("inquiry version conflict")
)

// InquiryFilter narrows an inquiry listing. Zero values are not applied.
type InquiryFilter struct {
	Status       entity.InquiryStatus
	MarketerCode string
	PhoneNumber  string // Normalized digits.
	Limit        int
	Offset       int
}

// InquiryRepository defines the interface for inquiry-related database operations.
type InquiryRepository interface {
	// Create persists a new inquiry and fills in generated values (ID, timestamps, version).
	Create(ctx context.Context, inquiry *entity.Inquiry) error

	// FindByID retrieves an inquiry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)

	// FindByIDForUpdate retrieves an inquiry and locks its row until the surrounding
	// transaction ends. Must be called through a RepositoryFactory.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)

	// ApplyChanges writes only the changed columns. Documents are merged into the stored
	// mapping by the database; version must match the stored version.
	ApplyChanges(ctx context.Context, id uuid.UUID, version int64, changes *reservation.Changes) error

	// FindLatestByPhone returns the most recently created inquiry for a phone number.
	FindLatestByPhone(ctx context.Context, phoneNumber string) (*entity.Inquiry, error)

	// List returns a page of inquiries, newest first, and the total matching count.
	List(ctx context.Context, filter InquiryFilter) ([]*entity.Inquiry, int64, error)
}
