package impl

import (
	"context"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type planFunc func(current *entity.Inquiry) (*reservation.Result, error)

// applyLocked locks the inquiry row, plans against the locked snapshot, runs check on
// the plan and writes only the changed columns, all in one transaction. It returns the
// plan and the stored record after the write.
func applyLocked(
	ctx context.Context,
	txManager repository.TransactionManager,
	id uuid.UUID,
	plan planFunc,
	check func(ctx context.Context, result *reservation.Result) error,
) (*reservation.Result, *entity.Inquiry, error) {
	var (
		result *reservation.Result
		stored *entity.Inquiry
	)

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		inquiryRepo := factory.NewInquiryRepository()

		current, err := inquiryRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		result, err = plan(current)
		if err != nil {
			return err
		}

		if check != nil {
			if err := check(ctx, result); err != nil {
				return err
			}
		}

		if result.Changes.IsEmpty() {
			stored = current

			return nil
		}

		if err := inquiryRepo.ApplyChanges(ctx, id, current.Version, &result.Changes); err != nil {
			return err
		}

		stored, err = inquiryRepo.FindByID(ctx, id)

		return err
	})
	if err != nil {
		return nil, nil, mapInquiryError(err)
	}

	return result, stored, nil
}

// mapInquiryError converts repository sentinels into domain errors.
func mapInquiryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInquiryNotFound):
		return domainerrors.ErrInquiryNotFound
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrConcurrentUpdate
	default:
		return err
	}
}
