package impl

import (
	"context"
	"log/slog"

	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/phone"
	"funnel/internal/domain/repository"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
)

type lookupService struct {
	inquiryRepo repository.InquiryRepository
	logger      *slog.Logger
}

// NewLookupService creates a new lookup service instance
func NewLookupService(inquiryRepo repository.InquiryRepository, logger *slog.Logger) usecase.LookupUsecase {
	return &lookupService{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

// FindByPhone normalizes the number and returns the newest inquiry, or nil when none exists
func (srv *lookupService) FindByPhone(ctx context.Context, phoneNumber string) (*entity.Inquiry, error) {
	if !phone.IsValid(phoneNumber) {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{
			Field:   "phone",
			Message: "올바른 전화번호를 입력해주세요.",
		})
	}

	inquiry, err := srv.inquiryRepo.FindLatestByPhone(ctx, phone.Normalize(phoneNumber))
	if errors.Is(err, repository.ErrInquiryNotFound) {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("No inquiry for phone",
			slog.String("phone", phone.Mask(phoneNumber)),
		)

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inquiry by phone")
	}

	return inquiry, nil
}
