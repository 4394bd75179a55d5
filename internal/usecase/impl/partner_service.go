package impl

import (
	"context"
	"log/slog"

	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/phone"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/service"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
)

type partnerService struct {
	inquiryRepo repository.InquiryRepository
	partnerRepo repository.PartnerRepository
	qrCodeSvc   service.QRCodeService
	logger      *slog.Logger
}

// NewPartnerService creates a new partner service instance
func NewPartnerService(
	inquiryRepo repository.InquiryRepository,
	partnerRepo repository.PartnerRepository,
	qrCodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.PartnerUsecase {
	return &partnerService{
		inquiryRepo: inquiryRepo,
		partnerRepo: partnerRepo,
		qrCodeSvc:   qrCodeSvc,
		logger:      logger,
	}
}

func requirePartner(operator *entity.Operator) error {
	if operator == nil || !operator.Roles.Contains(entity.RolePartner) || operator.MarketerCode == "" {
		return domainerrors.ErrForbidden
	}

	return nil
}

// ListInquiries returns the inquiries attributed to the partner with masked phone numbers
func (srv *partnerService) ListInquiries(ctx context.Context, operator *entity.Operator, limit, offset int) (*usecase.InquiryPage, error) {
	if err := requirePartner(operator); err != nil {
		return nil, err
	}

	filter := repository.InquiryFilter{MarketerCode: operator.MarketerCode}
	filter.Limit, filter.Offset = pageBounds(limit, offset)

	page, err := listPage(ctx, srv.inquiryRepo, filter)
	if err != nil {
		return nil, err
	}

	masked := make([]*entity.Inquiry, 0, len(page.Items))
	for _, item := range page.Items {
		c := item.Clone()
		c.PhoneNumber = phone.Mask(c.PhoneNumber)
		masked = append(masked, c)
	}
	page.Items = masked

	return page, nil
}

// ReferralQR renders the referral landing URL of an active partner
func (srv *partnerService) ReferralQR(ctx context.Context, operator *entity.Operator) ([]byte, error) {
	if err := requirePartner(operator); err != nil {
		return nil, err
	}

	partner, err := srv.partnerRepo.FindByCode(ctx, operator.MarketerCode)
	if errors.Is(err, repository.ErrPartnerNotFound) {
		return nil, domainerrors.ErrPartnerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find partner")
	}
	if !partner.IsActive {
		return nil, domainerrors.ErrForbidden
	}

	png, err := srv.qrCodeSvc.GenerateReferralQR(partner.Code)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to generate referral QR code",
			slog.String("code", partner.Code),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return png, nil
}
