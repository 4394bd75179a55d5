package impl

import (
	"context"
	"log/slog"

	"funnel/config"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/constants"
	"funnel/internal/domain/entity"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/service"
	"funnel/internal/domain/submission"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	installationAcceptedMessage = "설치 예약이 접수되었습니다. 담당자가 곧 연락드리겠습니다."
	consultationAcceptedMessage = "상담 신청이 접수되었습니다. 담당자가 곧 연락드리겠습니다."
)

// inquiryService orchestrates new submissions.
type inquiryService struct {
	inquiryRepo          repository.InquiryRepository
	calendar             usecase.CalendarUsecase
	validator            *submission.Validator
	attribution          service.AttributionLogger
	sideEffects          usecase.SideEffectRunner
	events               *eventEmitter
	metrics              service.MetricsRecorder
	clock                service.Clock
	consultationLocation string
	logger               *slog.Logger
}

// InquiryServiceParams holds dependencies for InquiryService, injected by Fx.
type InquiryServiceParams struct {
	fx.In

	InquiryRepo repository.InquiryRepository
	PartnerRepo repository.PartnerRepository
	Calendar    usecase.CalendarUsecase
	Validator   *submission.Validator
	Publisher   service.EventPublisher
	Attribution service.AttributionLogger
	SideEffects usecase.SideEffectRunner
	Metrics     service.MetricsRecorder
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService(params InquiryServiceParams) usecase.InquiryUsecase {
	location := constants.DefaultConsultationLocation
	if params.Config != nil && params.Config.Reservation != nil && params.Config.Reservation.ConsultationLocation != "" {
		location = params.Config.Reservation.ConsultationLocation
	}

	return &inquiryService{
		inquiryRepo: params.InquiryRepo,
		calendar:    params.Calendar,
		validator:   params.Validator,
		attribution: params.Attribution,
		sideEffects: params.SideEffects,
		events: &eventEmitter{
			publisher:   params.Publisher,
			partnerRepo: params.PartnerRepo,
			sideEffects: params.SideEffects,
			clock:       params.Clock,
		},
		metrics:              params.Metrics,
		clock:                params.Clock,
		consultationLocation: location,
		logger:               params.Logger,
	}
}

func (srv *inquiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates, persists and hands off side effects. Two identical submissions
// create two inquiries.
func (srv *inquiryService) Submit(ctx context.Context, body []byte) (*usecase.SubmitResult, error) {
	sub, err := srv.validator.Parse(body)
	if err != nil {
		return nil, err
	}

	if sub.IsInstallation() {
		if err := srv.calendar.EnsureSelectable(ctx, *sub.Unified.ReservationDate); err != nil {
			return nil, err
		}
	}

	inquiry := srv.buildInquiry(sub)
	if err := srv.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, errors.Wrap(err, "failed to create inquiry")
	}

	srv.metrics.InquirySubmitted(string(inquiry.InquiryType))
	srv.log(ctx).Info("Inquiry submitted",
		slog.String("inquiry_id", inquiry.ID.String()),
		slog.String("kind", string(sub.Kind)),
		slog.String("inquiry_type", string(inquiry.InquiryType)),
		slog.String("status", string(inquiry.Status)),
	)

	srv.events.emit(ctx, service.EventInquirySubmitted, inquiry, "")
	srv.logAttribution(ctx, inquiry, sub)

	message := consultationAcceptedMessage
	if inquiry.IsInstallation() {
		message = installationAcceptedMessage
	}

	return &usecase.SubmitResult{Inquiry: inquiry, Message: message}, nil
}

func (srv *inquiryService) logAttribution(ctx context.Context, inquiry *entity.Inquiry, sub *submission.Submission) {
	record := &service.AttributionRecord{
		InquiryID:   inquiry.ID.String(),
		InquiryType: string(inquiry.InquiryType),
		SubmittedAt: inquiry.SubmittedAt,
		Payload:     sub.Raw,
	}
	if inquiry.MarketerCode != nil {
		record.MarketerCode = *inquiry.MarketerCode
	}
	if inquiry.ReferrerURL != nil {
		record.ReferrerURL = *inquiry.ReferrerURL
	}

	srv.sideEffects.Go(ctx, constants.SideEffectAttribution, func(ctx context.Context) error {
		return srv.attribution.LogSubmission(ctx, record)
	})
}

// buildInquiry applies the creation defaults of each payload shape.
func (srv *inquiryService) buildInquiry(sub *submission.Submission) *entity.Inquiry {
	now := srv.clock.Now()
	inquiry := &entity.Inquiry{
		PhoneNumber:    sub.PhoneNumber(),
		MarketerCode:   sub.MarketerCode(),
		PrivacyConsent: true,
		Documents:      entity.Documents{},
		Status:         entity.StatusNew,
		SubmittedAt:    now,
	}

	switch sub.Kind {
	case submission.KindLegacy:
		p := sub.Legacy
		inquiry.InquiryType = entity.InquiryTypeConsultation
		inquiry.InstallLocation = p.InstallLocation
		inquiry.InstallCount = *p.InstallCount
		inquiry.ReferrerURL = p.ReferrerURL
		inquiry.LandingTemplate = p.LandingTemplate
		inquiry.LandingSubtype = p.LandingSubtype
		if p.SubmittedAt != nil && !p.SubmittedAt.IsZero() {
			inquiry.SubmittedAt = *p.SubmittedAt
		}
	case submission.KindUnified:
		p := sub.Unified
		inquiry.ReferrerURL = p.ReferrerURL
		inquiry.LandingTemplate = p.LandingTemplate
		inquiry.LandingSubtype = p.LandingSubtype
		inquiry.Address = p.Address
		inquiry.AddressDetail = p.AddressDetail
		inquiry.Zonecode = p.Zonecode
		inquiry.OutdoorCount = deref(p.OutdoorCount)
		inquiry.IndoorCount = deref(p.IndoorCount)

		if p.IsInstallation() {
			slot := entity.TimeSlot(*p.ReservationTimeSlot)
			inquiry.InquiryType = entity.InquiryTypeInstallation
			inquiry.InstallLocation = *p.Address
			inquiry.InstallCount = inquiry.OutdoorCount + inquiry.IndoorCount
			inquiry.ReservationDate = p.ReservationDate
			inquiry.ReservationTimeSlot = &slot
			inquiry.Documents = p.DocumentMap()
			if p.DocumentsSubmitted {
				inquiry.DocumentsSubmitted = true
				inquiry.Status = entity.StatusDocumentsSubmitted
			}

			break
		}

		inquiry.InquiryType = entity.InquiryTypeConsultation
		inquiry.InstallLocation = srv.consultationLocation
		if p.InstallLocation != nil {
			inquiry.InstallLocation = *p.InstallLocation
		}
		inquiry.InstallCount = deref(p.InstallCount)
	}

	return inquiry
}

func deref(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}
