package impl

import (
	"context"
	"log/slog"

	"funnel/config"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/reservation"
	"funnel/internal/domain/service"
	"funnel/internal/usecase"

	"go.uber.org/fx"
)

type reservationService struct {
	txManager    repository.TransactionManager
	inquiryRepo  repository.InquiryRepository
	calendar     usecase.CalendarUsecase
	events       *eventEmitter
	metrics      service.MetricsRecorder
	maxUnitCount int
	logger       *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	InquiryRepo repository.InquiryRepository
	PartnerRepo repository.PartnerRepository
	Calendar    usecase.CalendarUsecase
	Publisher   service.EventPublisher
	SideEffects usecase.SideEffectRunner
	Metrics     service.MetricsRecorder
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReservationService creates a new reservation service instance
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		txManager:   params.TxManager,
		inquiryRepo: params.InquiryRepo,
		calendar:    params.Calendar,
		events: &eventEmitter{
			publisher:   params.Publisher,
			partnerRepo: params.PartnerRepo,
			sideEffects: params.SideEffects,
			clock:       params.Clock,
		},
		metrics:      params.Metrics,
		maxUnitCount: maxUnitCountFrom(params.Config),
		logger:       params.Logger,
	}
}

func maxUnitCountFrom(cfg *config.Config) int {
	if cfg != nil && cfg.Reservation != nil && cfg.Reservation.MaxUnitCount > 0 {
		return cfg.Reservation.MaxUnitCount
	}

	return reservation.DefaultMaxUnitCount
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetReservation returns the inquiry with the given id
func (srv *reservationService) GetReservation(ctx context.Context, rawID string) (*entity.Inquiry, error) {
	id, err := parseInquiryID(rawID)
	if err != nil {
		return nil, err
	}

	inquiry, err := srv.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapInquiryError(err)
	}

	return inquiry, nil
}

// UpdateReservation applies a partial update under a row lock. A changed date is checked
// against the calendar inside the same transaction.
func (srv *reservationService) UpdateReservation(ctx context.Context, rawID string, patch *reservation.Patch) (*entity.Inquiry, error) {
	id, err := parseInquiryID(rawID)
	if err != nil {
		return nil, err
	}
	if patch == nil {
		patch = &reservation.Patch{}
	}
	if err := patch.Validate(srv.maxUnitCount); err != nil {
		return nil, err
	}

	result, stored, err := applyLocked(ctx, srv.txManager, id,
		func(current *entity.Inquiry) (*reservation.Result, error) {
			return reservation.Plan(current, patch)
		},
		func(ctx context.Context, result *reservation.Result) error {
			if !result.DateChanged {
				return nil
			}

			return srv.calendar.EnsureSelectable(ctx, *result.Updated.ReservationDate)
		},
	)
	if err != nil {
		return nil, err
	}

	if result.SubmittedWithoutDocuments {
		srv.log(ctx).Warn("Documents marked submitted without any document reference",
			slog.String("inquiry_id", id.String()),
		)
	}

	if result.StatusChanged() {
		srv.metrics.ReservationTransition(string(stored.Status))
		srv.log(ctx).Info("Reservation advanced",
			slog.String("inquiry_id", id.String()),
			slog.String("from", string(result.PreviousStatus)),
			slog.String("to", string(stored.Status)),
		)
		srv.events.emit(ctx, service.EventReservationUpdated, stored, result.PreviousStatus)
	}

	return stored, nil
}
