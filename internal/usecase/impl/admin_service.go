package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/constants"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/phone"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/reservation"
	"funnel/internal/domain/service"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	txManager   repository.TransactionManager
	inquiryRepo repository.InquiryRepository
	events      *eventEmitter
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	InquiryRepo repository.InquiryRepository
	PartnerRepo repository.PartnerRepository
	Publisher   service.EventPublisher
	SideEffects usecase.SideEffectRunner
	Metrics     service.MetricsRecorder
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		inquiryRepo: params.InquiryRepo,
		events: &eventEmitter{
			publisher:   params.Publisher,
			partnerRepo: params.PartnerRepo,
			sideEffects: params.SideEffects,
			clock:       params.Clock,
		},
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListInquiries returns a page of inquiries, newest first
func (srv *adminService) ListInquiries(ctx context.Context, input *usecase.InquiryListInput) (*usecase.InquiryPage, error) {
	if input == nil {
		input = &usecase.InquiryListInput{}
	}

	filter := repository.InquiryFilter{
		MarketerCode: strings.ToUpper(strings.TrimSpace(input.MarketerCode)),
	}

	var fields []domainerrors.FieldError
	if input.Status != "" {
		status := entity.InquiryStatus(input.Status)
		if !status.IsValid() {
			fields = append(fields, domainerrors.FieldError{Field: "status", Message: "허용되지 않는 값입니다."})
		}
		filter.Status = status
	}
	if input.PhoneNumber != "" {
		if !phone.IsValid(input.PhoneNumber) {
			fields = append(fields, domainerrors.FieldError{Field: "phone", Message: "올바른 전화번호를 입력해주세요."})
		}
		filter.PhoneNumber = phone.Normalize(input.PhoneNumber)
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError("", fields...)
	}

	filter.Limit, filter.Offset = pageBounds(input.Limit, input.Offset)

	return listPage(ctx, srv.inquiryRepo, filter)
}

// CompleteReservation finalizes a reservation whose documents are in
func (srv *adminService) CompleteReservation(ctx context.Context, rawID string) (*entity.Inquiry, error) {
	id, err := parseInquiryID(rawID)
	if err != nil {
		return nil, err
	}

	result, stored, err := applyLocked(ctx, srv.txManager, id, reservation.Finalize, nil)
	if err != nil {
		return nil, err
	}

	srv.metrics.ReservationTransition(string(stored.Status))
	srv.log(ctx).Info("Reservation completed", slog.String("inquiry_id", id.String()))
	srv.events.emit(ctx, service.EventReservationComplete, stored, result.PreviousStatus)

	return stored, nil
}

// ChangeStatus applies an administrative status
func (srv *adminService) ChangeStatus(ctx context.Context, rawID string, status entity.InquiryStatus) (*entity.Inquiry, error) {
	id, err := parseInquiryID(rawID)
	if err != nil {
		return nil, err
	}

	result, stored, err := applyLocked(ctx, srv.txManager, id,
		func(current *entity.Inquiry) (*reservation.Result, error) {
			return reservation.ChangeAdminStatus(current, status)
		},
		nil,
	)
	if err != nil {
		return nil, err
	}

	if result.StatusChanged() {
		srv.metrics.ReservationTransition(string(stored.Status))
		srv.log(ctx).Info("Inquiry status changed",
			slog.String("inquiry_id", id.String()),
			slog.String("from", string(result.PreviousStatus)),
			slog.String("to", string(stored.Status)),
		)
		srv.events.emit(ctx, service.EventReservationUpdated, stored, result.PreviousStatus)
	}

	return stored, nil
}

// pageBounds clamps the page size and offset.
func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = constants.DefaultPageLimit
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

func listPage(ctx context.Context, repo repository.InquiryRepository, filter repository.InquiryFilter) (*usecase.InquiryPage, error) {
	items, total, err := repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}
	if items == nil {
		items = []*entity.Inquiry{}
	}

	return &usecase.InquiryPage{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}
