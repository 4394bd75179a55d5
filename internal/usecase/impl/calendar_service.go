package impl

import (
	"context"
	"log/slog"

	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/calendar"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/service"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultAvailabilityDays = 31
	maxAvailabilityDays     = 62
)

type calendarService struct {
	blockedDateRepo repository.BlockedDateRepository
	calendar        calendar.Calendar
	clock           service.Clock
	logger          *slog.Logger
}

// NewCalendarService creates a new calendar service instance
func NewCalendarService(
	blockedDateRepo repository.BlockedDateRepository,
	cal calendar.Calendar,
	clock service.Clock,
	logger *slog.Logger,
) usecase.CalendarUsecase {
	return &calendarService{
		blockedDateRepo: blockedDateRepo,
		calendar:        cal,
		clock:           clock,
		logger:          logger,
	}
}

func (srv *calendarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *calendarService) today() entity.Date {
	return srv.calendar.Today(srv.clock.Now())
}

// ListBlockedDates returns every override row
func (srv *calendarService) ListBlockedDates(ctx context.Context) ([]*entity.BlockedDate, error) {
	rows, err := srv.blockedDateRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blocked dates")
	}

	return rows, nil
}

// AvailableDates evaluates a window of dates
func (srv *calendarService) AvailableDates(ctx context.Context, from *entity.Date, days int) (*usecase.Availability, error) {
	if days == 0 {
		days = defaultAvailabilityDays
	}
	if days < 0 || days > maxAvailabilityDays {
		return nil, domainerrors.ErrInvalidDateRange
	}

	today := srv.today()
	start := today
	if from != nil && !from.IsZero() {
		start = *from
	}

	rows, err := srv.blockedDateRepo.FindBetween(ctx, start, start.AddDays(days-1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load blocked dates")
	}

	return &usecase.Availability{
		Today:   today,
		MinDate: srv.calendar.MinDate(today),
		Days:    srv.calendar.Range(start, days, today, calendar.OverridesFrom(rows)),
	}, nil
}

// EnsureSelectable rejects a date the calendar does not allow today
func (srv *calendarService) EnsureSelectable(ctx context.Context, d entity.Date) error {
	overrides := calendar.Overrides{}

	row, err := srv.blockedDateRepo.FindByDate(ctx, d)
	switch {
	case err == nil:
		overrides[row.Date] = row.IsBlocked
	case errors.Is(err, repository.ErrBlockedDateNotFound):
	default:
		return errors.Wrap(err, "failed to load blocked date")
	}

	ok, reason := srv.calendar.Evaluate(d, srv.today(), overrides)
	if !ok {
		srv.log(ctx).Info("Reservation date rejected",
			slog.String("date", d.String()),
			slog.String("reason", string(reason)),
		)

		return domainerrors.ErrDateNotAvailable.WithDetails(string(reason))
	}

	return nil
}

// SetBlockedDate creates or replaces an override
func (srv *calendarService) SetBlockedDate(ctx context.Context, d entity.Date, isBlocked bool) (*entity.BlockedDate, error) {
	if d.IsZero() {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "date", Message: "날짜를 입력해주세요."})
	}

	row := &entity.BlockedDate{Date: d, IsBlocked: isBlocked}
	if err := srv.blockedDateRepo.Upsert(ctx, row); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Blocked date set", slog.String("date", d.String()), slog.Bool("is_blocked", isBlocked))

	return row, nil
}

// DeleteBlockedDate removes an override
func (srv *calendarService) DeleteBlockedDate(ctx context.Context, d entity.Date) error {
	err := srv.blockedDateRepo.Delete(ctx, d)
	if errors.Is(err, repository.ErrBlockedDateNotFound) {
		return domainerrors.ErrBlockedDateNotFound
	}
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Blocked date removed", slog.String("date", d.String()))

	return nil
}
