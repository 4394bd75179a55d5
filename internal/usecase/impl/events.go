package impl

import (
	"context"
	"log/slog"

	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/constants"
	"funnel/internal/domain/entity"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/service"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// eventEmitter publishes inquiry events through the side-effect runner.
type eventEmitter struct {
	publisher   service.EventPublisher
	partnerRepo repository.PartnerRepository
	sideEffects usecase.SideEffectRunner
	clock       service.Clock
}

// emit publishes asynchronously; the caller never observes a failure.
func (e *eventEmitter) emit(ctx context.Context, eventType string, inquiry *entity.Inquiry, previous entity.InquiryStatus) {
	snapshot := inquiry.Clone()
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	e.sideEffects.Go(ctx, constants.SideEffectEvent, func(ctx context.Context) error {
		event := newInquiryEvent(eventType, snapshot, previous, e.clock)
		event.RequestID = requestID

		if err := e.attachPartner(ctx, event); err != nil {
			// Publishing without the partner still reaches the admins.
			deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).WarnContext(ctx, "Failed to resolve partner",
				slog.String("marketer_code", event.MarketerCode),
				slog.Any("error", err),
			)
		}

		return errors.Wrap(e.publisher.PublishInquiryEvent(ctx, event), "publish inquiry event")
	})
}

func (e *eventEmitter) attachPartner(ctx context.Context, event *service.InquiryEvent) error {
	if event.MarketerCode == "" || e.partnerRepo == nil {
		return nil
	}

	partner, err := e.partnerRepo.FindByCode(ctx, event.MarketerCode)
	if errors.Is(err, repository.ErrPartnerNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if partner.IsActive {
		event.PartnerCode = partner.Code
		event.PartnerName = partner.Name
	}

	return nil
}

func newInquiryEvent(eventType string, inquiry *entity.Inquiry, previous entity.InquiryStatus, clock service.Clock) *service.InquiryEvent {
	event := &service.InquiryEvent{
		EventID:         uuid.New().String(),
		Type:            eventType,
		InquiryID:       inquiry.ID.String(),
		InquiryType:     string(inquiry.InquiryType),
		Status:          string(inquiry.Status),
		PhoneNumber:     inquiry.PhoneNumber,
		InstallLocation: inquiry.InstallLocation,
		InstallCount:    inquiry.InstallCount,
		OccurredAt:      clock.Now(),
	}
	if previous != "" && previous != inquiry.Status {
		event.PreviousStatus = string(previous)
	}
	if inquiry.MarketerCode != nil {
		event.MarketerCode = *inquiry.MarketerCode
	}
	if inquiry.ReservationDate != nil {
		event.ReservationDate = inquiry.ReservationDate.String()
	}
	if inquiry.ReservationTimeSlot != nil {
		event.TimeSlot = string(*inquiry.ReservationTimeSlot)
	}

	return event
}
