package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	"funnel/internal/domain/phone"
	"funnel/internal/domain/service"
	"funnel/internal/errors"
	"funnel/internal/usecase"
)

var timeSlotLabels = map[string]string{
	string(entity.TimeSlotMorning):   "오전",
	string(entity.TimeSlotAfternoon): "오후",
}

type notificationService struct {
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	logger *slog.Logger,
	notificationSvc service.NotificationService,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// HandleInquiryEvent sends the event to the admin topic and, when the inquiry is
// attributed to an active partner, to the partner topic. Every topic is attempted; the
// failures are returned joined so the message is redelivered.
func (s *notificationService) HandleInquiryEvent(ctx context.Context, event *service.InquiryEvent) error {
	if event == nil {
		return nil
	}

	log := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("event_id", event.EventID),
		slog.String("inquiry_id", event.InquiryID),
		slog.String("type", event.Type),
	)

	title := notificationTitle(event)
	body := notificationBody(event)
	data := map[string]string{
		"event_id":     event.EventID,
		"type":         event.Type,
		"inquiry_id":   event.InquiryID,
		"inquiry_type": event.InquiryType,
		"status":       event.Status,
	}

	topics := []string{entity.AdminTopic}
	if event.PartnerCode != "" {
		topics = append(topics, entity.PartnerTopic(event.PartnerCode))
	}

	var errs []error
	for _, topic := range topics {
		if err := s.notificationSvc.SendTopicNotification(ctx, topic, title, body, data); err != nil {
			log.Error("Failed to send notification", slog.String("topic", topic), slog.Any("error", err))
			errs = append(errs, errors.Wrapf(err, "send to %s", topic))

			continue
		}
		log.Info("Notification sent", slog.String("topic", topic))
	}

	return errors.Join(errs...)
}

func notificationTitle(event *service.InquiryEvent) string {
	switch event.Type {
	case service.EventInquirySubmitted:
		if event.InquiryType == string(entity.InquiryTypeInstallation) {
			return "새 설치 예약"
		}

		return "새 상담 신청"
	case service.EventReservationComplete:
		return "예약 확정"
	default:
		return "예약 진행 상태 변경"
	}
}

func notificationBody(event *service.InquiryEvent) string {
	masked := phone.Mask(event.PhoneNumber)

	switch {
	case event.Type == service.EventReservationUpdated && event.PreviousStatus != "":
		return fmt.Sprintf("%s 고객 · %s → %s", masked, event.PreviousStatus, event.Status)
	case event.ReservationDate != "":
		slot := timeSlotLabels[event.TimeSlot]
		if slot == "" {
			slot = event.TimeSlot
		}

		return fmt.Sprintf("%s 고객 · %s %s · %d대", masked, event.ReservationDate, slot, event.InstallCount)
	case event.InstallLocation != "":
		return fmt.Sprintf("%s 고객 · %s", masked, event.InstallLocation)
	default:
		return masked + " 고객"
	}
}
