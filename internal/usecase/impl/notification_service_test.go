package impl

import (
	"context"
	"strings"
	"testing"

	"funnel/internal/domain/entity"
	"funnel/internal/domain/service"
	mockSvc "funnel/internal/mocks/service"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockSvc.MockNotificationService) {
	notificationSvc := mockSvc.NewMockNotificationService(t)

	return NewNotificationService(newDiscardLogger(), notificationSvc), notificationSvc
}

func TestNotificationService_HandleInquiryEvent_AdminOnly(t *testing.T) {
	srv, notificationSvc := createTestNotificationService(t)
	ctx := context.Background()

	event := &service.InquiryEvent{
		EventID:         "evt-1",
		Type:            service.EventInquirySubmitted,
		InquiryID:       "inq-1",
		InquiryType:     "consultation",
		Status:          "new",
		PhoneNumber:     "01012345678",
		MarketerCode:    "AB12",
		InstallLocation: "서울 강남구",
	}

	notificationSvc.EXPECT().
		SendTopicNotification(ctx, entity.AdminTopic, "새 상담 신청", "010-****-5678 고객 · 서울 강남구",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["inquiry_id"] == "inq-1" && data["type"] == service.EventInquirySubmitted
			})).
		Return(nil)

	require.NoError(t, srv.HandleInquiryEvent(ctx, event))
}

func TestNotificationService_HandleInquiryEvent_PartnerTopic(t *testing.T) {
	srv, notificationSvc := createTestNotificationService(t)
	ctx := context.Background()

	event := &service.InquiryEvent{
		Type:            service.EventInquirySubmitted,
		InquiryType:     "installation",
		PhoneNumber:     "01012345678",
		PartnerCode:     "AB12",
		ReservationDate: "2024-02-01",
		TimeSlot:        "morning",
		InstallCount:    3,
	}

	body := "010-****-5678 고객 · 2024-02-01 오전 · 3대"
	notificationSvc.EXPECT().SendTopicNotification(ctx, entity.AdminTopic, "새 설치 예약", body, mock.Anything).Return(nil)
	notificationSvc.EXPECT().SendTopicNotification(ctx, "partner-AB12", "새 설치 예약", body, mock.Anything).Return(nil)

	require.NoError(t, srv.HandleInquiryEvent(ctx, event))
}

func TestNotificationService_HandleInquiryEvent_StatusChangeBody(t *testing.T) {
	srv, notificationSvc := createTestNotificationService(t)
	ctx := context.Background()

	event := &service.InquiryEvent{
		Type:           service.EventReservationUpdated,
		PhoneNumber:    "0212345678",
		Status:         "documents_submitted",
		PreviousStatus: "scheduled",
	}

	notificationSvc.EXPECT().
		SendTopicNotification(ctx, entity.AdminTopic, "예약 진행 상태 변경", "02-****-5678 고객 · scheduled → documents_submitted", mock.Anything).
		Return(nil)

	require.NoError(t, srv.HandleInquiryEvent(ctx, event))
}

func TestNotificationService_HandleInquiryEvent_AttemptsEveryTopic(t *testing.T) {
	srv, notificationSvc := createTestNotificationService(t)
	ctx := context.Background()

	event := &service.InquiryEvent{
		Type:        service.EventReservationComplete,
		PhoneNumber: "01012345678",
		PartnerCode: "AB12",
	}

	notificationSvc.EXPECT().
		SendTopicNotification(ctx, entity.AdminTopic, "예약 확정", mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))
	notificationSvc.EXPECT().
		SendTopicNotification(ctx, "partner-AB12", "예약 확정", mock.Anything, mock.Anything).
		Return(nil)

	err := srv.HandleInquiryEvent(ctx, event)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "send to admin"))
}

func TestNotificationService_HandleInquiryEvent_Nil(t *testing.T) {
	srv, _ := createTestNotificationService(t)

	require.NoError(t, srv.HandleInquiryEvent(context.Background(), nil))
}
