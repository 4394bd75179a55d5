package impl

import (
	"context"
	"testing"
	"time"

	"funnel/internal/domain/calendar"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	mockRepo "funnel/internal/mocks/repository"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCalendarService(t *testing.T) (usecase.CalendarUsecase, *mockRepo.MockBlockedDateRepository) {
	blockedDateRepo := mockRepo.NewMockBlockedDateRepository(t)

	return NewCalendarService(blockedDateRepo, newTestCalendar(), newFixedClock(), newDiscardLogger()), blockedDateRepo
}

func TestCalendarService_AvailableDates_DefaultWindow(t *testing.T) {
	srv, blockedDateRepo := createTestCalendarService(t)
	ctx := context.Background()

	today := entity.NewDate(2024, time.January, 10)
	blockedDateRepo.EXPECT().
		FindBetween(ctx, today, today.AddDays(30)).
		Return([]*entity.BlockedDate{
			{Date: today.AddDays(1), IsBlocked: false},
			{Date: today.AddDays(5), IsBlocked: true},
		}, nil)

	availability, err := srv.AvailableDates(ctx, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, today, availability.Today)
	assert.Equal(t, entity.NewDate(2024, time.January, 13), availability.MinDate)
	require.Len(t, availability.Days, 31)

	assert.False(t, availability.Days[0].Available)
	assert.Equal(t, calendar.ReasonLeadTime, availability.Days[0].Reason)
	assert.True(t, availability.Days[1].Available)
	assert.Equal(t, calendar.ReasonOpenedOverride, availability.Days[1].Reason)
	assert.True(t, availability.Days[3].Available)
	assert.False(t, availability.Days[5].Available)
	assert.Equal(t, calendar.ReasonBlocked, availability.Days[5].Reason)
}

func TestCalendarService_AvailableDates_InvalidRange(t *testing.T) {
	srv, _ := createTestCalendarService(t)

	for _, days := range []int{-1, 63} {
		_, err := srv.AvailableDates(context.Background(), nil, days)
		require.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
	}
}

func TestCalendarService_EnsureSelectable(t *testing.T) {
	tests := []struct {
		name    string
		date    entity.Date
		row     *entity.BlockedDate
		repoErr error
		wantErr error
	}{
		{
			name:    "inside lead time without override",
			date:    entity.NewDate(2024, time.January, 11),
			repoErr: repository.ErrBlockedDateNotFound,
			wantErr: domainerrors.ErrDateNotAvailable,
		},
		{
			name: "inside lead time opened by override",
			date: entity.NewDate(2024, time.January, 11),
			row:  &entity.BlockedDate{Date: entity.NewDate(2024, time.January, 11), IsBlocked: false},
		},
		{
			name:    "after lead time without override",
			date:    entity.NewDate(2024, time.January, 13),
			repoErr: repository.ErrBlockedDateNotFound,
		},
		{
			name:    "after lead time blocked",
			date:    entity.NewDate(2024, time.January, 20),
			row:     &entity.BlockedDate{Date: entity.NewDate(2024, time.January, 20), IsBlocked: true},
			wantErr: domainerrors.ErrDateNotAvailable,
		},
		{
			name:    "past date even when opened",
			date:    entity.NewDate(2024, time.January, 9),
			row:     &entity.BlockedDate{Date: entity.NewDate(2024, time.January, 9), IsBlocked: false},
			wantErr: domainerrors.ErrDateNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, blockedDateRepo := createTestCalendarService(t)
			ctx := context.Background()

			blockedDateRepo.EXPECT().FindByDate(ctx, tt.date).Return(tt.row, tt.repoErr)

			err := srv.EnsureSelectable(ctx, tt.date)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCalendarService_EnsureSelectable_RepositoryError(t *testing.T) {
	srv, blockedDateRepo := createTestCalendarService(t)
	ctx := context.Background()
	d := entity.NewDate(2024, time.January, 20)

	blockedDateRepo.EXPECT().FindByDate(ctx, d).Return(nil, errors.New("connection refused"))

	err := srv.EnsureSelectable(ctx, d)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrDateNotAvailable)
}

func TestCalendarService_SetBlockedDate(t *testing.T) {
	srv, blockedDateRepo := createTestCalendarService(t)
	ctx := context.Background()
	d := entity.NewDate(2024, time.February, 1)

	blockedDateRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(row *entity.BlockedDate) bool {
			return row.Date == d && row.IsBlocked
		})).
		Return(nil)

	row, err := srv.SetBlockedDate(ctx, d, true)
	require.NoError(t, err)
	assert.True(t, row.IsBlocked)

	_, err = srv.SetBlockedDate(ctx, entity.Date{}, true)
	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("date"))
}

func TestCalendarService_DeleteBlockedDate_NotFound(t *testing.T) {
	srv, blockedDateRepo := createTestCalendarService(t)
	ctx := context.Background()
	d := entity.NewDate(2024, time.February, 1)

	blockedDateRepo.EXPECT().Delete(ctx, d).Return(repository.ErrBlockedDateNotFound)

	err := srv.DeleteBlockedDate(ctx, d)
	require.ErrorIs(t, err, domainerrors.ErrBlockedDateNotFound)
}
