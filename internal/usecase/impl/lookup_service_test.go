package impl

import (
	"context"
	"testing"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	mockRepo "funnel/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupService_FindByPhone(t *testing.T) {
	inquiryRepo := mockRepo.NewMockInquiryRepository(t)
	srv := NewLookupService(inquiryRepo, newDiscardLogger())
	ctx := context.Background()

	stored := newStoredInquiry(entity.StatusScheduled)
	inquiryRepo.EXPECT().FindLatestByPhone(ctx, "01012345678").Return(stored, nil)

	got, err := srv.FindByPhone(ctx, "010-1234-5678")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestLookupService_FindByPhone_NotFoundIsEmpty(t *testing.T) {
	inquiryRepo := mockRepo.NewMockInquiryRepository(t)
	srv := NewLookupService(inquiryRepo, newDiscardLogger())
	ctx := context.Background()

	inquiryRepo.EXPECT().FindLatestByPhone(ctx, "0212345678").Return(nil, repository.ErrInquiryNotFound)

	got, err := srv.FindByPhone(ctx, "02 1234 5678")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLookupService_FindByPhone_InvalidPhone(t *testing.T) {
	srv := NewLookupService(mockRepo.NewMockInquiryRepository(t), newDiscardLogger())

	for _, raw := range []string{"", "12345", "080-1234-5678", "010-1234-56789"} {
		_, err := srv.FindByPhone(context.Background(), raw)

		var verr *domainerrors.ValidationError
		require.ErrorAs(t, err, &verr, raw)
		assert.True(t, verr.HasField("phone"))
	}
}

func TestLookupService_FindByPhone_RepositoryError(t *testing.T) {
	inquiryRepo := mockRepo.NewMockInquiryRepository(t)
	srv := NewLookupService(inquiryRepo, newDiscardLogger())
	ctx := context.Background()

	inquiryRepo.EXPECT().FindLatestByPhone(ctx, "01012345678").Return(nil, errors.New("timeout"))

	_, err := srv.FindByPhone(ctx, "01012345678")
	require.Error(t, err)
}
