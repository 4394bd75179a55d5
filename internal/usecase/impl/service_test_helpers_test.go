package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"funnel/config"
	"funnel/internal/domain/calendar"
	"funnel/internal/domain/entity"
	"funnel/internal/domain/repository"
	mockRepo "funnel/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var kst = time.FixedZone("KST", 9*60*60)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Reservation: &config.ReservationConfig{
			LeadTimeDays:         3,
			MaxUnitCount:         99,
			ConsultationLocation: "상담 요청",
		},
	}
}

func newTestCalendar() calendar.Calendar {
	return calendar.New(3, kst)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// testNow is 2024-01-10 10:00 KST.
func newFixedClock() fixedClock {
	return fixedClock{now: time.Date(2024, time.January, 10, 10, 0, 0, 0, kst)}
}

// syncRunner runs side effects inline and remembers which ones failed.
type syncRunner struct {
	mu     sync.Mutex
	ran    []string
	failed []string
}

func (r *syncRunner) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	err := fn(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ran = append(r.ran, name)
	if err != nil {
		r.failed = append(r.failed, name)
	}
}

// expectTx makes the transaction manager run its callback against inquiryRepo.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, inquiryRepo repository.InquiryRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewInquiryRepository().Return(inquiryRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func ptr[T any](v T) *T { return &v }

func newStoredInquiry(status entity.InquiryStatus) *entity.Inquiry {
	return &entity.Inquiry{
		ID:              uuid.New(),
		PhoneNumber:     "01012345678",
		InquiryType:     entity.InquiryTypeConsultation,
		InstallLocation: "상담 요청",
		InstallCount:    1,
		Documents:       entity.Documents{},
		Status:          status,
		Version:         1,
	}
}
