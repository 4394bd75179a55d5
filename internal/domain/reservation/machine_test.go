package reservation

import (
	"testing"
	"time"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newInquiry(status entity.InquiryStatus) *entity.Inquiry {
	return &entity.Inquiry{
		ID:              uuid.New(),
		PhoneNumber:     "01012345678",
		InquiryType:     entity.InquiryTypeConsultation,
		InstallLocation: "상담 요청",
		Status:          status,
		Documents:       entity.Documents{},
	}
}

func TestPlan_DocumentsMergeIsAdditive(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusScheduled)
	current.Documents = entity.Documents{entity.DocumentIDCard: "A"}

	result, err := Plan(current, &Patch{Documents: entity.Documents{entity.DocumentPaymentCard: "B"}})
	require.NoError(t, err)

	assert.Equal(t, entity.Documents{entity.DocumentIDCard: "A", entity.DocumentPaymentCard: "B"}, result.Updated.Documents)
	assert.Equal(t, entity.Documents{entity.DocumentPaymentCard: "B"}, result.Changes.Documents)
	assert.Equal(t, entity.Documents{entity.DocumentIDCard: "A"}, current.Documents, "input snapshot must not change")

	// Applying the same patch again yields the same mapping.
	again, err := Plan(result.Updated, &Patch{Documents: entity.Documents{entity.DocumentPaymentCard: "B"}})
	require.NoError(t, err)
	assert.Equal(t, result.Updated.Documents, again.Updated.Documents)
}

func TestPlan_DocumentsOverwriteSameKey(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusScheduled)
	current.Documents = entity.Documents{entity.DocumentIDCard: "A", entity.DocumentPaymentCard: "B"}

	result, err := Plan(current, &Patch{Documents: entity.Documents{entity.DocumentIDCard: "C"}})
	require.NoError(t, err)
	assert.Equal(t, entity.Documents{entity.DocumentIDCard: "C", entity.DocumentPaymentCard: "B"}, result.Updated.Documents)
}

func TestPlan_InstallCountRecomputed(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusScheduled)

	first, err := Plan(current, &Patch{OutdoorCount: ptr(2), IndoorCount: ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Updated.InstallCount)
	require.NotNil(t, first.Changes.InstallCount)
	assert.Equal(t, 3, *first.Changes.InstallCount)

	second, err := Plan(first.Updated, &Patch{IndoorCount: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Updated.OutdoorCount)
	assert.Equal(t, 3, second.Updated.IndoorCount)
	assert.Equal(t, 5, second.Updated.InstallCount)
	assert.Nil(t, second.Changes.OutdoorCount)
}

func TestPlan_TerminalGuard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status entity.InquiryStatus
		want   error
	}{
		{name: "reservation complete", status: entity.StatusReservationComplete, want: domainerrors.ErrReservationCompleted},
		{name: "contracted", status: entity.StatusContracted, want: domainerrors.ErrInquiryClosed},
		{name: "cancelled", status: entity.StatusCancelled, want: domainerrors.ErrInquiryClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			current := newInquiry(tt.status)
			result, err := Plan(current, &Patch{
				ReservationDate: ptr(entity.NewDate(2024, time.February, 1)),
				Documents:       entity.Documents{entity.DocumentIDCard: "A"},
			})
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, result)
			assert.Nil(t, current.ReservationDate)
			assert.Empty(t, current.Documents)
		})
	}
}

func TestPlan_DocumentsSubmittedWinsOverScheduled(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusNew)

	result, err := Plan(current, &Patch{
		ReservationDate:    ptr(entity.NewDate(2024, time.February, 1)),
		DocumentsSubmitted: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDocumentsSubmitted, result.Updated.Status)
	assert.True(t, result.Updated.DocumentsSubmitted)
	assert.True(t, result.StatusChanged())
	assert.Equal(t, entity.StatusNew, result.PreviousStatus)
	require.NotNil(t, result.Changes.Status)
	assert.Equal(t, entity.StatusDocumentsSubmitted, *result.Changes.Status)
	assert.True(t, result.SubmittedWithoutDocuments)
}

func TestPlan_FirstDateKeepsAdministrativeStatus(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusInProgress)

	result, err := Plan(current, &Patch{
		ReservationDate:     ptr(entity.NewDate(2024, time.February, 1)),
		ReservationTimeSlot: ptr(entity.TimeSlotAfternoon),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, result.Updated.Status)
	assert.Nil(t, result.Changes.Status)
	assert.False(t, result.StatusChanged())
	require.NotNil(t, result.Changes.ReservationDate)
	assert.True(t, result.DateChanged)
}

func TestPlan_FirstDateSchedules(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusNew)

	result, err := Plan(current, &Patch{
		ReservationDate:     ptr(entity.NewDate(2024, time.February, 1)),
		ReservationTimeSlot: ptr(entity.TimeSlotMorning),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusScheduled, result.Updated.Status)
	assert.Equal(t, entity.InquiryTypeInstallation, result.Updated.InquiryType)
	require.NotNil(t, result.Changes.InquiryType)
	assert.True(t, result.DateChanged)
}

func TestPlan_DateChangeDoesNotRegressDocumentsSubmitted(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusDocumentsSubmitted)
	current.InquiryType = entity.InquiryTypeInstallation
	current.DocumentsSubmitted = true
	current.Documents = entity.Documents{entity.DocumentIDCard: "A"}

	result, err := Plan(current, &Patch{ReservationDate: ptr(entity.NewDate(2024, time.February, 2))})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDocumentsSubmitted, result.Updated.Status)
	assert.Nil(t, result.Changes.Status)
	assert.Nil(t, result.Changes.InquiryType)
}

func TestPlan_UnchangedDateIsNotDateChange(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusScheduled)
	current.ReservationDate = ptr(entity.NewDate(2024, time.February, 1))

	result, err := Plan(current, &Patch{ReservationDate: ptr(entity.NewDate(2024, time.February, 1))})
	require.NoError(t, err)
	assert.False(t, result.DateChanged)
	assert.Nil(t, result.Changes.Status)
}

func TestPlan_DocumentsSubmittedWithStoredDocuments(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusScheduled)
	current.Documents = entity.Documents{entity.DocumentIDCard: "A"}

	result, err := Plan(current, &Patch{DocumentsSubmitted: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDocumentsSubmitted, result.Updated.Status)
	assert.False(t, result.SubmittedWithoutDocuments)
}

func TestPlan_DocumentsSubmittedFalseIgnored(t *testing.T) {
	t.Parallel()

	current := newInquiry(entity.StatusDocumentsSubmitted)
	current.DocumentsSubmitted = true
	current.Documents = entity.Documents{entity.DocumentIDCard: "A"}

	result, err := Plan(current, &Patch{DocumentsSubmitted: ptr(false)})
	require.NoError(t, err)
	assert.True(t, result.Changes.IsEmpty())
	assert.True(t, result.Updated.DocumentsSubmitted)
}

func TestPlan_AddressMirrorsInstallLocation(t *testing.T) {
	t.Parallel()

	result, err := Plan(newInquiry(entity.StatusScheduled), &Patch{
		Address:       ptr("  서울시 강남구 테헤란로 1 "),
		AddressDetail: ptr("101호"),
		Zonecode:      ptr("06236"),
	})
	require.NoError(t, err)
	assert.Equal(t, "서울시 강남구 테헤란로 1", result.Updated.InstallLocation)
	require.NotNil(t, result.Changes.InstallLocation)
	assert.Equal(t, "서울시 강남구 테헤란로 1", *result.Changes.InstallLocation)
	assert.Equal(t, "101호", *result.Updated.AddressDetail)
}

func TestPatch_Validate(t *testing.T) {
	t.Parallel()

	p := &Patch{
		ReservationTimeSlot: ptr(entity.TimeSlot("evening")),
		OutdoorCount:        ptr(-1),
		IndoorCount:         ptr(100),
		Address:             ptr("   "),
		Documents:           entity.Documents{"passport": "x", entity.DocumentIDCard: ""},
	}

	err := p.Validate(0)
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"reservationTimeSlot", "outdoorCount", "indoorCount", "address", "documents.passport", "documents.idCard"} {
		assert.Truef(t, verr.HasField(field), "expected field %s", field)
	}

	assert.NoError(t, (&Patch{}).Validate(99))
	assert.True(t, (&Patch{}).IsEmpty())
}

func TestFinalize(t *testing.T) {
	t.Parallel()

	result, err := Finalize(newInquiry(entity.StatusDocumentsSubmitted))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReservationComplete, result.Updated.Status)

	_, err = Finalize(newInquiry(entity.StatusScheduled))
	require.ErrorIs(t, err, domainerrors.ErrReservationNotReady)

	_, err = Finalize(newInquiry(entity.StatusReservationComplete))
	require.ErrorIs(t, err, domainerrors.ErrReservationCompleted)
}

func TestChangeAdminStatus(t *testing.T) {
	t.Parallel()

	result, err := ChangeAdminStatus(newInquiry(entity.StatusReservationComplete), entity.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, result.Updated.Status)

	_, err = ChangeAdminStatus(newInquiry(entity.StatusNew), entity.StatusScheduled)
	require.Error(t, err)

	_, err = ChangeAdminStatus(newInquiry(entity.StatusCancelled), entity.StatusContracted)
	require.ErrorIs(t, err, domainerrors.ErrInquiryClosed)

	same, err := ChangeAdminStatus(newInquiry(entity.StatusContracted), entity.StatusContracted)
	require.NoError(t, err)
	assert.True(t, same.Changes.IsEmpty())
}
