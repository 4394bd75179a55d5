package submission

import (
	"testing"
	"time"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFields(t *testing.T, err error, fields ...string) {
	t.Helper()

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, f := range fields {
		assert.Truef(t, verr.HasField(f), "expected failing field %q, got %v", f, verr.Fields())
	}
}

func TestParse_Legacy(t *testing.T) {
	t.Parallel()

	v := NewValidator(99)

	sub, err := v.Parse([]byte(`{
		"phoneNumber": "010-1234-5678",
		"installLocation": " 서울 강남구 ",
		"installCount": 2,
		"privacyConsent": true,
		"marketerCode": " ab12 ",
		"referrerUrl": "https://blog.example.com/post"
	}`))
	require.NoError(t, err)
	require.NotNil(t, sub.Legacy)
	assert.Nil(t, sub.Unified)
	assert.Equal(t, KindLegacy, sub.Kind)
	assert.Equal(t, "01012345678", sub.PhoneNumber())
	assert.Equal(t, "서울 강남구", sub.Legacy.InstallLocation)
	require.NotNil(t, sub.MarketerCode())
	assert.Equal(t, "AB12", *sub.MarketerCode())
	assert.False(t, sub.IsInstallation())
	assert.Equal(t, "010-1234-5678", sub.Raw["phoneNumber"])
}

func TestParse_LegacyLargeInstallCount(t *testing.T) {
	t.Parallel()

	sub, err := NewValidator(99).Parse([]byte(`{
		"phoneNumber": "01012345678",
		"installLocation": "물류센터",
		"installCount": 1500,
		"privacyConsent": true
	}`))
	require.NoError(t, err)
	require.NotNil(t, sub.Legacy.InstallCount)
	assert.Equal(t, 1500, *sub.Legacy.InstallCount)
}

func TestParse_UnifiedSubmittedWithoutDocuments(t *testing.T) {
	t.Parallel()

	sub, err := NewValidator(99).Parse([]byte(`{
		"inquiryType": "installation",
		"phoneNumber": "01012345678",
		"privacyConsent": true,
		"reservationDate": "2024-02-01",
		"reservationTimeSlot": "afternoon",
		"address": "서울 강남구 테헤란로 1",
		"outdoorCount": 1,
		"documentsSubmitted": true
	}`))
	require.NoError(t, err)
	assert.True(t, sub.Unified.DocumentsSubmitted)
	assert.Empty(t, sub.Unified.DocumentMap())
}

func TestParse_LegacyRejections(t *testing.T) {
	t.Parallel()

	v := NewValidator(99)

	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{
			name:   "missing everything",
			body:   `{}`,
			fields: []string{"phoneNumber", "installLocation", "installCount", "privacyConsent"},
		},
		{
			name:   "consent false",
			body:   `{"phoneNumber":"01012345678","installLocation":"x","installCount":1,"privacyConsent":false}`,
			fields: []string{"privacyConsent"},
		},
		{
			name:   "zero count",
			body:   `{"phoneNumber":"01012345678","installLocation":"x","installCount":0,"privacyConsent":true}`,
			fields: []string{"installCount"},
		},
		{
			name:   "bad phone",
			body:   `{"phoneNumber":"080-123-4567","installLocation":"x","installCount":1,"privacyConsent":true}`,
			fields: []string{"phoneNumber"},
		},
		{
			name:   "bad marketer code",
			body:   `{"phoneNumber":"01012345678","installLocation":"x","installCount":1,"privacyConsent":true,"marketerCode":"AB-12"}`,
			fields: []string{"marketerCode"},
		},
		{
			name:   "wrong type",
			body:   `{"phoneNumber":"01012345678","installLocation":"x","installCount":"two","privacyConsent":true}`,
			fields: []string{"installCount"},
		},
		{
			name:   "not json",
			body:   `phone=010`,
			fields: []string{"body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub, err := v.Parse([]byte(tt.body))
			assert.Nil(t, sub)
			requireFields(t, err, tt.fields...)
		})
	}
}

func TestParse_UnifiedConsultation(t *testing.T) {
	t.Parallel()

	sub, err := NewValidator(99).Parse([]byte(`{"inquiryType":"consultation","phoneNumber":"01012345678","privacyConsent":true}`))
	require.NoError(t, err)
	assert.Equal(t, KindUnified, sub.Kind)
	require.NotNil(t, sub.Unified)
	assert.False(t, sub.IsInstallation())
	assert.Nil(t, sub.Unified.InstallLocation)
	assert.Nil(t, sub.Unified.InstallCount)
}

func TestParse_UnifiedInstallation(t *testing.T) {
	t.Parallel()

	sub, err := NewValidator(99).Parse([]byte(`{
		"kind": "unified",
		"inquiryType": "installation",
		"phoneNumber": "02-123-4567",
		"privacyConsent": true,
		"reservationDate": "2024-02-01",
		"reservationTimeSlot": "morning",
		"address": "서울 강남구 테헤란로 1",
		"outdoorCount": 2,
		"indoorCount": 1,
		"documents": {"idCard": "https://files/id.png"},
		"documentsSubmitted": true
	}`))
	require.NoError(t, err)
	assert.True(t, sub.IsInstallation())
	assert.Equal(t, "021234567", sub.PhoneNumber())
	assert.Equal(t, entity.NewDate(2024, time.February, 1), *sub.Unified.ReservationDate)
	assert.Equal(t, entity.Documents{entity.DocumentIDCard: "https://files/id.png"}, sub.Unified.DocumentMap())
}

func TestParse_UnifiedInstallationRejections(t *testing.T) {
	t.Parallel()

	v := NewValidator(99)

	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{
			name:   "missing reservation details",
			body:   `{"inquiryType":"installation","phoneNumber":"01012345678","privacyConsent":true,"outdoorCount":1}`,
			fields: []string{"reservationDate", "reservationTimeSlot", "address"},
		},
		{
			name: "zero units",
			body: `{"inquiryType":"installation","phoneNumber":"01012345678","privacyConsent":true,
				"reservationDate":"2024-02-01","reservationTimeSlot":"morning","address":"x"}`,
			fields: []string{"outdoorCount"},
		},
		{
			name: "count above cap",
			body: `{"inquiryType":"installation","phoneNumber":"01012345678","privacyConsent":true,
				"reservationDate":"2024-02-01","reservationTimeSlot":"morning","address":"x","indoorCount":100}`,
			fields: []string{"indoorCount"},
		},
		{
			name: "blank address",
			body: `{"inquiryType":"installation","phoneNumber":"01012345678","privacyConsent":true,
				"reservationDate":"2024-02-01","reservationTimeSlot":"evening","address":"  ","outdoorCount":1}`,
			fields: []string{"address", "reservationTimeSlot"},
		},
		{
			name: "unknown document kind",
			body: `{"inquiryType":"installation","phoneNumber":"01012345678","privacyConsent":true,
				"reservationDate":"2024-02-01","reservationTimeSlot":"morning","address":"x","outdoorCount":1,
				"documentsSubmitted":true,"documents":{"passport":"x"}}`,
			fields: []string{"documents.passport"},
		},
		{
			name:   "unknown inquiry type",
			body:   `{"inquiryType":"repair","phoneNumber":"01012345678","privacyConsent":true}`,
			fields: []string{"inquiryType"},
		},
		{
			name:   "unknown kind",
			body:   `{"kind":"v3","phoneNumber":"01012345678","privacyConsent":true}`,
			fields: []string{"kind"},
		},
		{
			name:   "unified kind without inquiry type",
			body:   `{"kind":"unified","phoneNumber":"01012345678","privacyConsent":true}`,
			fields: []string{"inquiryType"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := v.Parse([]byte(tt.body))
			requireFields(t, err, tt.fields...)
		})
	}
}

func TestParse_NullInquiryTypeIsLegacy(t *testing.T) {
	t.Parallel()

	_, err := NewValidator(99).Parse([]byte(`{"inquiryType":null,"phoneNumber":"01012345678","privacyConsent":true}`))
	requireFields(t, err, "installLocation", "installCount")
}

func TestValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	type lookup struct {
		Phone string `json:"phone" validate:"required,krphone"`
	}

	v := NewValidator(0)
	assert.Equal(t, 99, v.MaxUnitCount())
	require.NoError(t, v.Validate(&lookup{Phone: "010 1234 5678"}))
	requireFields(t, v.Validate(&lookup{Phone: "12345"}), "phone")
}
