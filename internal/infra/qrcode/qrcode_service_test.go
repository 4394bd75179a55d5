package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, size int, level string) *qrcodeService {
	t.Helper()

	svc, err := NewQRCodeService(size, level, "https://example.com/landing?utm_source=qr")
	require.NoError(t, err)

	return svc.(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
			assert.Positive(t, svc.size)
		})
	}
}

func TestNewQRCodeService_InvalidBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "/landing", "://bad"} {
		svc, err := NewQRCodeService(256, "M", baseURL)
		assert.Error(t, err, baseURL)
		assert.Nil(t, svc)
	}
}

func TestQRCodeService_GenerateReferralQR(t *testing.T) {
	svc := newTestService(t, 256, "M")

	qrBytes, err := svc.GenerateReferralQR("ab12")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateReferralQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.size, "M")

			qrBytes, err := svc.GenerateReferralQR("AB12")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateReferralQR_EmptyCode(t *testing.T) {
	svc := newTestService(t, 256, "M")

	_, err := svc.GenerateReferralQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_ReferralURL(t *testing.T) {
	svc := newTestService(t, 256, "M")

	assert.Equal(t, "https://example.com/landing?ref=AB12&utm_source=qr", svc.ReferralURL("AB12"))
	// base URL is not mutated between calls
	assert.Equal(t, "https://example.com/landing?ref=CD34&utm_source=qr", svc.ReferralURL("CD34"))
}
