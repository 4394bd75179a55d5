package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Reservation)
	assert.Equal(t, 3, cfg.Reservation.LeadTimeDays)
	assert.Equal(t, 99, cfg.Reservation.MaxUnitCount)
	assert.Equal(t, "상담 요청", cfg.Reservation.ConsultationLocation)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxUploadBytes)
	assert.Contains(t, cfg.Storage.AllowedContentTypes, "application/pdf")
	require.NotNil(t, cfg.SideEffects)
	assert.Equal(t, 10*time.Second, cfg.SideEffects.Timeout)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Reservation: &ReservationConfig{LeadTimeDays: 5, MaxUnitCount: 20, ConsultationLocation: "방문 상담"},
		SideEffects: &SideEffectsConfig{Timeout: time.Second},
	}
	applyDefaults(cfg)

	assert.Equal(t, 5, cfg.Reservation.LeadTimeDays)
	assert.Equal(t, 20, cfg.Reservation.MaxUnitCount)
	assert.Equal(t, "방문 상담", cfg.Reservation.ConsultationLocation)
	assert.Equal(t, time.Second, cfg.SideEffects.Timeout)
}

func TestReservationConfig_Location(t *testing.T) {
	var nilCfg *ReservationConfig
	assert.Equal(t, time.UTC, nilCfg.Location())
	assert.Equal(t, time.UTC, (&ReservationConfig{Timezone: "Not/AZone"}).Location())
}
