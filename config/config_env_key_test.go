package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"reservation": map[string]any{
			"timezone":             "Asia/Seoul",
			"leadTimeDays":         3,
			"maxUnitCount":         99,
			"consultationLocation": "상담 요청",
		},
		"storage": map[string]any{
			"bucketUrl":           "mem://",
			"publicBaseUrl":       "",
			"maxUploadBytes":      10485760,
			"allowedContentTypes": []any{"image/png"},
		},
		"pubsub": map[string]any{
			"topicId":      "",
			"pushAudience": "",
		},
		"sideEffects": map[string]any{
			"timeout": "10s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "RESERVATION_TIMEZONE", want: "reservation.timezone"},
		{envKey: "RESERVATION_LEADTIMEDAYS", want: "reservation.leadTimeDays"},
		{envKey: "RESERVATION_MAXUNITCOUNT", want: "reservation.maxUnitCount"},
		{envKey: "RESERVATION_CONSULTATIONLOCATION", want: "reservation.consultationLocation"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "STORAGE_MAXUPLOADBYTES", want: "storage.maxUploadBytes"},
		{envKey: "STORAGE_ALLOWEDCONTENTTYPES", want: "storage.allowedContentTypes"},
		{envKey: "PUBSUB_PUSHAUDIENCE", want: "pubsub.pushAudience"},
		{envKey: "SIDEEFFECTS_TIMEOUT", want: "sideEffects.timeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesFunnelSections(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
reservation:
  timezone: Asia/Seoul
  leadTimeDays: 3
  maxUnitCount: 99
storage:
  bucketUrl: mem://
  maxUploadBytes: 10485760
sideEffects:
  timeout: 10s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "funneltest.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)

	t.Setenv("RESERVATION_LEADTIMEDAYS", "5")
	t.Setenv("RESERVATION_TIMEZONE", "UTC")
	t.Setenv("STORAGE_BUCKETURL", "file:///var/funnel/documents")
	t.Setenv("STORAGE_MAXUPLOADBYTES", "2048")
	t.Setenv("SIDEEFFECTS_TIMEOUT", "3s")

	cfg, err := LoadWithEnv[Config]("funneltest", ".")
	require.NoError(t, err)

	require.NotNil(t, cfg.Reservation)
	assert.Equal(t, 5, cfg.Reservation.LeadTimeDays)
	assert.Equal(t, 99, cfg.Reservation.MaxUnitCount)
	assert.Equal(t, "UTC", cfg.Reservation.Timezone)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "file:///var/funnel/documents", cfg.Storage.BucketURL)
	assert.Equal(t, int64(2048), cfg.Storage.MaxUploadBytes)
	require.NotNil(t, cfg.SideEffects)
	assert.Equal(t, 3*time.Second, cfg.SideEffects.Timeout)
}
