package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"funnel/config"
	deliverycontext "funnel/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_HidesParamsUnlessDebug(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), &config.Config{}).(*gormSlogLogger)

	sql, params := l.ParamsFilter(context.Background(), "SELECT * FROM inquiries WHERE phone_number = $1", "01012345678")
	assert.Equal(t, "SELECT * FROM inquiries WHERE phone_number = $1", sql)
	assert.Nil(t, params)

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	l = newGormSlogLogger(slog.Default(), debugCfg).(*gormSlogLogger)

	_, params = l.ParamsFilter(context.Background(), "SELECT 1", "x")
	assert.Equal(t, []any{"x"}, params)
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-1")))

	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE inquiries", 0 }, assert.AnError)
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "GORM query failed")
	assert.NotContains(t, scoped.String(), "SELECT 1")
}
