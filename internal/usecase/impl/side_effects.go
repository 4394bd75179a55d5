package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"funnel/config"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/lifecycle"
	"funnel/internal/domain/service"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSideEffectTimeout = 10 * time.Second

// sideEffectDispatcher runs side effects on their own goroutines, detached from the
// request context so a finished response does not cancel them.
type sideEffectDispatcher struct {
	wg      sync.WaitGroup
	timeout time.Duration
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

// SideEffectDispatcherParams holds dependencies for the dispatcher, injected by Fx.
type SideEffectDispatcherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Metrics service.MetricsRecorder
	Logger  *slog.Logger
}

// NewSideEffectDispatcher creates the dispatcher and drains it on shutdown.
func NewSideEffectDispatcher(params SideEffectDispatcherParams) usecase.SideEffectRunner {
	timeout := defaultSideEffectTimeout
	if params.Config != nil && params.Config.SideEffects != nil && params.Config.SideEffects.Timeout > 0 {
		timeout = params.Config.SideEffects.Timeout
	}

	dispatcher := newSideEffectDispatcher(timeout, params.Metrics, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return dispatcher.Wait(waitCtx)
		},
	})

	return dispatcher
}

func newSideEffectDispatcher(timeout time.Duration, metrics service.MetricsRecorder, logger *slog.Logger) *sideEffectDispatcher {
	return &sideEffectDispatcher{
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
	}
}

// Go runs fn in the background. Errors and panics are logged and counted.
func (d *sideEffectDispatcher) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger).With(slog.String("side_effect", name))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.run(runCtx, fn); err != nil {
			d.metrics.SideEffectFailed(name)
			logger.WarnContext(runCtx, "Side effect failed", slog.Any("error", err))
		}
	}()
}

func (d *sideEffectDispatcher) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()

	return fn(ctx)
}

// Wait blocks until every running side effect finished or ctx is done.
func (d *sideEffectDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "side effects still running")
	}
}
