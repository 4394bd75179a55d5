package main

import (
	"context"
	"log/slog"
	"os"

	"funnel/config"
	"funnel/internal/delivery"
	"funnel/internal/delivery/api"
	"funnel/internal/delivery/api/middleware"
	"funnel/internal/delivery/api/router/handler"
	"funnel/internal/domain/calendar"
	"funnel/internal/domain/service"
	"funnel/internal/domain/submission"
	"funnel/internal/infra/attribution"
	"funnel/internal/infra/auth"
	"funnel/internal/infra/clock"
	logs "funnel/internal/infra/log"
	"funnel/internal/infra/metrics"
	"funnel/internal/infra/persistence/postgres"
	"funnel/internal/infra/pubsub"
	"funnel/internal/infra/qrcode"
	"funnel/internal/infra/storage"
	"funnel/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectDomain(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewInquiryRepository,
			postgres.NewPartnerRepository,
			postgres.NewBlockedDateRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			clock.New,
			newQRCodeService,
			newMetricsRecorder,
			pubsub.NewEventPublisher,
			attribution.New,
			storage.New,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	if cfg.QRCode == nil {
		return nil, errors.New("qrcode configuration is required for partner referral codes")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// newMetricsRecorder exposes the collectors to use cases.
func newMetricsRecorder(m *metrics.Metrics) service.MetricsRecorder {
	return m
}

func injectDomain() fx.Option {
	return fx.Options(
		fx.Provide(
			func(cfg *config.Config) calendar.Calendar {
				return calendar.New(cfg.Reservation.LeadTimeDays, cfg.Reservation.Location())
			},
			func(cfg *config.Config) *submission.Validator {
				return submission.NewValidator(cfg.Reservation.MaxUnitCount)
			},
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSideEffectDispatcher,
			impl.NewCalendarService,
			impl.NewInquiryService,
			impl.NewReservationService,
			impl.NewLookupService,
			impl.NewDocumentService,
			impl.NewAdminService,
			impl.NewPartnerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewInquiryHandler,
			handler.NewReservationHandler,
			handler.NewCalendarHandler,
			handler.NewAdminHandler,
			handler.NewPartnerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
