package main

import (
	"context"
	"log/slog"
	"os"

	"funnel/config"
	"funnel/internal/delivery"
	"funnel/internal/delivery/worker"
	"funnel/internal/delivery/worker/handler"
	"funnel/internal/domain/service"
	logs "funnel/internal/infra/log"
	"funnel/internal/infra/notification"
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
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
		),
	)
}

// newNotificationService sends through FCM when Firebase is configured and only logs otherwise.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Warn("Firebase not configured, notifications are only logged")

		return notification.NewLogOnlyService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
