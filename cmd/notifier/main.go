package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"notifier/config"
	"notifier/internal/delivery"
	"notifier/internal/delivery/http"
	"notifier/internal/delivery/http/router/handler"
	"notifier/internal/domain/service"
	logs "notifier/internal/infra/log"
	"notifier/internal/infra/messaging"
	"notifier/internal/infra/persistence/firestore"
	"notifier/internal/infra/pubsub"
	"notifier/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
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
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewTokenRepository,
			firestore.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushSender,
			newPushPlatform,
			pubsub.NewEventPublisher,
		),
	)
}

// newPushSender creates the FCM sender. Unlike the optional client platform,
// the sender is mandatory: the service cannot deliver anything without it.
func newPushSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	sender, err := messaging.NewFCMSender(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM sender: %w", err)
	}

	return sender, nil
}

// newPushPlatform returns no platform. The API process has no client push
// subsystem; device registration happens through the explicit-token endpoints.
func newPushPlatform() service.PushPlatform {
	return nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFanoutService,
			impl.NewTokenService,
			impl.NewReadStateService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotificationHandler,
			handler.NewConfigHandler,
			handler.NewTokenHandler,
			handler.NewReadStateHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
