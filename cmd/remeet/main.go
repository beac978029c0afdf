package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/duniya2no/ReMeet/config"
	"github.com/duniya2no/ReMeet/internal/delivery"
	"github.com/duniya2no/ReMeet/internal/delivery/http"
	"github.com/duniya2no/ReMeet/internal/delivery/http/middleware"
	"github.com/duniya2no/ReMeet/internal/delivery/http/router/handler"
	"github.com/duniya2no/ReMeet/internal/delivery/worker"
	"github.com/duniya2no/ReMeet/internal/domain/service"
	"github.com/duniya2no/ReMeet/internal/infra/auth"
	"github.com/duniya2no/ReMeet/internal/infra/feed"
	logs "github.com/duniya2no/ReMeet/internal/infra/log"
	"github.com/duniya2no/ReMeet/internal/infra/notification"
	"github.com/duniya2no/ReMeet/internal/infra/persistence/postgres"
	"github.com/duniya2no/ReMeet/internal/infra/pubsub"
	"github.com/duniya2no/ReMeet/internal/infra/qrcode"
	"github.com/duniya2no/ReMeet/internal/infra/storage"
	"github.com/duniya2no/ReMeet/internal/usecase/impl"

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
		postgres.New,
		feed.NewHub,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewAppointmentRepository,
			postgres.NewNotificationRepository,
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewPhoneVerificationRepository,
			postgres.NewPurchaseRepository,
			postgres.NewHelpRequestRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newBcryptHasher,
			auth.NewJWTService,
			notification.NewPushService,
			pubsub.NewEventPublisher,
			storage.NewBlobAvatarStore,
			newQRCodeService,
		),
	)
}

// newBcryptHasher creates a password hasher honoring the configured cost
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil || cfg.Auth.BcryptCost <= 0 {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAppointmentService,
			impl.NewReconcileService,
			impl.NewScheduleService,
			impl.NewNotificationService,
			impl.NewOutboxDispatcher,
			impl.NewUserService,
			impl.NewPurchaseService,
			impl.NewHelpService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAppointmentHandler,
			handler.NewScheduleHandler,
			handler.NewNotificationHandler,
			handler.NewUserHandler,
			handler.NewPurchaseHandler,
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
			fx.Annotate(
				worker.NewWorker,
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
