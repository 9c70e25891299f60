package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"kitchenlink/config"
	"kitchenlink/internal/delivery"
	"kitchenlink/internal/delivery/http"
	"kitchenlink/internal/delivery/http/middleware"
	"kitchenlink/internal/delivery/http/router/handler"
	"kitchenlink/internal/domain/service"
	"kitchenlink/internal/infra/auth"
	"kitchenlink/internal/infra/auth/google"
	"kitchenlink/internal/infra/geocoding"
	logs "kitchenlink/internal/infra/log"
	"kitchenlink/internal/infra/persistence/postgres"
	"kitchenlink/internal/infra/pubsub"
	"kitchenlink/internal/infra/qrcode"
	"kitchenlink/internal/usecase/impl"
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewLocationRepository,
			postgres.NewOpinionRepository,
			postgres.NewLikeRepository,
			postgres.NewTagRepository,
			postgres.NewQuestionRepository,
			postgres.NewAnswerRepository,
			postgres.NewLookupRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTSessionService,
			google.NewIdentityProvider,
			geocoding.NewGeocodingService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewSessionService,
			impl.NewLocationService,
			impl.NewOpinionService,
			impl.NewQuestionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewSessionMiddleware,
			middleware.NewGateMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewLocationHandler,
			handler.NewOpinionHandler,
			handler.NewQuestionHandler,
			handler.NewGeocodingHandler,
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
