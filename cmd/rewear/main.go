package main

import (
	"context"
	"log/slog"
	"os"

	"rewear/config"
	"rewear/internal/delivery"
	"rewear/internal/delivery/http"
	"rewear/internal/delivery/http/middleware"
	"rewear/internal/delivery/http/router/handler"
	"rewear/internal/delivery/worker"
	"rewear/internal/infra/auth"
	"rewear/internal/infra/export"
	logs "rewear/internal/infra/log"
	"rewear/internal/infra/mail"
	"rewear/internal/infra/persistence/postgres"
	"rewear/internal/infra/qrcode"
	"rewear/internal/infra/sanitize"
	"rewear/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Local development convenience; deployed environments inject real env vars.
	_ = godotenv.Load()

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
			postgres.NewUserRepository,
			postgres.NewItemRepository,
			postgres.NewTradeRepository,
			postgres.NewCoinRepository,
			postgres.NewCouponRepository,
			postgres.NewCommunityRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewOTPGenerator,
			mail.NewSMTPMailer,
			qrcode.NewQRCodeService,
			sanitize.NewHTMLSanitizer,
			export.NewXLSXReportWriter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewItemService,
			impl.NewTradeService,
			impl.NewCoinService,
			impl.NewCommunityService,
			impl.NewAdminService,
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
			handler.NewAuthHandler,
			handler.NewItemHandler,
			handler.NewTradeHandler,
			handler.NewCoinHandler,
			handler.NewCommunityHandler,
			handler.NewAdminHandler,
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
				os.Exit(1)
			}
		}()
	}
}
