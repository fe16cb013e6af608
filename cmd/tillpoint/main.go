package main

import (
	"context"
	"log/slog"
	"os"

	"tillpoint/config"
	"tillpoint/internal/delivery"
	"tillpoint/internal/delivery/http"
	"tillpoint/internal/delivery/http/middleware"
	"tillpoint/internal/delivery/http/router/handler"
	"tillpoint/internal/domain/service"
	"tillpoint/internal/infra/auth"
	logs "tillpoint/internal/infra/log"
	"tillpoint/internal/infra/notification"
	"tillpoint/internal/infra/payment"
	"tillpoint/internal/infra/persistence/postgres"
	"tillpoint/internal/infra/qrcode"
	"tillpoint/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewMovementRepository,
			postgres.NewSaleRepository,
			postgres.NewShiftRepository,
			postgres.NewCustomerRepository,
			postgres.NewLoyaltyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			payment.NewPaystackGateway,
			notification.NewStockAlertNotifier,
			newQRCodeService,
		),
	)
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
			impl.NewSaleService,
			impl.NewPaymentService,
			impl.NewShiftService,
			impl.NewLoyaltyService,
			impl.NewInventoryService,
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
			handler.NewSaleHandler,
			handler.NewPaymentHandler,
			handler.NewShiftHandler,
			handler.NewLoyaltyHandler,
			handler.NewInventoryHandler,
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
