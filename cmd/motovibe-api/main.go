package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/delivery"
	"github.com/umithief/motovibe6/internal/delivery/api"
	"github.com/umithief/motovibe6/internal/delivery/api/middleware"
	"github.com/umithief/motovibe6/internal/delivery/api/router/handler"
	"github.com/umithief/motovibe6/internal/delivery/worker"
	"github.com/umithief/motovibe6/internal/domain/lifecycle"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/infra/auth"
	logs "github.com/umithief/motovibe6/internal/infra/log"
	"github.com/umithief/motovibe6/internal/infra/persistence"
	"github.com/umithief/motovibe6/internal/infra/pubsub"
	"github.com/umithief/motovibe6/internal/infra/qrcode"
	"github.com/umithief/motovibe6/internal/usecase"
	"github.com/umithief/motovibe6/internal/usecase/impl"
)

type startServerParams struct {
	fx.In

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type bootstrapParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Catalog usecase.CatalogUsecase
	Forum   usecase.ForumUsecase
	Users   usecase.UserUsecase
}

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	// The storage module depends on configuration, so it is read up front.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		persistence.Module(cfg.Storage.Backend),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrap,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		loadLocation,
	)
}

func loadLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.LoadLocation()
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			impl.NewOrderCodeGenerator,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewForumService,
			impl.NewAnalyticsService,
			impl.NewActivityLogService,
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
			handler.NewProductHandler,
			handler.NewContentHandler,
			handler.NewOrderHandler,
			handler.NewForumHandler,
			handler.NewAnalyticsHandler,
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
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrap fills an empty store with the default content and makes sure the
// configured admin account exists before traffic is accepted.
func bootstrap(params bootstrapParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			seeded, err := params.Catalog.SeedDefaults(ctx)
			if err != nil {
				return err
			}
			topics, err := params.Forum.SeedDefaults(ctx)
			if err != nil {
				return err
			}
			if seeded || topics {
				params.Logger.Info("Seeded default content")
			}

			if admin := params.Cfg.Auth.Admin; admin != nil {
				return params.Users.EnsureAdmin(ctx, &usecase.RegisterInput{
					Name:     admin.Name,
					Email:    admin.Email,
					Password: admin.Password,
				})
			}

			return nil
		},
	})
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
