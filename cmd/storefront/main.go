package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/console"
	"storefront/internal/domain/state"
	"storefront/internal/infra/i18n"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/memory"
	"storefront/internal/infra/schedule"
	"storefront/internal/infra/seed"
	"storefront/internal/store"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startParams struct {
	fx.In
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startFrontends,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		seed.Load,
		schedule.NewScheduler,
		newInitialState,
		store.New,
	)
}

// newInitialState builds the process-start snapshot from the seed dataset
// and the configured default language.
func newInitialState(dataset *seed.Dataset, cfg *config.Config) (*state.State, error) {
	lang, err := i18n.ParseLanguage(cfg.Language.Default)
	if err != nil {
		return nil, err
	}

	return dataset.InitialState(lang), nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewCatalogRepository,
			memory.NewPromotionRepository,
			memory.NewRestaurantRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewNavigationService,
			impl.NewCheckoutService,
			impl.NewPaymentService,
			impl.NewProfileService,
			impl.NewDeliveryService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				console.NewConsole,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startFrontends(ctx context.Context, params startParams) {
	for _, frontend := range params.Deliveries {
		go func() {
			if err := frontend.Serve(ctx); err != nil {
				slog.Error("front end stopped", slog.Any("error", err))
				os.Exit(1)
			}
			// Input ended; shut the app down cleanly.
			_ = params.Shutdown()
		}()
	}
}
