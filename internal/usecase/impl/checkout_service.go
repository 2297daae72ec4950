package impl

import (
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/state"
	"storefront/internal/store"
	"storefront/internal/usecase"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	appStore *store.Store
	tariff   pricing.Tariff
	checkout *config.CheckoutConfig
	logger   *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	appStore *store.Store,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		appStore: appStore,
		tariff:   TariffFromConfig(cfg),
		checkout: cfg.Checkout,
		logger:   logger,
	}
}

// Submit starts the simulated payment. Both guard failures leave the state
// untouched and start no timer; the delivery layer surfaces them as a
// disabled action, not a crash.
func (srv *checkoutService) Submit() error {
	snapshot := srv.appStore.Snapshot()

	if snapshot.Processing {
		return domainerrors.ErrOrderInProgress
	}
	if snapshot.Payment.Method == entity.PaymentCard && snapshot.Payment.SelectedCard() == nil {
		return domainerrors.ErrNoCardSelected
	}

	srv.logger.Info("order submitted", "lines", len(snapshot.Cart))

	srv.appStore.Apply("checkout.submit", func(s *state.State) {
		s.Processing = true
	})
	srv.appStore.Schedule(store.TaskOrderProcessing, srv.checkout.ProcessingDelay, srv.complete)

	return nil
}

// complete fires when the simulated payment latency elapses: record the
// order, credit the loyalty accrual, clear the cart, present the success
// screen, and arm the delayed return home.
func (srv *checkoutService) complete() {
	srv.appStore.Apply("checkout.complete", func(s *state.State) {
		quote := pricing.Compute(s.Cart, s.PromoApplied, srv.tariff)

		order := entity.Order{
			ID:        entity.NewOrderID(),
			DateLabel: time.Now().Format("02.01, 15:04"),
			Total:     quote.Total,
			Status:    entity.OrderActive,
		}
		for _, line := range s.Cart {
			order.Items = append(order.Items, line.Product.Name.In(s.Language))
		}
		if len(s.Cart) > 0 {
			order.Image = s.Cart[0].Product.Image
		}

		s.Orders = append([]entity.Order{order}, s.Orders...)
		s.User.LoyaltyPoints += quote.LoyaltyAccrual

		s.Cart = nil
		s.PromoApplied = false
		s.PromoCode = ""
		s.Processing = false

		s.Nav.Previous = s.Nav.Active
		s.Nav.Active = entity.ScreenSuccess
		s.Nav.SelectedProductID = ""
	})

	srv.logger.Info("order completed")

	srv.appStore.Schedule(store.TaskSuccessReturn, srv.checkout.SuccessReturnDelay, func() {
		srv.appStore.Apply("nav.auto-return", func(s *state.State) {
			s.Nav.Previous = s.Nav.Active
			s.Nav.Active = entity.ScreenHome
		})
	})
}

// CancelSubmission aborts an in-flight submission before it completes.
func (srv *checkoutService) CancelSubmission() bool {
	if !srv.appStore.Cancel(store.TaskOrderProcessing) {
		return false
	}

	srv.appStore.Apply("checkout.cancel", func(s *state.State) {
		s.Processing = false
	})
	srv.logger.Info("order submission cancelled")

	return true
}

// Processing reports whether a submission is in flight.
func (srv *checkoutService) Processing() bool {
	return srv.appStore.Snapshot().Processing
}
