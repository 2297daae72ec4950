package impl

import (
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/state"
	"storefront/internal/store"
	"storefront/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	catalogRepo repository.CatalogRepository
	appStore    *store.Store
	tariff      pricing.Tariff
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	catalogRepo repository.CatalogRepository,
	appStore *store.Store,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		catalogRepo: catalogRepo,
		appStore:    appStore,
		tariff:      TariffFromConfig(cfg),
		logger:      logger,
	}
}

// TariffFromConfig maps the pricing configuration onto the pricing engine's
// tariff.
func TariffFromConfig(cfg *config.Config) pricing.Tariff {
	return pricing.Tariff{
		FreeDeliveryThreshold: cfg.Pricing.FreeDeliveryThreshold,
		DeliveryFee:           cfg.Pricing.DeliveryFee,
		ServiceFee:            cfg.Pricing.ServiceFee,
		PromoDiscountPercent:  cfg.Pricing.PromoDiscountPercent,
		LoyaltyAccrualPercent: cfg.Pricing.LoyaltyAccrualPercent,
	}
}

// AddItem merges quantity into the product's line, creating it if needed.
// Unknown product ids are ignored; the product sheet is dismissed either way
// since the add action is offered from it.
func (srv *cartService) AddItem(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := srv.catalogRepo.FindProduct(productID)
	if err != nil {
		srv.logger.Debug("ignoring add of unknown product", "productID", productID)

		return
	}

	srv.appStore.Apply("cart.add", func(s *state.State) {
		if i := s.Cart.IndexOf(productID); i >= 0 {
			s.Cart[i].Quantity += quantity
		} else {
			s.Cart = append(s.Cart, entity.CartLine{Product: product, Quantity: quantity})
		}
		s.Nav.SelectedProductID = ""
	})
}

// UpdateQuantity shifts a line's quantity by delta, clamped to at least one.
func (srv *cartService) UpdateQuantity(productID string, delta int) {
	srv.appStore.Apply("cart.update-quantity", func(s *state.State) {
		i := s.Cart.IndexOf(productID)
		if i < 0 {
			return
		}
		s.Cart[i].Quantity = max(1, s.Cart[i].Quantity+delta)
	})
}

// RemoveItem deletes the line for the product if present.
func (srv *cartService) RemoveItem(productID string) {
	srv.appStore.Apply("cart.remove", func(s *state.State) {
		i := s.Cart.IndexOf(productID)
		if i < 0 {
			return
		}
		s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
	})
}

// Clear empties the cart and drops any applied promo.
func (srv *cartService) Clear() {
	srv.appStore.Apply("cart.clear", func(s *state.State) {
		s.Cart = nil
		s.PromoApplied = false
		s.PromoCode = ""
	})
}

// ApplyPromo accepts any non-empty code. There is no registry check; the
// reference storefront treats the code as a local toggle.
func (srv *cartService) ApplyPromo(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domainerrors.ErrPromoCodeEmpty
	}

	srv.appStore.Apply("cart.apply-promo", func(s *state.State) {
		s.PromoCode = strings.ToUpper(code)
		s.PromoApplied = true
	})

	return nil
}

// RemovePromo turns the discount off.
func (srv *cartService) RemovePromo() {
	srv.appStore.Apply("cart.remove-promo", func(s *state.State) {
		s.PromoCode = ""
		s.PromoApplied = false
	})
}

// Lines returns the cart in insertion order.
func (srv *cartService) Lines() entity.Cart {
	return srv.appStore.Snapshot().Cart
}

// Count returns the total quantity across lines.
func (srv *cartService) Count() int {
	return srv.appStore.Snapshot().Cart.Count()
}

// Quote returns the pricing of the current cart.
func (srv *cartService) Quote() pricing.Quote {
	snapshot := srv.appStore.Snapshot()

	return pricing.Compute(snapshot.Cart, snapshot.PromoApplied, srv.tariff)
}
