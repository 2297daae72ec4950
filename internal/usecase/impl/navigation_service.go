package impl

import (
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/state"
	"storefront/internal/store"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// navigationService implements the NavigationUsecase interface.
type navigationService struct {
	catalogRepo repository.CatalogRepository
	appStore    *store.Store
	logger      *slog.Logger
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(
	catalogRepo repository.CatalogRepository,
	appStore *store.Store,
	logger *slog.Logger,
) usecase.NavigationUsecase {
	return &navigationService{
		catalogRepo: catalogRepo,
		appStore:    appStore,
		logger:      logger,
	}
}

// GoTo presents the screen. The current screen is recorded for contextual
// back and the product sheet is dismissed; applying the intent also cancels
// a pending auto-return from the success screen.
func (srv *navigationService) GoTo(screen entity.Screen) error {
	if !screen.IsValid() {
		return errors.Wrap(domainerrors.ErrUnknownScreen, screen.String())
	}

	srv.appStore.Apply("nav.goto", func(s *state.State) {
		if s.Nav.Active == screen {
			s.Nav.SelectedProductID = ""

			return
		}
		s.Nav.Previous = s.Nav.Active
		s.Nav.Active = screen
		s.Nav.SelectedProductID = ""
	})

	return nil
}

// Back returns to the recorded origin screen, or home when there is none.
// This resolves the multi-origin screens: location opened from checkout
// returns to checkout, opened from home returns to home, and likewise for
// payment management opened from checkout or the profile editor.
func (srv *navigationService) Back() {
	srv.appStore.Apply("nav.back", func(s *state.State) {
		target := s.Nav.Previous
		if !target.IsValid() {
			target = entity.ScreenHome
		}
		s.Nav.Previous = s.Nav.Active
		s.Nav.Active = target
		s.Nav.SelectedProductID = ""
	})
}

// OpenProduct raises the product-detail sheet over the active screen.
func (srv *navigationService) OpenProduct(productID string) error {
	if _, err := srv.catalogRepo.FindProduct(productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, productID)
		}

		return errors.Wrap(err, "failed to find product")
	}

	srv.appStore.Apply("nav.open-product", func(s *state.State) {
		s.Nav.SelectedProductID = productID
	})

	return nil
}

// CloseProduct dismisses the sheet without changing the active screen.
func (srv *navigationService) CloseProduct() {
	srv.appStore.Apply("nav.close-product", func(s *state.State) {
		s.Nav.SelectedProductID = ""
	})
}

// State returns the current navigation state.
func (srv *navigationService) State() entity.NavigationState {
	return srv.appStore.Snapshot().Nav
}

// ActiveTab returns the bottom-bar slot to highlight.
func (srv *navigationService) ActiveTab() entity.Screen {
	return srv.appStore.Snapshot().Nav.Active.Tab()
}
