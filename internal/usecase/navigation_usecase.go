package usecase

import (
	"storefront/internal/domain/entity"
)

// NavigationUsecase defines the interface for the screen state machine.
type NavigationUsecase interface {
	// GoTo presents the screen, recording the current one for contextual
	// back and dismissing the product sheet.
	GoTo(screen entity.Screen) error

	// Back returns to the screen the user came from, or home when there is
	// no recorded origin.
	Back()

	// OpenProduct raises the product-detail sheet over the active screen.
	OpenProduct(productID string) error

	// CloseProduct dismisses the sheet without changing the active screen.
	CloseProduct()

	// State returns the current navigation state.
	State() entity.NavigationState

	// ActiveTab returns the bottom-bar slot to highlight for the active
	// screen.
	ActiveTab() entity.Screen
}
