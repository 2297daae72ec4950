package entity

// Screen is one of the mutually exclusive full views the storefront can
// present. Exactly one screen is active at a time; the product-detail sheet
// is an orthogonal overlay tracked separately.
type Screen string

const (
	// ScreenHome is the landing view and the resting state after any flow.
	ScreenHome Screen = "home"
	// ScreenMenu is the full catalog with the category filter.
	ScreenMenu Screen = "menu"
	// ScreenPromo lists active promotions.
	ScreenPromo Screen = "promo"
	// ScreenRestaurants lists physical locations.
	ScreenRestaurants Screen = "restaurants"
	// ScreenMore is the profile/settings hub tab.
	ScreenMore Screen = "more"
	// ScreenCart is the cart sheet.
	ScreenCart Screen = "cart"
	// ScreenCheckout is the order confirmation flow.
	ScreenCheckout Screen = "checkout"
	// ScreenSuccess is the post-checkout confirmation view.
	ScreenSuccess Screen = "success"
	// ScreenLocation edits the delivery address and time slot.
	ScreenLocation Screen = "location"
	// ScreenPaymentManage manages saved cards.
	ScreenPaymentManage Screen = "payment-manage"
	// ScreenProfileEdit edits the user profile and notification toggles.
	ScreenProfileEdit Screen = "profile-edit"
	// ScreenSearchFull is the full-screen search overlay.
	ScreenSearchFull Screen = "search-full"
	// ScreenLoyalty shows the loyalty point balance.
	ScreenLoyalty Screen = "loyalty"
)

// String returns the string representation of the Screen.
func (s Screen) String() string {
	return string(s)
}

// IsValid checks if the Screen is a valid value.
func (s Screen) IsValid() bool {
	switch s {
	case ScreenHome, ScreenMenu, ScreenPromo, ScreenRestaurants, ScreenMore,
		ScreenCart, ScreenCheckout, ScreenSuccess, ScreenLocation,
		ScreenPaymentManage, ScreenProfileEdit, ScreenSearchFull, ScreenLoyalty:
		return true
	default:
		return false
	}
}

// IsTab reports whether the screen has its own slot in the bottom
// navigation bar.
func (s Screen) IsTab() bool {
	switch s {
	case ScreenHome, ScreenMenu, ScreenPromo, ScreenRestaurants, ScreenMore:
		return true
	default:
		return false
	}
}

// Tab maps the screen to the bottom-bar slot that should light up while it
// is presented. Modal overlays and the success view report the "more" tab so
// the bar never highlights a tab that is not really active.
func (s Screen) Tab() Screen {
	if s.IsTab() {
		return s
	}

	return ScreenMore
}

// NavigationState tracks the active screen, the screen the user came from
// (for contextual back), and the product-detail overlay.
type NavigationState struct {
	Active            Screen
	Previous          Screen // Zero value means there is nowhere to return to.
	SelectedProductID string // Non-empty while the product sheet is open.
}
