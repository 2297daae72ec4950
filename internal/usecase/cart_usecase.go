package usecase

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

// CartUsecase defines the interface for the cart ledger and its derived
// pricing.
type CartUsecase interface {
	// AddItem merges quantity into the line for the product, creating the
	// line if needed. Unknown product ids are ignored. Adding dismisses the
	// product-detail sheet.
	AddItem(productID string, quantity int)

	// UpdateQuantity shifts a line's quantity by delta, clamped to at least
	// one. Removal goes through RemoveItem only.
	UpdateQuantity(productID string, delta int)

	// RemoveItem deletes the line for the product if present.
	RemoveItem(productID string)

	// Clear empties the cart.
	Clear()

	// ApplyPromo accepts any non-empty code and turns the discount on.
	ApplyPromo(code string) error

	// RemovePromo turns the discount off.
	RemovePromo()

	// Lines returns the cart in insertion order.
	Lines() entity.Cart

	// Count returns the total quantity across lines, for the cart badge.
	Count() int

	// Quote returns the pricing of the current cart.
	Quote() pricing.Quote
}
