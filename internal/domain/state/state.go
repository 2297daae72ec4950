// Package state defines the whole-app snapshot the store owns. Every intent
// derives a new snapshot from the previous one; nothing outside the store
// mutates a snapshot it has been handed.
package state

import (
	"slices"

	"storefront/internal/domain/entity"
)

// State is the complete storefront state at one point in time.
type State struct {
	User          entity.UserProfile
	Notifications entity.NotificationPrefs

	Delivery entity.DeliveryContext
	Payment  entity.PaymentProfile
	Orders   []entity.Order

	Cart         entity.Cart
	PromoCode    string // Last applied promo code, empty when none.
	PromoApplied bool

	Nav              entity.NavigationState
	SelectedCategory string
	Language         entity.Language

	// Processing is true while a submitted order waits out its simulated
	// payment latency; it blocks resubmission.
	Processing bool
}

// Clone returns a deep copy. Product pointers are shared on purpose: catalog
// entries are immutable and never owned by the cart.
func (s *State) Clone() *State {
	clone := *s
	clone.Cart = slices.Clone(s.Cart)
	clone.Orders = make([]entity.Order, len(s.Orders))
	for i, order := range s.Orders {
		clone.Orders[i] = order
		clone.Orders[i].Items = slices.Clone(order.Items)
	}
	clone.Payment.Cards = slices.Clone(s.Payment.Cards)

	return &clone
}

// Reducer is a pure transition applied to a freshly cloned snapshot.
type Reducer func(*State)
