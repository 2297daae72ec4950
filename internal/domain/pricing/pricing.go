// Package pricing computes the order quote. It is pure: the same cart, promo
// flag, and tariff always produce the same quote.
package pricing

import (
	"storefront/internal/domain/entity"
)

// Tariff holds the fee schedule the quote is computed against. Amounts are
// integer currency units, percentages whole numbers.
type Tariff struct {
	FreeDeliveryThreshold int
	DeliveryFee           int
	ServiceFee            int
	PromoDiscountPercent  int
	LoyaltyAccrualPercent int
}

// Quote is the derived pricing of the current cart.
type Quote struct {
	Subtotal       int
	DeliveryFee    int
	ServiceFee     int
	Discount       int
	Total          int
	LoyaltyAccrual int
}

// Compute derives the quote for the given cart. An empty cart waives every
// fee so the quote is all zeroes. The delivery fee is waived once the
// subtotal exceeds the free-delivery threshold.
func Compute(cart entity.Cart, promoApplied bool, tariff Tariff) Quote {
	var quote Quote
	for _, line := range cart {
		quote.Subtotal += line.Product.Price * line.Quantity
	}

	if quote.Subtotal == 0 {
		return quote
	}

	if quote.Subtotal <= tariff.FreeDeliveryThreshold {
		quote.DeliveryFee = tariff.DeliveryFee
	}
	quote.ServiceFee = tariff.ServiceFee

	if promoApplied {
		quote.Discount = quote.Subtotal * tariff.PromoDiscountPercent / 100
	}

	quote.Total = quote.Subtotal + quote.DeliveryFee + quote.ServiceFee - quote.Discount
	quote.LoyaltyAccrual = quote.Total * tariff.LoyaltyAccrualPercent / 100

	return quote
}
