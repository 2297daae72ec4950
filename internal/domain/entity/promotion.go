package entity

// Promotion is a marketing entry on the promo screen. Code is optional; the
// "buy two get one" style promotions carry no code at all.
type Promotion struct {
	ID          string
	Title       LocalizedText
	Description LocalizedText
	Code        string // Optional promo code, empty when not redeemable by code.
	DiscountTag string // Short badge text, e.g. "-20%" or "FREE".
	Image       string
	ExpiryLabel LocalizedText // Free-form expiry text, not a parsed date.
	Color       string        // Accent color hint for the presentation layer.
}
