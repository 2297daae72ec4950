package entity

import "github.com/google/uuid"

// PaymentMethod represents how the order will be paid.
type PaymentMethod string

const (
	// PaymentCard indicates payment with a saved card.
	PaymentCard PaymentMethod = "card"
	// PaymentCash indicates cash on delivery.
	PaymentCash PaymentMethod = "cash"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentCash:
		return true
	default:
		return false
	}
}

// CardBrand represents the card network of a saved card.
type CardBrand string

const (
	// BrandVisa is a Visa card.
	BrandVisa CardBrand = "visa"
	// BrandMastercard is a Mastercard card.
	BrandMastercard CardBrand = "mastercard"
	// BrandMir is a Mir card.
	BrandMir CardBrand = "mir"
)

// String returns the string representation of the CardBrand.
func (b CardBrand) String() string {
	return string(b)
}

// IsValid checks if the CardBrand is a valid value.
func (b CardBrand) IsValid() bool {
	switch b {
	case BrandVisa, BrandMastercard, BrandMir:
		return true
	default:
		return false
	}
}

// Card is a saved payment card. Only display-safe fields are kept; there is
// no PAN and no credential material anywhere in the system.
type Card struct {
	ID         string
	Last4      string
	Brand      CardBrand
	Expiry     string // MM/YY display form.
	HolderName string
	Color      string // Gradient hint for the card artwork.
}

// NewCardID mints an identifier for a newly added card.
func NewCardID() string {
	return uuid.NewString()
}

// PaymentProfile holds the saved cards plus the current selection. When
// SelectedCardID is non-empty it must reference a card in Cards.
type PaymentProfile struct {
	Cards          []Card
	SelectedCardID string
	Method         PaymentMethod
}

// SelectedCard returns the currently selected card, or nil when none is
// selected.
func (p PaymentProfile) SelectedCard() *Card {
	for i := range p.Cards {
		if p.Cards[i].ID == p.SelectedCardID {
			return &p.Cards[i]
		}
	}

	return nil
}
