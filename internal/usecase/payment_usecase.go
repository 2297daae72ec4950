package usecase

import (
	"storefront/internal/domain/entity"
)

// PaymentUsecase defines the interface for saved cards and the payment
// method choice.
type PaymentUsecase interface {
	// ListCards returns the saved cards in insertion order.
	ListCards() []entity.Card

	// SelectedCard returns the currently selected card, or nil.
	SelectedCard() *entity.Card

	// AddCard validates and saves a new card, returning it with a minted id.
	AddCard(input *AddCardInput) (*entity.Card, error)

	// DeleteCard removes a saved card; if it was selected the selection is
	// cleared.
	DeleteCard(id string) error

	// SelectCard marks the card as selected and switches the payment method
	// to card.
	SelectCard(id string) error

	// SetMethod chooses between card and cash.
	SetMethod(method entity.PaymentMethod) error
}

// --- Input DTOs ---

// AddCardInput defines the data required to save a new card. Only
// display-safe fields exist; there is no PAN.
type AddCardInput struct {
	Last4      string `json:"last4" validate:"required,len=4,numeric"`
	Brand      string `json:"brand" validate:"oneof=visa mastercard mir"`
	Expiry     string `json:"expiry" validate:"required"`
	HolderName string `json:"holder_name" validate:"required"`
	Color      string `json:"color"`
}
