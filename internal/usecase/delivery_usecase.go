package usecase

import (
	"storefront/internal/domain/entity"
)

// DeliveryUsecase defines the interface for the delivery address, type, and
// time slot.
type DeliveryUsecase interface {
	// Context returns where and when the order should arrive.
	Context() entity.DeliveryContext

	// Save stores the edited context and resolves the contextual return:
	// back to checkout when the location screen was opened from checkout,
	// otherwise home.
	Save(input *SaveDeliveryInput) error

	// SetType flips between courier delivery and pickup without leaving the
	// current screen (the header toggle).
	SetType(deliveryType entity.DeliveryType) error
}

// --- Input DTOs ---

// SaveDeliveryInput defines the data saved from the location screen. Time
// is either entity.DeliveryTimeASAP or a slot label.
type SaveDeliveryInput struct {
	Location string `json:"location" validate:"required"`
	Type     string `json:"type" validate:"oneof=delivery pickup"`
	Time     string `json:"time" validate:"required"`
}
