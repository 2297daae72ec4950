package usecase

import (
	"storefront/internal/domain/entity"
)

// ProfileUsecase defines the interface for the user profile, notification
// toggles, language, and order history.
type ProfileUsecase interface {
	// Get returns the current profile.
	Get() entity.UserProfile

	// Update applies the provided fields after validation.
	Update(input *UpdateProfileInput) error

	// SetNotification flips one notification toggle.
	SetNotification(kind entity.NotificationKind, enabled bool) error

	// SetLanguage switches the display language; input may be any BCP-47
	// form of a supported language, e.g. "en-US".
	SetLanguage(input string) error

	// Orders returns the order history, newest first.
	Orders() []entity.Order
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update the profile. Nil
// fields are left unchanged.
type UpdateProfileInput struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}
