package repository

import (
	"storefront/internal/domain/entity"
)

// PromotionRepository defines the lookups over the seeded promotions.
type PromotionRepository interface {
	// ListPromotions returns the active promotions in seed order.
	ListPromotions() []entity.Promotion
}
