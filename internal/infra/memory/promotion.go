package memory

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/seed"
)

// promotionRepository serves the seeded promotions.
type promotionRepository struct {
	promotions []entity.Promotion
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(dataset *seed.Dataset) repository.PromotionRepository {
	return &promotionRepository{promotions: dataset.Promotions}
}

// ListPromotions returns the active promotions in seed order.
func (r *promotionRepository) ListPromotions() []entity.Promotion {
	return r.promotions
}
