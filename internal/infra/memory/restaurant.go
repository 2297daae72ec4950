package memory

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/seed"
)

// restaurantRepository serves the seeded restaurant list.
type restaurantRepository struct {
	restaurants []entity.Restaurant
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(dataset *seed.Dataset) repository.RestaurantRepository {
	return &restaurantRepository{restaurants: dataset.Restaurants}
}

// ListRestaurants returns the physical locations in seed order.
func (r *restaurantRepository) ListRestaurants() []entity.Restaurant {
	return r.restaurants
}
