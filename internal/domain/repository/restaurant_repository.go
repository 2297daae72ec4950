package repository

import (
	"storefront/internal/domain/entity"
)

// RestaurantRepository defines the lookups over the seeded restaurant list.
type RestaurantRepository interface {
	// ListRestaurants returns the physical locations in seed order.
	ListRestaurants() []entity.Restaurant
}
