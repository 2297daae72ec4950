// Package usecase contains the application-specific business rules.
package usecase

import (
	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the interface for browsing the catalog and the
// seeded marketing content.
type CatalogUsecase interface {
	// ListProducts returns the whole catalog.
	ListProducts() []*entity.Product

	// ListByCategory returns the products of the currently selected
	// category when categoryID is empty, or of the given category.
	ListByCategory(categoryID string) []*entity.Product

	// FindProduct retrieves one product by id.
	FindProduct(id string) (*entity.Product, error)

	// ListCategories returns the filter categories.
	ListCategories() []entity.Category

	// SelectCategory records the active menu filter; entity.CategoryAll
	// resets it.
	SelectCategory(categoryID string) error

	// Search matches the query against product names in every language,
	// case-insensitively.
	Search(query string) []*entity.Product

	// ListPromotions returns the promo screen content.
	ListPromotions() []entity.Promotion

	// ListRestaurants returns the restaurants screen content.
	ListRestaurants() []entity.Restaurant
}
