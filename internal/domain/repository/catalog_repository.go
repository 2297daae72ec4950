// Package repository defines the interfaces for the read-only seed datasets.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines the standard lookups over the product catalog.
// The catalog is immutable for the process lifetime, so there are no writes.
type CatalogRepository interface {
	// FindProduct retrieves a single product by its catalog id.
	FindProduct(id string) (*entity.Product, error)

	// ListProducts returns the whole catalog in seed order.
	ListProducts() []*entity.Product

	// ListByCategory returns the products of one category; the sentinel
	// entity.CategoryAll returns the whole catalog.
	ListByCategory(categoryID string) []*entity.Product

	// ListCategories returns the filter categories in seed order.
	ListCategories() []entity.Category
}
