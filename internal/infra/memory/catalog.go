// Package memory provides in-memory repository implementations over the
// seed dataset. The dataset is immutable, so reads need no locking.
package memory

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/seed"
)

// catalogRepository serves catalog lookups from the seed dataset.
type catalogRepository struct {
	byID       map[string]*entity.Product
	products   []*entity.Product
	categories []entity.Category
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(dataset *seed.Dataset) repository.CatalogRepository {
	byID := make(map[string]*entity.Product, len(dataset.Products))
	for _, product := range dataset.Products {
		byID[product.ID] = product
	}

	return &catalogRepository{
		byID:       byID,
		products:   dataset.Products,
		categories: dataset.Categories,
	}
}

// FindProduct retrieves a single product by its catalog id.
func (r *catalogRepository) FindProduct(id string) (*entity.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

// ListProducts returns the whole catalog in seed order.
func (r *catalogRepository) ListProducts() []*entity.Product {
	return r.products
}

// ListByCategory returns the products of one category, or the whole catalog
// for the sentinel "all" category.
func (r *catalogRepository) ListByCategory(categoryID string) []*entity.Product {
	if categoryID == entity.CategoryAll {
		return r.products
	}

	var filtered []*entity.Product
	for _, product := range r.products {
		if product.CategoryID == categoryID {
			filtered = append(filtered, product)
		}
	}

	return filtered
}

// ListCategories returns the filter categories in seed order.
func (r *catalogRepository) ListCategories() []entity.Category {
	return r.categories
}
