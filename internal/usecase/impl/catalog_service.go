// Package impl contains the application-specific business rules implementations.
package impl

import (
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/state"
	"storefront/internal/store"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo    repository.CatalogRepository
	promotionRepo  repository.PromotionRepository
	restaurantRepo repository.RestaurantRepository
	appStore       *store.Store
	logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	catalogRepo repository.CatalogRepository,
	promotionRepo repository.PromotionRepository,
	restaurantRepo repository.RestaurantRepository,
	appStore *store.Store,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo:    catalogRepo,
		promotionRepo:  promotionRepo,
		restaurantRepo: restaurantRepo,
		appStore:       appStore,
		logger:         logger,
	}
}

// ListProducts returns the whole catalog.
func (srv *catalogService) ListProducts() []*entity.Product {
	return srv.catalogRepo.ListProducts()
}

// ListByCategory returns the products of the given category, or of the
// currently selected filter when categoryID is empty.
func (srv *catalogService) ListByCategory(categoryID string) []*entity.Product {
	if categoryID == "" {
		categoryID = srv.appStore.Snapshot().SelectedCategory
	}

	return srv.catalogRepo.ListByCategory(categoryID)
}

// FindProduct retrieves one product by id.
func (srv *catalogService) FindProduct(id string) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindProduct(id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListCategories returns the filter categories.
func (srv *catalogService) ListCategories() []entity.Category {
	return srv.catalogRepo.ListCategories()
}

// SelectCategory records the active menu filter.
func (srv *catalogService) SelectCategory(categoryID string) error {
	if categoryID != entity.CategoryAll {
		var found bool
		for _, category := range srv.catalogRepo.ListCategories() {
			if category.ID == categoryID {
				found = true

				break
			}
		}
		if !found {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, categoryID)
		}
	}

	srv.appStore.Apply("catalog.select-category", func(s *state.State) {
		s.SelectedCategory = categoryID
	})

	return nil
}

// Search matches the query against product names in every language,
// case-insensitively. An empty query matches nothing.
func (srv *catalogService) Search(query string) []*entity.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matched []*entity.Product
	for _, product := range srv.catalogRepo.ListProducts() {
		for _, lang := range entity.Languages() {
			if strings.Contains(strings.ToLower(product.Name.In(lang)), query) {
				matched = append(matched, product)

				break
			}
		}
	}

	return matched
}

// ListPromotions returns the promo screen content.
func (srv *catalogService) ListPromotions() []entity.Promotion {
	return srv.promotionRepo.ListPromotions()
}

// ListRestaurants returns the restaurants screen content.
func (srv *catalogService) ListRestaurants() []entity.Restaurant {
	return srv.restaurantRepo.ListRestaurants()
}
