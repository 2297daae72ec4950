package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/state"
	"storefront/internal/infra/memory"
	"storefront/internal/infra/schedule"
	"storefront/internal/infra/seed"
	"storefront/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Pricing: &config.PricingConfig{
			FreeDeliveryThreshold: 1500,
			DeliveryFee:           149,
			ServiceFee:            29,
			PromoDiscountPercent:  10,
			LoyaltyAccrualPercent: 5,
		},
		Checkout: &config.CheckoutConfig{
			ProcessingDelay:    2500 * time.Millisecond,
			SuccessReturnDelay: 5 * time.Second,
		},
	}

	return cfg
}

func testCatalogRepo() repository.CatalogRepository {
	dataset := &seed.Dataset{
		Categories: []entity.Category{
			{ID: entity.CategoryAll, Name: entity.LocalizedText{entity.LanguageRU: "Все", entity.LanguageEN: "All"}},
			{ID: "burgers", Name: entity.LocalizedText{entity.LanguageRU: "Бургеры", entity.LanguageEN: "Burgers"}},
			{ID: "pizza", Name: entity.LocalizedText{entity.LanguageRU: "Пицца", entity.LanguageEN: "Pizza"}},
		},
		Products: []*entity.Product{
			{
				ID:         "1",
				Name:       entity.LocalizedText{entity.LanguageRU: "Биг Роял Бургер", entity.LanguageEN: "Big Royal Burger"},
				Price:      549,
				CategoryID: "burgers",
			},
			{
				ID:         "2",
				Name:       entity.LocalizedText{entity.LanguageRU: "Пицца Маргарита", entity.LanguageEN: "Pizza Margherita"},
				Price:      690,
				CategoryID: "pizza",
			},
			{
				ID:         "3",
				Name:       entity.LocalizedText{entity.LanguageRU: "Сет Филадельфия", entity.LanguageEN: "Philadelphia Set"},
				Price:      1250,
				CategoryID: "pizza",
			},
		},
	}

	return memory.NewCatalogRepository(dataset)
}

func testInitialState() *state.State {
	return &state.State{
		User: entity.UserProfile{
			Name:          "Алекс Романов",
			Email:         "alex.r@example.com",
			LoyaltyPoints: 1250,
		},
		Delivery: entity.DeliveryContext{
			Location: "Пресненская наб., 12, Москва",
			Type:     entity.DeliveryCourier,
			Time:     entity.DeliveryTimeASAP,
		},
		Payment: entity.PaymentProfile{
			Cards: []entity.Card{
				{ID: "c1", Last4: "4242", Brand: entity.BrandVisa, Expiry: "09/27", HolderName: "ALEX ROMANOV"},
			},
			SelectedCardID: "c1",
			Method:         entity.PaymentCard,
		},
		Nav:              entity.NavigationState{Active: entity.ScreenHome},
		SelectedCategory: entity.CategoryAll,
		Language:         entity.LanguageRU,
	}
}

func newTestStore() (*store.Store, *schedule.Manual) {
	scheduler := schedule.NewManual()

	return store.NewStore(testInitialState(), testLogger(), scheduler), scheduler
}
