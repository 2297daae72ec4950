// Package seed loads the startup dataset: the product catalog, promotions,
// restaurant list, and the initial account state. The dataset is read once
// at process start and never written back.
package seed

import (
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/state"
)

// Dataset is the parsed and validated seed data.
type Dataset struct {
	Categories  []entity.Category
	Products    []*entity.Product
	Promotions  []entity.Promotion
	Restaurants []entity.Restaurant

	initial initialRecord
}

// document mirrors the yaml layout of the seed file.
type document struct {
	Catalog struct {
		Categories []categoryRecord `koanf:"categories" validate:"required,min=1,dive"`
		Products   []productRecord  `koanf:"products" validate:"required,min=1,dive"`
	} `koanf:"catalog"`
	Promotions  []promotionRecord  `koanf:"promotions" validate:"dive"`
	Restaurants []restaurantRecord `koanf:"restaurants" validate:"dive"`
	Initial     initialRecord      `koanf:"initial"`
}

type categoryRecord struct {
	ID   string            `koanf:"id" validate:"required"`
	Name map[string]string `koanf:"name" validate:"required"`
	Icon string            `koanf:"icon"`
}

type productRecord struct {
	ID          string            `koanf:"id" validate:"required"`
	Name        map[string]string `koanf:"name" validate:"required"`
	Description map[string]string `koanf:"description"`
	Price       int               `koanf:"price" validate:"gt=0"`
	Calories    int               `koanf:"calories" validate:"gte=0"`
	Proteins    int               `koanf:"proteins" validate:"gte=0"`
	Fats        int               `koanf:"fats" validate:"gte=0"`
	Carbs       int               `koanf:"carbs" validate:"gte=0"`
	Category    string            `koanf:"category" validate:"required"`
	Image       string            `koanf:"image"`
}

type promotionRecord struct {
	ID          string            `koanf:"id" validate:"required"`
	Title       map[string]string `koanf:"title" validate:"required"`
	Description map[string]string `koanf:"description"`
	Code        string            `koanf:"code"`
	DiscountTag string            `koanf:"discountTag"`
	Image       string            `koanf:"image"`
	ExpiryDate  map[string]string `koanf:"expiryDate"`
	Color       string            `koanf:"color"`
}

type restaurantRecord struct {
	ID       string `koanf:"id" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	Address  string `koanf:"address"`
	Hours    string `koanf:"hours"`
	Status   string `koanf:"status" validate:"oneof=open closed"`
	Distance string `koanf:"distance"`
	Image    string `koanf:"image"`
	Phone    string `koanf:"phone"`
}

type cardRecord struct {
	ID         string `koanf:"id" validate:"required"`
	Last4      string `koanf:"last4" validate:"required,len=4,numeric"`
	Brand      string `koanf:"brand" validate:"oneof=visa mastercard mir"`
	Expiry     string `koanf:"expiry" validate:"required"`
	HolderName string `koanf:"holderName"`
	Color      string `koanf:"color"`
}

type orderRecord struct {
	ID     string   `koanf:"id" validate:"required"`
	Date   string   `koanf:"date"`
	Total  int      `koanf:"total" validate:"gte=0"`
	Items  []string `koanf:"items"`
	Status string   `koanf:"status" validate:"oneof=active delivered cancelled"`
	Image  string   `koanf:"image"`
}

type initialRecord struct {
	User struct {
		Name          string `koanf:"name" validate:"required"`
		Avatar        string `koanf:"avatar"`
		Email         string `koanf:"email" validate:"omitempty,email"`
		Phone         string `koanf:"phone"`
		LoyaltyPoints int    `koanf:"loyaltyPoints" validate:"gte=0"`
	} `koanf:"user"`
	Notifications struct {
		OrderStatus     bool `koanf:"orderStatus"`
		DeliveryUpdates bool `koanf:"deliveryUpdates"`
		Promotions      bool `koanf:"promotions"`
	} `koanf:"notifications"`
	Location     string        `koanf:"location" validate:"required"`
	DeliveryType string        `koanf:"deliveryType" validate:"oneof=delivery pickup"`
	DeliveryTime string        `koanf:"deliveryTime" validate:"required"`
	Cards        []cardRecord  `koanf:"cards" validate:"dive"`
	SelectedCard string        `koanf:"selectedCard"`
	Payment      string        `koanf:"paymentMethod" validate:"oneof=card cash"`
	Orders       []orderRecord `koanf:"orders" validate:"dive"`
}

// Load reads, validates, and converts the seed file named by the config.
func Load(cfg *config.Config) (*Dataset, error) {
	koanfInstance := koanf.New(".")
	if err := koanfInstance.Load(file.Provider(cfg.Seed.Path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed file %s failed", cfg.Seed.Path)
	}

	var doc document
	if err := koanfInstance.Unmarshal("", &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal seed file failed")
	}

	if err := validator.New().Struct(&doc); err != nil {
		return nil, errors.Wrap(err, "seed data validation failed")
	}

	dataset := &Dataset{initial: doc.Initial}

	for _, record := range doc.Catalog.Categories {
		dataset.Categories = append(dataset.Categories, entity.Category{
			ID:   record.ID,
			Name: localized(record.Name),
			Icon: record.Icon,
		})
	}

	categoryIDs := make(map[string]struct{}, len(dataset.Categories))
	for _, category := range dataset.Categories {
		categoryIDs[category.ID] = struct{}{}
	}

	for _, record := range doc.Catalog.Products {
		if _, ok := categoryIDs[record.Category]; !ok {
			return nil, errors.Errorf("product %s references unknown category %s", record.ID, record.Category)
		}
		dataset.Products = append(dataset.Products, &entity.Product{
			ID:          record.ID,
			Name:        localized(record.Name),
			Description: localized(record.Description),
			Price:       record.Price,
			Calories:    record.Calories,
			Proteins:    record.Proteins,
			Fats:        record.Fats,
			Carbs:       record.Carbs,
			CategoryID:  record.Category,
			Image:       record.Image,
		})
	}

	for _, record := range doc.Promotions {
		dataset.Promotions = append(dataset.Promotions, entity.Promotion{
			ID:          record.ID,
			Title:       localized(record.Title),
			Description: localized(record.Description),
			Code:        record.Code,
			DiscountTag: record.DiscountTag,
			Image:       record.Image,
			ExpiryLabel: localized(record.ExpiryDate),
			Color:       record.Color,
		})
	}

	for _, record := range doc.Restaurants {
		dataset.Restaurants = append(dataset.Restaurants, entity.Restaurant{
			ID:       record.ID,
			Name:     record.Name,
			Address:  record.Address,
			Hours:    record.Hours,
			Status:   entity.RestaurantStatus(record.Status),
			Distance: record.Distance,
			Image:    record.Image,
			Phone:    record.Phone,
		})
	}

	return dataset, nil
}

// InitialState builds the process-start snapshot from the seeded account
// data. The cart starts empty and navigation rests on the home screen.
func (d *Dataset) InitialState(defaultLanguage entity.Language) *state.State {
	initial := d.initial

	snapshot := &state.State{
		User: entity.UserProfile{
			Name:          initial.User.Name,
			Avatar:        initial.User.Avatar,
			Email:         initial.User.Email,
			Phone:         initial.User.Phone,
			LoyaltyPoints: initial.User.LoyaltyPoints,
		},
		Notifications: entity.NotificationPrefs{
			OrderStatus:     initial.Notifications.OrderStatus,
			DeliveryUpdates: initial.Notifications.DeliveryUpdates,
			Promotions:      initial.Notifications.Promotions,
		},
		Delivery: entity.DeliveryContext{
			Location: initial.Location,
			Type:     entity.DeliveryType(initial.DeliveryType),
			Time:     initial.DeliveryTime,
		},
		Payment: entity.PaymentProfile{
			SelectedCardID: initial.SelectedCard,
			Method:         entity.PaymentMethod(initial.Payment),
		},
		Nav:              entity.NavigationState{Active: entity.ScreenHome},
		SelectedCategory: entity.CategoryAll,
		Language:         defaultLanguage,
	}

	for _, record := range initial.Cards {
		snapshot.Payment.Cards = append(snapshot.Payment.Cards, entity.Card{
			ID:         record.ID,
			Last4:      record.Last4,
			Brand:      entity.CardBrand(record.Brand),
			Expiry:     record.Expiry,
			HolderName: record.HolderName,
			Color:      record.Color,
		})
	}

	for _, record := range initial.Orders {
		snapshot.Orders = append(snapshot.Orders, entity.Order{
			ID:        record.ID,
			DateLabel: record.Date,
			Total:     record.Total,
			Items:     record.Items,
			Status:    entity.OrderStatus(record.Status),
			Image:     record.Image,
		})
	}

	return snapshot
}

func localized(values map[string]string) entity.LocalizedText {
	if len(values) == 0 {
		return nil
	}

	text := make(entity.LocalizedText, len(values))
	for lang, value := range values {
		text[entity.Language(lang)] = value
	}

	return text
}
