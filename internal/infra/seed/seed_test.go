package seed

import (
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSeed = `
catalog:
  categories:
    - id: all
      name: { ru: "Все", en: "All" }
    - id: burgers
      name: { ru: "Бургеры", en: "Burgers" }
  products:
    - id: "1"
      name: { ru: "Биг Роял Бургер", en: "Big Royal Burger" }
      price: 549
      calories: 650
      category: burgers
promotions:
  - id: p1
    title: { ru: "Два по цене одного" }
    code: START20
    discountTag: "-20%"
restaurants:
  - id: r1
    name: "NomNom Сити"
    address: "Тверская ул., 1"
    status: open
initial:
  user:
    name: "Алекс Романов"
    email: "alex.r@example.com"
    loyaltyPoints: 1250
  notifications:
    orderStatus: true
    deliveryUpdates: true
    promotions: false
  location: "Пресненская наб., 12, Москва"
  deliveryType: delivery
  deliveryTime: "ASAP"
  cards:
    - id: c1
      last4: "4242"
      brand: visa
      expiry: "09/27"
      holderName: "ALEX ROMANOV"
  selectedCard: c1
  paymentMethod: card
  orders:
    - id: o1
      date: "12.05, 14:30"
      total: 1240
      items: ["Биг Роял Бургер"]
      status: delivered
`

func writeSeed(t *testing.T, content string) *config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := &config.Config{}
	cfg.Seed.Path = path

	return cfg
}

func TestLoad(t *testing.T) {
	dataset, err := Load(writeSeed(t, validSeed))

	require.NoError(t, err)
	require.Len(t, dataset.Categories, 2)
	require.Len(t, dataset.Products, 1)
	assert.Equal(t, "Big Royal Burger", dataset.Products[0].Name.In(entity.LanguageEN))
	assert.Equal(t, 549, dataset.Products[0].Price)
	assert.Equal(t, "burgers", dataset.Products[0].CategoryID)

	require.Len(t, dataset.Promotions, 1)
	assert.Equal(t, "START20", dataset.Promotions[0].Code)

	require.Len(t, dataset.Restaurants, 1)
	assert.Equal(t, entity.RestaurantOpen, dataset.Restaurants[0].Status)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Seed.Path = filepath.Join(t.TempDir(), "absent.yaml")

	_, err := Load(cfg)
	assert.Error(t, err)
}

func TestLoad_ProductWithUnknownCategory(t *testing.T) {
	broken := `
catalog:
  categories:
    - id: all
      name: { ru: "Все" }
  products:
    - id: "1"
      name: { ru: "Бургер" }
      price: 549
      category: burgers
initial:
  user:
    name: "Алекс"
  location: "Москва"
  deliveryType: delivery
  deliveryTime: "ASAP"
  paymentMethod: card
`

	_, err := Load(writeSeed(t, broken))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestLoad_RejectsInvalidRecords(t *testing.T) {
	broken := `
catalog:
  categories:
    - id: all
      name: { ru: "Все" }
  products:
    - id: "1"
      name: { ru: "Бургер" }
      price: -5
      category: all
initial:
  user:
    name: "Алекс"
  location: "Москва"
  deliveryType: delivery
  deliveryTime: "ASAP"
  paymentMethod: card
`

	_, err := Load(writeSeed(t, broken))
	assert.Error(t, err)
}

func TestDataset_InitialState(t *testing.T) {
	dataset, err := Load(writeSeed(t, validSeed))
	require.NoError(t, err)

	snapshot := dataset.InitialState(entity.LanguageRU)

	assert.Equal(t, "Алекс Романов", snapshot.User.Name)
	assert.Equal(t, 1250, snapshot.User.LoyaltyPoints)
	assert.True(t, snapshot.Notifications.OrderStatus)
	assert.False(t, snapshot.Notifications.Promotions)
	assert.Equal(t, entity.DeliveryCourier, snapshot.Delivery.Type)
	assert.Equal(t, entity.DeliveryTimeASAP, snapshot.Delivery.Time)

	require.Len(t, snapshot.Payment.Cards, 1)
	assert.Equal(t, entity.BrandVisa, snapshot.Payment.Cards[0].Brand)
	assert.Equal(t, "c1", snapshot.Payment.SelectedCardID)
	assert.Equal(t, entity.PaymentCard, snapshot.Payment.Method)

	require.Len(t, snapshot.Orders, 1)
	assert.Equal(t, entity.OrderDelivered, snapshot.Orders[0].Status)

	assert.Empty(t, snapshot.Cart)
	assert.Equal(t, entity.ScreenHome, snapshot.Nav.Active)
	assert.Equal(t, entity.CategoryAll, snapshot.SelectedCategory)
	assert.Equal(t, entity.LanguageRU, snapshot.Language)
}
