package pricing

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var testTariff = Tariff{
	FreeDeliveryThreshold: 1500,
	DeliveryFee:           149,
	ServiceFee:            29,
	PromoDiscountPercent:  10,
	LoyaltyAccrualPercent: 5,
}

func cartOf(lines ...entity.CartLine) entity.Cart {
	return entity.Cart(lines)
}

func line(price, quantity int) entity.CartLine {
	return entity.CartLine{Product: &entity.Product{Price: price}, Quantity: quantity}
}

func TestCompute_EmptyCartWaivesEverything(t *testing.T) {
	quote := Compute(nil, false, testTariff)

	assert.Zero(t, quote.Subtotal)
	assert.Zero(t, quote.DeliveryFee)
	assert.Zero(t, quote.ServiceFee)
	assert.Zero(t, quote.Discount)
	assert.Zero(t, quote.Total)
	assert.Zero(t, quote.LoyaltyAccrual)
}

func TestCompute_SubtotalIsSumOfLines(t *testing.T) {
	quote := Compute(cartOf(line(549, 2), line(690, 1)), false, testTariff)

	assert.Equal(t, 1788, quote.Subtotal)
}

func TestCompute_FreeDeliveryAboveThreshold(t *testing.T) {
	quote := Compute(cartOf(line(549, 2), line(690, 1)), false, testTariff)

	assert.Equal(t, 1788, quote.Subtotal)
	assert.Equal(t, 0, quote.DeliveryFee)
	assert.Equal(t, 29, quote.ServiceFee)
	assert.Equal(t, 1817, quote.Total)
}

func TestCompute_DeliveryChargedAtThreshold(t *testing.T) {
	// Exactly at the threshold still pays for delivery; only exceeding it
	// waives the fee.
	quote := Compute(cartOf(line(1500, 1)), false, testTariff)

	assert.Equal(t, 149, quote.DeliveryFee)
}

func TestCompute_PromoDiscountRoundsDown(t *testing.T) {
	quote := Compute(cartOf(line(1000, 1)), true, testTariff)

	assert.Equal(t, 100, quote.Discount)
	assert.Equal(t, 1000+149+29-100, quote.Total)
}

func TestCompute_NoPromoNoDiscount(t *testing.T) {
	quote := Compute(cartOf(line(1000, 1)), false, testTariff)

	assert.Zero(t, quote.Discount)
	assert.Equal(t, 1178, quote.Total)
}

func TestCompute_LoyaltyAccrualRoundsDown(t *testing.T) {
	quote := Compute(cartOf(line(1000, 1)), true, testTariff)

	// total 1078 -> floor(1078 * 0.05) = 53
	assert.Equal(t, 53, quote.LoyaltyAccrual)
}

func TestCompute_IsDeterministic(t *testing.T) {
	cart := cartOf(line(549, 3), line(350, 2))

	first := Compute(cart, true, testTariff)
	second := Compute(cart, true, testTariff)

	assert.Equal(t, first, second)
}
