package state

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_IsDeep(t *testing.T) {
	original := &State{
		Cart: entity.Cart{
			{Product: &entity.Product{ID: "1", Price: 549}, Quantity: 2},
		},
		Orders: []entity.Order{
			{ID: "o1", Items: []string{"Бургер"}, Status: entity.OrderActive},
		},
		Payment: entity.PaymentProfile{
			Cards:          []entity.Card{{ID: "c1", Last4: "4242"}},
			SelectedCardID: "c1",
		},
	}

	clone := original.Clone()
	clone.Cart[0].Quantity = 99
	clone.Cart = append(clone.Cart, entity.CartLine{Product: &entity.Product{ID: "2"}, Quantity: 1})
	clone.Orders[0].Items[0] = "changed"
	clone.Orders[0].Status = entity.OrderDelivered
	clone.Payment.Cards[0].Last4 = "0000"

	require.Len(t, original.Cart, 1)
	assert.Equal(t, 2, original.Cart[0].Quantity)
	assert.Equal(t, "Бургер", original.Orders[0].Items[0])
	assert.Equal(t, entity.OrderActive, original.Orders[0].Status)
	assert.Equal(t, "4242", original.Payment.Cards[0].Last4)
}

func TestClone_SharesCatalogPointers(t *testing.T) {
	product := &entity.Product{ID: "1"}
	original := &State{Cart: entity.Cart{{Product: product, Quantity: 1}}}

	clone := original.Clone()

	assert.Same(t, product, clone.Cart[0].Product)
}
