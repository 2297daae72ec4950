package impl

import (
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/errors"
	"storefront/internal/domain/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Submit_CompletesOrder(t *testing.T) {
	appStore, scheduler := newTestStore()
	cart := NewCartService(testCatalogRepo(), appStore, testConfig(), testLogger())
	navigation := NewNavigationService(testCatalogRepo(), appStore, testLogger())
	service := NewCheckoutService(appStore, testConfig(), testLogger())

	cart.AddItem("1", 2) // 1098
	cart.AddItem("2", 1) // + 690 = 1788, free delivery
	require.NoError(t, navigation.GoTo(entity.ScreenCart))
	require.NoError(t, navigation.GoTo(entity.ScreenCheckout))

	require.NoError(t, service.Submit())
	assert.True(t, service.Processing())
	assert.Equal(t, entity.ScreenCheckout, navigation.State().Active, "no transition before the latency elapses")

	// Simulated payment latency elapses.
	require.True(t, scheduler.Fire())

	snapshot := appStore.Snapshot()
	assert.Equal(t, entity.ScreenSuccess, snapshot.Nav.Active)
	assert.Empty(t, snapshot.Cart, "cart is cleared on completion")
	assert.False(t, snapshot.Processing)

	// total 1788 + 29 = 1817, accrual floor(1817 * 0.05) = 90
	assert.Equal(t, 1250+90, snapshot.User.LoyaltyPoints)
	require.NotEmpty(t, snapshot.Orders)
	assert.Equal(t, 1817, snapshot.Orders[0].Total)
	assert.Equal(t, entity.OrderActive, snapshot.Orders[0].Status)
	assert.Equal(t, []string{"Биг Роял Бургер", "Пицца Маргарита"}, snapshot.Orders[0].Items)

	// Auto-return home after the success screen delay.
	require.True(t, scheduler.Fire())
	assert.Equal(t, entity.ScreenHome, appStore.Snapshot().Nav.Active)
}

func TestCheckoutService_Submit_CardWithoutSelectionIsBlocked(t *testing.T) {
	appStore, scheduler := newTestStore()
	cart := NewCartService(testCatalogRepo(), appStore, testConfig(), testLogger())
	payment := NewPaymentService(appStore, testLogger())
	service := NewCheckoutService(appStore, testConfig(), testLogger())

	cart.AddItem("1", 1)
	require.NoError(t, payment.DeleteCard("c1")) // clears the selection too

	before := appStore.Snapshot().Nav.Active
	err := service.Submit()

	assert.ErrorIs(t, err, errors.ErrNoCardSelected)
	assert.False(t, service.Processing(), "no state transition occurs")
	assert.Equal(t, before, appStore.Snapshot().Nav.Active)
	assert.Zero(t, scheduler.Pending(), "no timer starts")
}

func TestCheckoutService_Submit_CashNeedsNoCard(t *testing.T) {
	appStore, scheduler := newTestStore()
	cart := NewCartService(testCatalogRepo(), appStore, testConfig(), testLogger())
	payment := NewPaymentService(appStore, testLogger())
	service := NewCheckoutService(appStore, testConfig(), testLogger())

	cart.AddItem("1", 1)
	require.NoError(t, payment.DeleteCard("c1"))
	require.NoError(t, payment.SetMethod(entity.PaymentCash))

	require.NoError(t, service.Submit())
	assert.Equal(t, 1, scheduler.Pending())
}

func TestCheckoutService_Submit_RefusesResubmission(t *testing.T) {
	appStore, _ := newTestStore()
	cart := NewCartService(testCatalogRepo(), appStore, testConfig(), testLogger())
	service := NewCheckoutService(appStore, testConfig(), testLogger())

	cart.AddItem("1", 1)
	require.NoError(t, service.Submit())

	err := service.Submit()
	assert.ErrorIs(t, err, errors.ErrOrderInProgress)
}

func TestCheckoutService_CancelSubmission(t *testing.T) {
	appStore, scheduler := newTestStore()
	cart := NewCartService(testCatalogRepo(), appStore, testConfig(), testLogger())
	service := NewCheckoutService(appStore, testConfig(), testLogger())

	cart.AddItem("1", 1)
	require.NoError(t, service.Submit())
	require.True(t, service.Processing())

	assert.True(t, service.CancelSubmission())
	assert.False(t, service.Processing())
	assert.False(t, scheduler.Fire(), "cancelled task must not fire")
	assert.NotEmpty(t, appStore.Snapshot().Cart, "aborted submission keeps the cart")

	// Nothing left to cancel.
	assert.False(t, service.CancelSubmission())
}

func TestCheckoutService_ManualNavigationCancelsAutoReturn(t *testing.T) {
	appStore, scheduler := newTestStore()
	cart := NewCartService(testCatalogRepo(), appStore, testConfig(), testLogger())
	navigation := NewNavigationService(testCatalogRepo(), appStore, testLogger())
	service := NewCheckoutService(appStore, testConfig(), testLogger())

	cart.AddItem("1", 1)
	require.NoError(t, service.Submit())
	require.True(t, scheduler.Fire())
	require.Equal(t, entity.ScreenSuccess, appStore.Snapshot().Nav.Active)

	// The user navigates away before the auto-return fires; the stale timer
	// must never drag them back home later.
	require.NoError(t, navigation.GoTo(entity.ScreenMenu))

	assert.False(t, scheduler.Fire())
	assert.Equal(t, entity.ScreenMenu, appStore.Snapshot().Nav.Active)
}

func TestCheckoutService_AnyIntentCancelsAutoReturn(t *testing.T) {
	appStore, scheduler := newTestStore()
	cart := NewCartService(testCatalogRepo(), appStore, testConfig(), testLogger())
	service := NewCheckoutService(appStore, testConfig(), testLogger())

	cart.AddItem("1", 1)
	require.NoError(t, service.Submit())
	require.True(t, scheduler.Fire())
	require.Equal(t, 1, scheduler.Pending())

	// Even a non-navigation intent supersedes the pending auto-return.
	cart.AddItem("2", 1)

	assert.Zero(t, scheduler.Pending())
	assert.Equal(t, entity.ScreenSuccess, appStore.Snapshot().Nav.Active)
}

func TestCheckoutService_CompletionQuoteIncludesPromo(t *testing.T) {
	appStore, scheduler := newTestStore()
	cart := NewCartService(testCatalogRepo(), appStore, testConfig(), testLogger())
	service := NewCheckoutService(appStore, testConfig(), testLogger())

	// 1000 is unreachable with the seeded prices; use 690 + promo instead:
	// 690 + 149 + 29 - 69 = 799, accrual floor(799 * 0.05) = 39.
	cart.AddItem("2", 1)
	require.NoError(t, cart.ApplyPromo("START20"))
	require.NoError(t, service.Submit())
	require.True(t, scheduler.Fire())

	snapshot := appStore.Snapshot()
	require.NotEmpty(t, snapshot.Orders)
	assert.Equal(t, 799, snapshot.Orders[0].Total)
	assert.Equal(t, 1250+39, snapshot.User.LoyaltyPoints)
	assert.False(t, snapshot.PromoApplied, "promo does not survive checkout")
}

func TestCheckoutService_StateIsReplacedNotMutated(t *testing.T) {
	appStore, _ := newTestStore()
	cart := NewCartService(testCatalogRepo(), appStore, testConfig(), testLogger())

	before := appStore.Snapshot()
	cart.AddItem("1", 1)

	assert.Empty(t, before.Cart, "earlier snapshots never see later intents")

	var observed *state.State
	appStore.Subscribe(func(s *state.State) { observed = s })
	cart.AddItem("1", 1)

	require.NotNil(t, observed)
	assert.Equal(t, 2, observed.Cart.Count())
}
