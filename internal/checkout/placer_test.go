package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventwentyholdings/storefront/internal/cart"
	"github.com/seventwentyholdings/storefront/internal/catalog"
	"github.com/seventwentyholdings/storefront/internal/orderlog"
	"github.com/seventwentyholdings/storefront/internal/pricing"
	"github.com/seventwentyholdings/storefront/internal/session"
)

// fakeRepository is an in-memory orderlog.Repository for tests.
type fakeRepository struct {
	appended []*orderlog.Order
}

func (f *fakeRepository) Append(ctx context.Context, order *orderlog.Order) error {
	f.appended = append(f.appended, order)
	return nil
}

func (f *fakeRepository) ByNumber(ctx context.Context, orderNumber string) (*orderlog.Order, error) {
	for i := len(f.appended) - 1; i >= 0; i-- {
		if f.appended[i].OrderNumber == orderNumber {
			return f.appended[i], nil
		}
	}
	return nil, assert.AnError
}

type placerFixture struct {
	placer   *Placer
	carts    *cart.Store
	sessions session.Store
	repo     *fakeRepository
}

func newPlacerFixture(t *testing.T) *placerFixture {
	t.Helper()
	sessions := session.NewMemoryStore()
	carts := cart.NewStore(sessions)
	repo := &fakeRepository{}

	placer := NewPlacer(carts, sessions, repo)
	placer.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	placer.randInt = func(n int) int { return 42 }

	return &placerFixture{placer: placer, carts: carts, sessions: sessions, repo: repo}
}

func reviewState() State {
	return State{
		Step: StepReview,
		Contact: orderlog.Contact{
			FirstName: "Wanjiru", LastName: "Kamau",
			Email: "wanjiru@example.com", Phone: "0712345678",
		},
		Address:  orderlog.Address{County: "nairobi", Town: "Westlands", Address: "Mpaka Road"},
		Delivery: orderlog.Delivery{Method: pricing.MethodStandard},
		Payment:  pricing.PaymentMpesa,
	}
}

func TestPlaceOrder(t *testing.T) {
	fx := newPlacerFixture(t)
	ctx := context.Background()

	_, err := fx.carts.Add(ctx, "sid", catalog.Product{ID: 1, Name: "Rod", Price: 5000}, 2)
	require.NoError(t, err)

	order, err := fx.placer.PlaceOrder(ctx, "sid", reviewState(), true)
	require.NoError(t, err)

	assert.Equal(t, "720-2026-0042", order.OrderNumber)
	assert.Equal(t, orderlog.StatusPending, order.Status)
	assert.Equal(t, 10000.0, order.Subtotal)
	assert.Equal(t, 0.0, order.DeliveryFee) // free above threshold
	assert.Equal(t, 0.0, order.Discount)
	assert.Equal(t, 10000.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// One row appended, cart cleared afterwards.
	require.Len(t, fx.repo.appended, 1)
	items, err := fx.carts.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPlaceOrderAppliesCheckoutPromoAndClearsIt(t *testing.T) {
	fx := newPlacerFixture(t)
	ctx := context.Background()

	_, err := fx.carts.Add(ctx, "sid", catalog.Product{ID: 1, Price: 5000}, 1)
	require.NoError(t, err)
	promo := pricing.Promo{Code: "WELCOME10", Type: pricing.PromoPercentage, Value: 0.10}
	require.NoError(t, fx.sessions.Set(ctx, "sid", session.KeyCheckoutPromo, promo))

	order, err := fx.placer.PlaceOrder(ctx, "sid", reviewState(), true)
	require.NoError(t, err)

	assert.Equal(t, 500.0, order.Discount)
	assert.Equal(t, 500.0, order.DeliveryFee) // below threshold
	assert.Equal(t, 5000.0, order.Total)

	var gone pricing.Promo
	assert.ErrorIs(t, fx.sessions.Get(ctx, "sid", session.KeyCheckoutPromo, &gone), session.ErrNotFound)
}

func TestPlaceOrderIgnoresCartPagePromo(t *testing.T) {
	fx := newPlacerFixture(t)
	ctx := context.Background()

	_, err := fx.carts.Add(ctx, "sid", catalog.Product{ID: 1, Price: 5000}, 1)
	require.NoError(t, err)
	promo := pricing.Promo{Code: "SAVE20", Type: pricing.PromoPercentage, Value: 0.20}
	require.NoError(t, fx.sessions.Set(ctx, "sid", session.KeyCartPromo, promo))

	order, err := fx.placer.PlaceOrder(ctx, "sid", reviewState(), true)
	require.NoError(t, err)

	assert.Zero(t, order.Discount)
}

func TestPlaceOrderRequiresTerms(t *testing.T) {
	fx := newPlacerFixture(t)

	_, err := fx.placer.PlaceOrder(context.Background(), "sid", reviewState(), false)
	assert.ErrorIs(t, err, ErrTermsNotAccepted)
	assert.Empty(t, fx.repo.appended)
}

func TestPlaceOrderRequiresReviewStep(t *testing.T) {
	fx := newPlacerFixture(t)
	s := reviewState()
	s.Step = StepPayment

	_, err := fx.placer.PlaceOrder(context.Background(), "sid", s, true)
	assert.ErrorIs(t, err, ErrNotAtReview)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	fx := newPlacerFixture(t)

	_, err := fx.placer.PlaceOrder(context.Background(), "sid", reviewState(), true)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, fx.repo.appended)
}

func TestOrderNumberFormat(t *testing.T) {
	fx := newPlacerFixture(t)
	fx.placer.randInt = func(n int) int {
		assert.Equal(t, 10000, n)
		return 7
	}

	assert.Equal(t, "720-2026-0007", fx.placer.orderNumber())
}
