package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventwentyholdings/storefront/internal/cart"
	"github.com/seventwentyholdings/storefront/internal/orderlog"
	"github.com/seventwentyholdings/storefront/internal/pricing"
)

func openTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func sampleOrder(number string, placedAt time.Time) *orderlog.Order {
	return &orderlog.Order{
		OrderNumber: number,
		CreatedAt:   placedAt,
		Contact: orderlog.Contact{
			FirstName: "Wanjiru", LastName: "Kamau",
			Email: "wanjiru@example.com", Phone: "0712345678",
		},
		Address:  orderlog.Address{County: "nairobi", Town: "Westlands", Address: "Mpaka Road"},
		Delivery: orderlog.Delivery{Method: pricing.MethodStandard},
		Payment:  pricing.PaymentMpesa,
		Items: []cart.LineItem{
			{ProductID: 1, Name: "Rod", Price: 5000, Quantity: 2},
		},
		Subtotal:    10000,
		DeliveryFee: 0,
		Discount:    0,
		Total:       10000,
		Status:      orderlog.StatusPending,
	}
}

func TestAppendAndByNumber(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()
	placedAt := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)

	want := sampleOrder("720-2026-0042", placedAt)
	require.NoError(t, repo.Append(ctx, want))

	got, err := repo.ByNumber(ctx, "720-2026-0042")
	require.NoError(t, err)

	assert.Equal(t, want.OrderNumber, got.OrderNumber)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.Contact, got.Contact)
	assert.Equal(t, want.Address, got.Address)
	assert.Equal(t, want.Delivery, got.Delivery)
	assert.Equal(t, want.Payment, got.Payment)
	assert.Equal(t, want.Items, got.Items)
	assert.Nil(t, got.Promo)
	assert.Equal(t, want.Total, got.Total)
	assert.True(t, placedAt.Equal(got.CreatedAt))
}

func TestByNumberRoundTripsPromo(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	order := sampleOrder("720-2026-0001", time.Now().UTC())
	order.Promo = &pricing.Promo{Code: "WELCOME10", Type: pricing.PromoPercentage, Value: 0.10}
	order.Discount = 1000
	order.Total = 9000
	require.NoError(t, repo.Append(ctx, order))

	got, err := repo.ByNumber(ctx, "720-2026-0001")
	require.NoError(t, err)
	require.NotNil(t, got.Promo)
	assert.Equal(t, "WELCOME10", got.Promo.Code)
	assert.Equal(t, 0.10, got.Promo.Value)
	assert.Equal(t, 1000.0, got.Discount)
}

func TestByNumberUnknownOrder(t *testing.T) {
	repo := openTestRepository(t)

	_, err := repo.ByNumber(context.Background(), "720-2026-9999")
	assert.Error(t, err)
}

func TestByNumberNewestRowWinsOnCollision(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	older := sampleOrder("720-2026-0042", time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	older.Total = 1111
	newer := sampleOrder("720-2026-0042", time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	newer.Total = 2222

	require.NoError(t, repo.Append(ctx, older))
	require.NoError(t, repo.Append(ctx, newer))

	got, err := repo.ByNumber(ctx, "720-2026-0042")
	require.NoError(t, err)
	assert.Equal(t, 2222.0, got.Total)
}
