package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventwentyholdings/storefront/internal/catalog"
	"github.com/seventwentyholdings/storefront/internal/session"
)

const sid = "test-session"

func newTestStore() *Store {
	return NewStore(session.NewMemoryStore())
}

func TestGetEmptyCart(t *testing.T) {
	s := newTestStore()

	items, err := s.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddSnapshotsProduct(t *testing.T) {
	s := newTestStore()
	p := catalog.Product{
		ID:         7,
		Name:       "Solar Flood Light",
		Subsidiary: catalog.SubsidiarySunWatch,
		Price:      5500,
		Images:     []string{"/img/flood.jpg"},
	}

	items, err := s.Add(context.Background(), sid, p, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, LineItem{
		ProductID:  7,
		Name:       "Solar Flood Light",
		Price:      5500,
		Subsidiary: catalog.SubsidiarySunWatch,
		Quantity:   2,
		Image:      "/img/flood.jpg",
	}, items[0])
}

func TestAddMergesExistingLine(t *testing.T) {
	s := newTestStore()
	p := catalog.Product{ID: 1, Name: "Rod", Price: 2500}

	_, err := s.Add(context.Background(), sid, p, 2)
	require.NoError(t, err)
	items, err := s.Add(context.Background(), sid, p, 3)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	s := newTestStore()

	_, err := s.Add(context.Background(), sid, catalog.Product{ID: 3, Price: 100}, 1)
	require.NoError(t, err)
	_, err = s.Add(context.Background(), sid, catalog.Product{ID: 1, Price: 100}, 1)
	require.NoError(t, err)
	items, err := s.Add(context.Background(), sid, catalog.Product{ID: 2, Price: 100}, 1)
	require.NoError(t, err)

	ids := []int{items[0].ProductID, items[1].ProductID, items[2].ProductID}
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(context.Background(), sid, catalog.Product{ID: 1, Price: 100}, 1)
	require.NoError(t, err)

	items, err := s.UpdateQuantity(context.Background(), sid, 99, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemove(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(context.Background(), sid, catalog.Product{ID: 1, Price: 100}, 1)
	require.NoError(t, err)
	_, err = s.Add(context.Background(), sid, catalog.Product{ID: 2, Price: 200}, 1)
	require.NoError(t, err)

	items, err := s.Remove(context.Background(), sid, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)
}

func TestClear(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(context.Background(), sid, catalog.Product{ID: 1, Price: 100}, 1)
	require.NoError(t, err)

	require.NoError(t, s.Clear(context.Background(), sid))

	items, err := s.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSubtotalAndCount(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Price: 2500, Quantity: 2},
		{ProductID: 2, Price: 950, Quantity: 3},
	}
	assert.Equal(t, 7850.0, Subtotal(items))
	assert.Equal(t, 5, Count(items))
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{50, 50},
		{99, 99},
		{100, 99},
		{1000, 99},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampQuantity(tt.in), "clamp(%d)", tt.in)
	}
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(context.Background(), "session-a", catalog.Product{ID: 1, Price: 100}, 1)
	require.NoError(t, err)

	items, err := s.Get(context.Background(), "session-b")
	require.NoError(t, err)
	assert.Empty(t, items)
}
