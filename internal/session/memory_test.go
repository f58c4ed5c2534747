package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sid", KeyCart, []int{1, 2, 3}))

	var got []int
	require.NoError(t, s.Get(ctx, "sid", KeyCart, &got))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	var got []int
	err := s.Get(context.Background(), "sid", KeyWishlist, &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sid", KeyCartPromo, "WELCOME10"))
	require.NoError(t, s.Delete(ctx, "sid", KeyCartPromo))

	var got string
	assert.ErrorIs(t, s.Get(ctx, "sid", KeyCartPromo, &got), ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete(ctx, "sid", KeyCartPromo))
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", KeyCheckout, "state-a"))

	var got string
	assert.ErrorIs(t, s.Get(ctx, "b", KeyCheckout, &got), ErrNotFound)
}
