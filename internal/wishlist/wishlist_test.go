package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventwentyholdings/storefront/internal/session"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewStore(session.NewMemoryStore())
	ctx := context.Background()

	added, err := s.Toggle(ctx, "sid", 7)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Toggle(ctx, "sid", 3)
	require.NoError(t, err)
	assert.True(t, added)

	ids, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 3}, ids)

	added, err = s.Toggle(ctx, "sid", 7)
	require.NoError(t, err)
	assert.False(t, added)

	ids, err = s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids)
}

func TestGetEmptyWishlist(t *testing.T) {
	s := NewStore(session.NewMemoryStore())

	ids, err := s.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
