// Package wishlist keeps the per-session set of wished-for product ids,
// independent of the cart.
package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/seventwentyholdings/storefront/internal/session"
)

// Store toggles and lists wishlist entries for a session.
type Store struct {
	sessions session.Store
}

func NewStore(sessions session.Store) *Store {
	return &Store{sessions: sessions}
}

// Get returns the wished-for product ids in insertion order.
func (s *Store) Get(ctx context.Context, sessionID string) ([]int, error) {
	var ids []int
	err := s.sessions.Get(ctx, sessionID, session.KeyWishlist, &ids)
	if errors.Is(err, session.ErrNotFound) {
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("wishlist: load: %w", err)
	}
	return ids, nil
}

// Toggle adds the product to the wishlist, or removes it when already
// present, and reports whether it is now wished for.
func (s *Store) Toggle(ctx context.Context, sessionID string, productID int) (bool, error) {
	ids, err := s.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}

	added := true
	kept := ids[:0]
	for _, id := range ids {
		if id == productID {
			added = false
			continue
		}
		kept = append(kept, id)
	}
	if added {
		kept = append(kept, productID)
	}

	if err := s.sessions.Set(ctx, sessionID, session.KeyWishlist, kept); err != nil {
		return false, fmt.Errorf("wishlist: save: %w", err)
	}
	return added, nil
}
