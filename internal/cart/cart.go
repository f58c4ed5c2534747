// Package cart implements the local cart store: an ordered sequence of
// line items, unique by product identifier, persisted through the session
// store. No other component writes the cart key directly.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/seventwentyholdings/storefront/internal/catalog"
	"github.com/seventwentyholdings/storefront/internal/session"
)

// Quantity bounds for a single line item.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// LineItem is one product-with-quantity entry. Name, price, and
// subsidiary are a snapshot captured at add time and are not re-synced
// with the catalog afterwards.
type LineItem struct {
	ProductID  int                `json:"id"`
	Name       string             `json:"name"`
	Price      float64            `json:"price"`
	Subsidiary catalog.Subsidiary `json:"subsidiary"`
	Quantity   int                `json:"quantity"`
	Image      string             `json:"image,omitempty"`
}

// Total is the per-line total.
func (li LineItem) Total() float64 {
	return li.Price * float64(li.Quantity)
}

// Subtotal sums the per-line totals.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.Total()
	}
	return sum
}

// Count is the total quantity across all lines, shown as the header badge.
func Count(items []LineItem) int {
	var n int
	for _, li := range items {
		n += li.Quantity
	}
	return n
}

// ClampQuantity bounds q to [MinQuantity, MaxQuantity]. The UI layer
// clamps before calling the store; the store itself does not.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// Store reads and writes the cart for a session. Every operation is
// synchronous and immediately durable.
type Store struct {
	sessions session.Store
}

func NewStore(sessions session.Store) *Store {
	return &Store{sessions: sessions}
}

// Get returns the cart contents. A session with no cart yet has an empty
// cart, not an error.
func (s *Store) Get(ctx context.Context, sessionID string) ([]LineItem, error) {
	var items []LineItem
	err := s.sessions.Get(ctx, sessionID, session.KeyCart, &items)
	if errors.Is(err, session.ErrNotFound) {
		return []LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart: load: %w", err)
	}
	return items, nil
}

// Set replaces the cart contents wholesale.
func (s *Store) Set(ctx context.Context, sessionID string, items []LineItem) error {
	if err := s.sessions.Set(ctx, sessionID, session.KeyCart, items); err != nil {
		return fmt.Errorf("cart: save: %w", err)
	}
	return nil
}

// Add merges qty into an existing line for the product, or appends a new
// line with a denormalized snapshot of the product. The caller must
// pre-clamp qty; Add performs no clamping of the merged quantity.
func (s *Store) Add(ctx context.Context, sessionID string, p catalog.Product, qty int) ([]LineItem, error) {
	items, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, LineItem{
			ProductID:  p.ID,
			Name:       p.Name,
			Price:      p.Price,
			Subsidiary: p.Subsidiary,
			Quantity:   qty,
			Image:      p.Image(),
		})
	}

	if err := s.Set(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets the quantity of an existing line. Unknown product
// ids are a no-op, mirroring a stale quantity control on an already
// removed line.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, productID, qty int) ([]LineItem, error) {
	items, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			if err := s.Set(ctx, sessionID, items); err != nil {
				return nil, err
			}
			break
		}
	}
	return items, nil
}

// Remove deletes the line for the product, if present.
func (s *Store) Remove(ctx context.Context, sessionID string, productID int) ([]LineItem, error) {
	items, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, li := range items {
		if li.ProductID != productID {
			kept = append(kept, li)
		}
	}

	if err := s.Set(ctx, sessionID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the cart wholesale, as on order placement.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID, session.KeyCart); err != nil {
		return fmt.Errorf("cart: clear: %w", err)
	}
	return nil
}
