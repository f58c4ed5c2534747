// Package session provides the per-session key/value state shared by the
// cart, wishlist, promo, and checkout components.
//
// Each value is a JSON blob stored under a named key within a session.
// Writes are immediate and unbatched; concurrent writers to the same
// session race last-writer-wins with no version check. That is an accepted
// limitation of this storage model, not a bug to fix here.
package session

import (
	"context"
	"errors"
)

// Storage keys. No component reads another component's key.
const (
	KeyCart          = "sevenTwentyCart"
	KeyWishlist      = "sevenTwentyWishlist"
	KeyCartPromo     = "appliedPromo"
	KeyCheckoutPromo = "checkoutPromo"
	KeyCheckout      = "checkoutState"
)

// ErrNotFound is returned by Get when the key has never been written or
// has been deleted.
var ErrNotFound = errors.New("session: key not found")

// Store is the port for session state. Implementations must marshal v to
// JSON on Set and unmarshal into v on Get.
type Store interface {
	Get(ctx context.Context, sessionID, key string, v any) error
	Set(ctx context.Context, sessionID, key string, v any) error
	Delete(ctx context.Context, sessionID, key string) error
}
