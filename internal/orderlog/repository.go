package orderlog

import "context"

// Repository is the port for persisting orders. The checkout wizard
// depends on this abstraction, not on SQLite directly, so tests can swap
// in an in-memory implementation.
type Repository interface {
	// Append persists a new order. The log is append-only; there is no
	// update or delete.
	Append(ctx context.Context, order *Order) error

	// ByNumber returns the most recently appended order with the given
	// number. Order numbers are not guaranteed unique, so the newest row
	// wins.
	ByNumber(ctx context.Context, orderNumber string) (*Order, error)
}
