// Package sqlite provides a SQLite-backed implementation of
// orderlog.Repository.
//
// WAL mode is enabled on Open so that readers never block writers and
// vice versa — the place-order handler writes while the order-lookup
// handler may be reading.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/seventwentyholdings/storefront/internal/cart"
	"github.com/seventwentyholdings/storefront/internal/orderlog"
	"github.com/seventwentyholdings/storefront/internal/pricing"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// which keeps the Docker build on Alpine straightforward.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup.
// The table is append-only: one immutable row per placed order.
const schema = `
CREATE TABLE IF NOT EXISTS orders (
    -- Surrogate primary key — auto-incremented by SQLite.
    id              INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Customer-facing order number (720-<year>-<4 digits>).
    -- Not UNIQUE: the random suffix may collide; newest row wins on lookup.
    order_number    TEXT        NOT NULL,

    -- Lifecycle state. Always 'pending' at append time; never updated here.
    status          TEXT        NOT NULL,

    -- Wizard inputs, JSON-serialised.
    contact         TEXT        NOT NULL,
    address         TEXT        NOT NULL,
    delivery        TEXT        NOT NULL,
    payment         TEXT        NOT NULL,

    -- Cart snapshot at placement time, JSON array of line items.
    items           TEXT        NOT NULL,

    -- Applied promo, JSON object or NULL.
    promo           TEXT,

    -- Computed totals in whole KES.
    subtotal        REAL        NOT NULL,
    delivery_fee    REAL        NOT NULL,
    discount        REAL        NOT NULL,
    total           REAL        NOT NULL,

    -- Wall-clock placement time (RFC3339 stored as TEXT, SQLite idiom).
    created_at      TEXT        NOT NULL
);

-- Index for the confirmation-view lookup by order number.
CREATE INDEX IF NOT EXISTS idx_orders_order_number ON orders(order_number, created_at);
`

// Repository is the SQLite implementation of orderlog.Repository.
type Repository struct {
	db *sql.DB
}

var _ orderlog.Repository = (*Repository)(nil)

// Open opens (or creates) the SQLite database at the given path and
// applies the schema.
//
//	repo, err := sqlite.Open("./data/orders.db")
func Open(path string) (*Repository, error) {
	// The pure-Go driver uses _pragma query parameters to configure
	// connection state. WAL enables concurrent readers; busy_timeout
	// waits for locks instead of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Append inserts a new order row. Safe to call concurrently.
func (r *Repository) Append(ctx context.Context, order *orderlog.Order) error {
	const q = `
		INSERT INTO orders
			(order_number, status, contact, address, delivery, payment,
			 items, promo, subtotal, delivery_fee, discount, total, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	contact, err := json.Marshal(order.Contact)
	if err != nil {
		return fmt.Errorf("sqlite: encode contact: %w", err)
	}
	address, err := json.Marshal(order.Address)
	if err != nil {
		return fmt.Errorf("sqlite: encode address: %w", err)
	}
	delivery, err := json.Marshal(order.Delivery)
	if err != nil {
		return fmt.Errorf("sqlite: encode delivery: %w", err)
	}
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("sqlite: encode items: %w", err)
	}
	var promo any
	if order.Promo != nil {
		raw, err := json.Marshal(order.Promo)
		if err != nil {
			return fmt.Errorf("sqlite: encode promo: %w", err)
		}
		promo = string(raw)
	}

	_, err = r.db.ExecContext(ctx, q,
		order.OrderNumber,
		string(order.Status),
		string(contact),
		string(address),
		string(delivery),
		order.Payment,
		string(items),
		promo,
		order.Subtotal,
		order.DeliveryFee,
		order.Discount,
		order.Total,
		order.CreatedAt.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: append order %q: %w", order.OrderNumber, err)
	}
	return nil
}

// ByNumber returns the most recent order with the given number.
func (r *Repository) ByNumber(ctx context.Context, orderNumber string) (*orderlog.Order, error) {
	const q = `
		SELECT order_number, status, contact, address, delivery, payment,
		       items, COALESCE(promo,''), subtotal, delivery_fee, discount, total, created_at
		FROM   orders
		WHERE  order_number = ?
		ORDER  BY created_at DESC, id DESC
		LIMIT  1`

	row := r.db.QueryRowContext(ctx, q, orderNumber)

	var (
		order     orderlog.Order
		status    string
		contact   string
		address   string
		delivery  string
		items     string
		promo     string
		createdAt string
	)
	err := row.Scan(
		&order.OrderNumber,
		&status,
		&contact,
		&address,
		&delivery,
		&order.Payment,
		&items,
		&promo,
		&order.Subtotal,
		&order.DeliveryFee,
		&order.Discount,
		&order.Total,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite: order %q not found", orderNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get order %q: %w", orderNumber, err)
	}

	order.Status = orderlog.Status(status)
	if err := json.Unmarshal([]byte(contact), &order.Contact); err != nil {
		return nil, fmt.Errorf("sqlite: decode contact for %q: %w", orderNumber, err)
	}
	if err := json.Unmarshal([]byte(address), &order.Address); err != nil {
		return nil, fmt.Errorf("sqlite: decode address for %q: %w", orderNumber, err)
	}
	if err := json.Unmarshal([]byte(delivery), &order.Delivery); err != nil {
		return nil, fmt.Errorf("sqlite: decode delivery for %q: %w", orderNumber, err)
	}
	if items != "" {
		if err := json.Unmarshal([]byte(items), &order.Items); err != nil {
			return nil, fmt.Errorf("sqlite: decode items for %q: %w", orderNumber, err)
		}
	} else {
		order.Items = []cart.LineItem{}
	}
	if promo != "" {
		var p pricing.Promo
		if err := json.Unmarshal([]byte(promo), &p); err != nil {
			return nil, fmt.Errorf("sqlite: decode promo for %q: %w", orderNumber, err)
		}
		order.Promo = &p
	}

	order.CreatedAt, err = parseRFC3339(createdAt)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// applySchema runs the DDL statements once. Idempotent due to IF NOT EXISTS.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}
