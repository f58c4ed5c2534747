// Package orderlog defines the domain types for the append-only order log.
//
// An order is written exactly once, when the checkout wizard places it,
// and is never mutated or removed by the application afterwards. The log
// exists so a placed order can be looked up by its number for the
// confirmation view and later follow-up.
package orderlog

import (
	"time"

	"github.com/seventwentyholdings/storefront/internal/cart"
	"github.com/seventwentyholdings/storefront/internal/pricing"
)

// Status is the lifecycle state of an order. Orders are initialized
// pending and this system never transitions them; fulfilment happens
// outside it.
type Status string

const StatusPending Status = "pending"

// Contact is the customer contact block captured in step one of checkout.
type Contact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Address is the delivery destination captured in step two.
type Address struct {
	County   string `json:"county"`
	Town     string `json:"town"`
	Address  string `json:"address"`
	Landmark string `json:"landmark,omitempty"`
	Building string `json:"building,omitempty"`
	Floor    string `json:"floor,omitempty"`
}

// Delivery is the chosen delivery method plus the optional installation
// add-on.
type Delivery struct {
	Method       string `json:"method"`
	Installation bool   `json:"installation"`
}

// Order is one row in the order log: the cart snapshot, the wizard
// inputs, and the computed totals at placement time.
type Order struct {
	// OrderNumber has the form 720-<year>-<4-digit-random>. The random
	// suffix is not collision-checked; global uniqueness is not
	// guaranteed and that is acceptable for this scope.
	OrderNumber string          `json:"orderNumber"`
	CreatedAt   time.Time       `json:"orderDate"`
	Contact     Contact         `json:"contact"`
	Address     Address         `json:"address"`
	Delivery    Delivery        `json:"delivery"`
	Payment     string          `json:"payment"`
	Items       []cart.LineItem `json:"cart"`
	Promo       *pricing.Promo  `json:"promo,omitempty"`
	Subtotal    float64         `json:"subtotal"`
	DeliveryFee float64         `json:"deliveryFee"`
	Discount    float64         `json:"discount"`
	Total       float64         `json:"total"`
	Status      Status          `json:"status"`
}
