package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/seventwentyholdings/storefront/internal/cart"
	"github.com/seventwentyholdings/storefront/internal/orderlog"
	"github.com/seventwentyholdings/storefront/internal/pricing"
	"github.com/seventwentyholdings/storefront/internal/session"
)

var (
	// ErrTermsNotAccepted blocks submission until the terms checkbox is
	// ticked.
	ErrTermsNotAccepted = errors.New("checkout: terms and conditions not accepted")

	// ErrEmptyCart rejects checkout entry or submission with nothing in
	// the cart; the caller redirects back to the shop.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrNotAtReview rejects submission before the wizard has been walked
	// to the review step.
	ErrNotAtReview = errors.New("checkout: wizard has not reached the review step")
)

// Placer turns a completed wizard into an order: it computes final totals
// through the shared pricing tables, appends the order to the log, and
// clears the cart and checkout promo.
type Placer struct {
	carts    *cart.Store
	sessions session.Store
	orders   orderlog.Repository

	now     func() time.Time
	randInt func(n int) int
}

func NewPlacer(carts *cart.Store, sessions session.Store, orders orderlog.Repository) *Placer {
	return &Placer{
		carts:    carts,
		sessions: sessions,
		orders:   orders,
		now:      time.Now,
		randInt:  rand.IntN,
	}
}

// PlaceOrder submits the wizard. On success the cart and the checkout
// promo key are cleared and the appended order is returned for the
// confirmation view.
func (p *Placer) PlaceOrder(ctx context.Context, sessionID string, s State, termsAccepted bool) (*orderlog.Order, error) {
	if !termsAccepted {
		return nil, ErrTermsNotAccepted
	}
	if s.Step != StepReview {
		return nil, ErrNotAtReview
	}

	items, err := p.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	promo := p.checkoutPromo(ctx, sessionID)

	subtotal := cart.Subtotal(items)
	fee := pricing.MethodDelivery(s.Delivery.Method, subtotal)
	totals := pricing.Compute(subtotal, fee, promo)

	order := &orderlog.Order{
		OrderNumber: p.orderNumber(),
		CreatedAt:   p.now().UTC(),
		Contact:     s.Contact,
		Address:     s.Address,
		Delivery:    s.Delivery,
		Payment:     s.Payment,
		Items:       items,
		Promo:       promo,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Discount:    totals.Discount,
		Total:       totals.Total,
		Status:      orderlog.StatusPending,
	}

	if err := p.orders.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("checkout: append order: %w", err)
	}

	// The order is durable at this point; a failed cleanup leaves a
	// stale cart, not a lost order.
	if err := p.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := p.sessions.Delete(ctx, sessionID, session.KeyCheckoutPromo); err != nil {
		return nil, fmt.Errorf("checkout: clear promo: %w", err)
	}

	return order, nil
}

// checkoutPromo reads the promo applied on the checkout page. The cart
// page stores its promo under a separate key and does not feed into
// placement.
func (p *Placer) checkoutPromo(ctx context.Context, sessionID string) *pricing.Promo {
	var promo pricing.Promo
	if err := p.sessions.Get(ctx, sessionID, session.KeyCheckoutPromo, &promo); err != nil {
		return nil
	}
	return &promo
}

// orderNumber generates 720-<year>-<4-digit-random>. The suffix is not
// collision-checked.
func (p *Placer) orderNumber() string {
	return fmt.Sprintf("720-%d-%04d", p.now().Year(), p.randInt(10000))
}
