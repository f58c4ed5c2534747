package checkout

import (
	"fmt"
	"strings"

	"github.com/seventwentyholdings/storefront/internal/cart"
	"github.com/seventwentyholdings/storefront/internal/pricing"
)

// Review is the final-step projection of all prior inputs plus the live
// cart. It is computed, never stored.
type Review struct {
	Contact  string          `json:"contact"`
	Address  string          `json:"address"`
	Delivery string          `json:"delivery"`
	Payment  string          `json:"payment"`
	Items    []cart.LineItem `json:"items"`
	Totals   pricing.Totals  `json:"totals"`
}

// BuildReview renders the review screen content from the wizard state,
// the cart contents, and the optional checkout promo.
func (s State) BuildReview(items []cart.LineItem, promo *pricing.Promo) Review {
	subtotal := cart.Subtotal(items)
	fee := pricing.MethodDelivery(s.Delivery.Method, subtotal)

	delivery := pricing.DeliveryMethodName(s.Delivery.Method)
	if s.Delivery.Installation {
		delivery += "\n+ Professional Installation Scheduled"
	}

	return Review{
		Contact: fmt.Sprintf("%s %s\n%s\n%s",
			s.Contact.FirstName, s.Contact.LastName, s.Contact.Email, s.Contact.Phone),
		Address: fmt.Sprintf("%s\n%s\n%s, %s County",
			s.Address.Address, s.Address.Landmark, s.Address.Town, titleCase(s.Address.County)),
		Delivery: delivery,
		Payment:  paymentLabel(s.Payment),
		Items:    items,
		Totals:   pricing.Compute(subtotal, fee, promo),
	}
}

func paymentLabel(method string) string {
	switch method {
	case pricing.PaymentMpesa:
		return "M-Pesa (Paybill: 247247)"
	case pricing.PaymentBank:
		return "Bank Transfer (Equity Bank)"
	default:
		return pricing.PaymentMethodName(method)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
