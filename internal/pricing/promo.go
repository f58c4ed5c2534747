// Package pricing centralizes the promo-code table, the delivery-fee
// tiers, and order total computation. The cart summary and the checkout
// wizard both call into this package so their displayed figures cannot
// drift apart.
package pricing

import (
	"errors"
	"strings"
)

// PromoType distinguishes the two promo effects.
type PromoType string

const (
	// PromoPercentage discounts the subtotal by Value (a fraction).
	PromoPercentage PromoType = "percentage"
	// PromoFreeShipping waives the delivery fee.
	PromoFreeShipping PromoType = "free-shipping"
)

// Promo is a static, client-known discount token. There is no expiry or
// usage-limit tracking.
type Promo struct {
	Code  string    `json:"code"`
	Type  PromoType `json:"type"`
	Value float64   `json:"value,omitempty"`
}

// ErrUnknownPromo is returned for codes outside the static table.
var ErrUnknownPromo = errors.New("pricing: unknown promo code")

var promoTable = map[string]Promo{
	"WELCOME10": {Code: "WELCOME10", Type: PromoPercentage, Value: 0.10},
	"SAVE20":    {Code: "SAVE20", Type: PromoPercentage, Value: 0.20},
	"FREESHIP":  {Code: "FREESHIP", Type: PromoFreeShipping},
}

// LookupPromo resolves a code case-insensitively against the static
// enumeration.
func LookupPromo(code string) (Promo, error) {
	p, ok := promoTable[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Promo{}, ErrUnknownPromo
	}
	return p, nil
}
