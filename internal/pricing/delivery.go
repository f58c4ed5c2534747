package pricing

import "strings"

// FreeDeliveryThreshold is the subtotal above which standard Nairobi
// delivery is free.
const FreeDeliveryThreshold = 10000

// Delivery fee tiers, in whole KES.
const (
	nairobiFee = 500
	midTierFee = 800
	townFee    = 1500
	topTierFee = 2000
	expressFee = 1500
)

// Delivery methods offered at checkout.
const (
	MethodStandard = "standard"
	MethodExpress  = "express"
	MethodPickup   = "pickup"
)

// Payment methods offered at checkout.
const (
	PaymentMpesa = "mpesa"
	PaymentCard  = "card"
	PaymentBank  = "bank"
	PaymentCOD   = "cod"
)

// DeliveryQuote is the fee and lead-time estimate for a destination.
type DeliveryQuote struct {
	Fee float64 `json:"fee"`
	ETA string  `json:"eta"`
}

// CountyDelivery estimates the delivery fee for a county. Nairobi is free
// above the threshold, two neighbouring counties get a mid tier, a fixed
// set of major towns gets a higher tier, and everywhere else gets the top
// tier.
func CountyDelivery(county string, subtotal float64) DeliveryQuote {
	switch strings.ToLower(strings.TrimSpace(county)) {
	case "nairobi":
		fee := float64(nairobiFee)
		if subtotal >= FreeDeliveryThreshold {
			fee = 0
		}
		return DeliveryQuote{Fee: fee, ETA: "1-2 business days"}
	case "kiambu", "thika":
		return DeliveryQuote{Fee: midTierFee, ETA: "2-3 business days"}
	case "mombasa", "kisumu", "nakuru", "eldoret":
		return DeliveryQuote{Fee: townFee, ETA: "3-5 business days"}
	default:
		return DeliveryQuote{Fee: topTierFee, ETA: "5-7 business days"}
	}
}

// MethodDelivery is the fee for a checkout delivery method. Standard
// shares the Nairobi free-above-threshold rule; pickup is always free.
// Unknown methods fall back to standard.
func MethodDelivery(method string, subtotal float64) float64 {
	switch method {
	case MethodExpress:
		return expressFee
	case MethodPickup:
		return 0
	default:
		if subtotal >= FreeDeliveryThreshold {
			return 0
		}
		return nairobiFee
	}
}

// DeliveryEstimate is the customer-facing lead time for a method.
func DeliveryEstimate(method string) string {
	switch method {
	case MethodExpress:
		return "1-2 business days"
	case MethodPickup:
		return "Ready in 24 hours"
	default:
		return "3-5 business days"
	}
}

// DeliveryMethodName is the review-screen label for a method.
func DeliveryMethodName(method string) string {
	switch method {
	case MethodExpress:
		return "Express Delivery (1-2 business days)"
	case MethodPickup:
		return "Store Pickup (Nairobi Warehouse)"
	default:
		return "Standard Delivery (3-5 business days)"
	}
}

// PaymentMethodName is the customer-facing name for a payment method.
func PaymentMethodName(method string) string {
	switch method {
	case PaymentMpesa:
		return "M-Pesa"
	case PaymentCard:
		return "Credit/Debit Card"
	case PaymentBank:
		return "Bank Transfer"
	case PaymentCOD:
		return "Cash on Delivery"
	default:
		return method
	}
}

// ValidDeliveryMethod reports whether method is one of the offered
// delivery options.
func ValidDeliveryMethod(method string) bool {
	return method == MethodStandard || method == MethodExpress || method == MethodPickup
}

// ValidPaymentMethod reports whether method is one of the offered payment
// options.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMpesa, PaymentCard, PaymentBank, PaymentCOD:
		return true
	}
	return false
}
