package pricing

// Totals is the computed order summary.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// Compute applies an optional promo to a subtotal and delivery fee.
// A percentage promo discounts the subtotal; free shipping zeroes the
// delivery fee. Total = subtotal + deliveryFee - discount.
func Compute(subtotal, deliveryFee float64, promo *Promo) Totals {
	var discount float64
	if promo != nil {
		switch promo.Type {
		case PromoPercentage:
			discount = subtotal * promo.Value
		case PromoFreeShipping:
			deliveryFee = 0
		}
	}
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		Total:       subtotal + deliveryFee - discount,
	}
}
