package httpx

import (
	"github.com/seventwentyholdings/storefront/internal/cart"
	"github.com/seventwentyholdings/storefront/internal/catalog"
	"github.com/seventwentyholdings/storefront/internal/checkout"
	"github.com/seventwentyholdings/storefront/internal/orderlog"
	"github.com/seventwentyholdings/storefront/internal/pricing"
)

type AddCartItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type PromoRequest struct {
	Code string `json:"code"`
}

type DeliveryRequest struct {
	County  string `json:"county"`
	Address string `json:"address"`
}

// CheckoutUpdateRequest carries the current step's fields for a forward
// transition. Only the block for the step being validated needs to be
// present.
type CheckoutUpdateRequest struct {
	Contact  *orderlog.Contact  `json:"contact,omitempty"`
	Address  *orderlog.Address  `json:"address,omitempty"`
	Delivery *orderlog.Delivery `json:"delivery,omitempty"`
	Payment  *string            `json:"payment,omitempty"`
}

type PlaceOrderRequest struct {
	TermsAccepted bool `json:"terms_accepted"`
}

type WishlistRequest struct {
	ProductID int `json:"product_id"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type CatalogResponse struct {
	Products     []catalog.Product `json:"products"`
	Page         int               `json:"page"`
	ShowingStart int               `json:"showing_start"`
	ShowingEnd   int               `json:"showing_end"`
	Total        int               `json:"total"`
	HasMore      bool              `json:"has_more"`
}

type CartResponse struct {
	Items    []cart.LineItem `json:"items"`
	Count    int             `json:"count"`
	Subtotal float64         `json:"subtotal"`
}

type SummaryResponse struct {
	Items     []cart.LineItem `json:"items"`
	Totals    pricing.Totals  `json:"totals"`
	PromoCode string          `json:"promo_code,omitempty"`
	ETA       string          `json:"eta,omitempty"`
}

type CheckoutResponse struct {
	Step   int              `json:"step"`
	Name   string           `json:"step_name"`
	State  checkout.State   `json:"state"`
	Review *checkout.Review `json:"review,omitempty"`
}

type OrderResponse struct {
	OrderNumber      string          `json:"order_number"`
	Status           string          `json:"status"`
	OrderDate        string          `json:"order_date"`
	PaymentMethod    string          `json:"payment_method"`
	DeliveryEstimate string          `json:"delivery_estimate"`
	Items            []cart.LineItem `json:"items"`
	Subtotal         float64         `json:"subtotal"`
	DeliveryFee      float64         `json:"delivery_fee"`
	Discount         float64         `json:"discount"`
	Total            float64         `json:"total"`
}

type FormResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	AutoReply string `json:"auto_reply,omitempty"`
}

type WishlistResponse struct {
	ProductID int    `json:"product_id"`
	Wished    bool   `json:"wished"`
	Message   string `json:"message"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
