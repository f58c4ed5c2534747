package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seventwentyholdings/storefront/internal/cart"
	"github.com/seventwentyholdings/storefront/internal/catalog"
	"github.com/seventwentyholdings/storefront/internal/chat"
	"github.com/seventwentyholdings/storefront/internal/checkout"
	"github.com/seventwentyholdings/storefront/internal/forms"
	"github.com/seventwentyholdings/storefront/internal/httpx/middlewares"
	"github.com/seventwentyholdings/storefront/internal/orderlog"
	"github.com/seventwentyholdings/storefront/internal/pricing"
	"github.com/seventwentyholdings/storefront/internal/session"
	"github.com/seventwentyholdings/storefront/internal/shell"
	"github.com/seventwentyholdings/storefront/internal/wishlist"
)

// Handler serves the storefront HTTP API: catalog browsing, the cart,
// the checkout wizard, the public forms, and the page shell fragments.
type Handler struct {
	catalog   *catalog.Loader
	carts     *cart.Store
	wishlists *wishlist.Store
	sessions  session.Store
	orders    orderlog.Repository
	placer    *checkout.Placer
	shell     *shell.Loader
}

// NewHandler wires the handler with its stores and loaders.
func NewHandler(
	cl *catalog.Loader,
	cs *cart.Store,
	ws *wishlist.Store,
	ss session.Store,
	or orderlog.Repository,
	pl *checkout.Placer,
	sh *shell.Loader,
) *Handler {
	return &Handler{
		catalog:   cl,
		carts:     cs,
		wishlists: ws,
		sessions:  ss,
		orders:    or,
		placer:    pl,
		shell:     sh,
	}
}

// ── Catalog ──────────────────────────────────────────────────────────────

// ListProducts applies the filter/sort/page state from the query string
// and returns one page of products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	state := viewStateFromQuery(r)
	filtered := catalog.Apply(h.catalog.Load(r.Context()), state)
	page := catalog.Page(filtered, state.Page)
	start, end, total := catalog.ShowingRange(filtered, state.Page)

	writeJSON(w, http.StatusOK, CatalogResponse{
		Products:     page,
		Page:         state.Page,
		ShowingStart: start,
		ShowingEnd:   end,
		Total:        total,
		HasMore:      catalog.HasMore(filtered, state.Page),
	})
}

// GetProduct serves the quick-view lookup for a single product.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product_id", "product id must be numeric")
		return
	}
	p, ok := h.catalog.ByID(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func viewStateFromQuery(r *http.Request) catalog.ViewState {
	q := r.URL.Query()
	state := catalog.NewViewState()

	state.Categories = csv(q.Get("category"))
	state.Materials = csv(q.Get("material"))
	state.Wattages = csv(q.Get("wattage"))
	state.Colors = csv(q.Get("color"))

	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		state.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		state.MaxPrice = v
	}
	if s := q.Get("sort"); s != "" {
		state.Sort = catalog.SortKey(s)
	}
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		state.Page = p
	}
	return state
}

func csv(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ── Cart ─────────────────────────────────────────────────────────────────

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.carts.Get(r.Context(), middlewares.SessionID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_error", err.Error())
		return
	}
	writeCart(w, items)
}

// AddCartItem adds a product to the cart, merging into an existing line.
// The quantity is clamped to [1,99] here, before the store sees it.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	p, ok := h.catalog.ByID(r.Context(), req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}

	items, err := h.carts.Add(r.Context(), middlewares.SessionID(r.Context()), p, cart.ClampQuantity(req.Quantity))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_error", err.Error())
		return
	}
	writeCart(w, items)
}

// UpdateCartItem sets a line's quantity, clamped to [1,99].
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product_id", "product id must be numeric")
		return
	}
	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	items, err := h.carts.UpdateQuantity(r.Context(), middlewares.SessionID(r.Context()), id, cart.ClampQuantity(req.Quantity))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_error", err.Error())
		return
	}
	writeCart(w, items)
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product_id", "product id must be numeric")
		return
	}
	items, err := h.carts.Remove(r.Context(), middlewares.SessionID(r.Context()), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_error", err.Error())
		return
	}
	writeCart(w, items)
}

// CartSummary recomputes the order summary: subtotal, county delivery
// fee, cart-page promo discount, total.
func (h *Handler) CartSummary(w http.ResponseWriter, r *http.Request) {
	sid := middlewares.SessionID(r.Context())
	items, err := h.carts.Get(r.Context(), sid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_error", err.Error())
		return
	}

	subtotal := cart.Subtotal(items)
	var fee float64
	var eta string
	if county := r.URL.Query().Get("county"); county != "" {
		quote := pricing.CountyDelivery(county, subtotal)
		fee = quote.Fee
		eta = quote.ETA
	}

	promo := h.promoFromSession(r, session.KeyCartPromo)
	resp := SummaryResponse{
		Items:  items,
		Totals: pricing.Compute(subtotal, fee, promo),
		ETA:    eta,
	}
	if promo != nil {
		resp.PromoCode = promo.Code
	}
	writeJSON(w, http.StatusOK, resp)
}

// ApplyCartPromo validates a code and persists it under the cart-page
// promo key, independent of the cart contents and of checkout.
func (h *Handler) ApplyCartPromo(w http.ResponseWriter, r *http.Request) {
	h.applyPromo(w, r, session.KeyCartPromo)
}

// DeliveryQuote estimates the delivery fee for a county and address.
func (h *Handler) DeliveryQuote(w http.ResponseWriter, r *http.Request) {
	var req DeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if strings.TrimSpace(req.County) == "" || strings.TrimSpace(req.Address) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "Please select a county and enter your delivery address.")
		return
	}

	items, err := h.carts.Get(r.Context(), middlewares.SessionID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pricing.CountyDelivery(req.County, cart.Subtotal(items)))
}

func (h *Handler) applyPromo(w http.ResponseWriter, r *http.Request, key string) {
	var req PromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeError(w, http.StatusBadRequest, "promo_required", "Please enter a promo code.")
		return
	}

	promo, err := pricing.LookupPromo(req.Code)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_promo", "Invalid promo code. Please try again.")
		return
	}

	if err := h.sessions.Set(r.Context(), middlewares.SessionID(r.Context()), key, promo); err != nil {
		writeError(w, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, promo)
}

func (h *Handler) promoFromSession(r *http.Request, key string) *pricing.Promo {
	var promo pricing.Promo
	err := h.sessions.Get(r.Context(), middlewares.SessionID(r.Context()), key, &promo)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			slog.WarnContext(r.Context(), "promo read failed", "key", key, "error", err)
		}
		return nil
	}
	return &promo
}

// ── Wishlist ─────────────────────────────────────────────────────────────

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ids, err := h.wishlists.Get(r.Context(), middlewares.SessionID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "wishlist_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ids)
}

func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	wished, err := h.wishlists.Toggle(r.Context(), middlewares.SessionID(r.Context()), req.ProductID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "wishlist_error", err.Error())
		return
	}

	msg := "Removed from wishlist"
	if wished {
		msg = "Added to wishlist"
	}
	writeJSON(w, http.StatusOK, WishlistResponse{ProductID: req.ProductID, Wished: wished, Message: msg})
}

// ── Checkout ─────────────────────────────────────────────────────────────

// StartCheckout enters the wizard at the contact step. An empty cart is
// rejected so the client can redirect back to the shop.
func (h *Handler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	sid := middlewares.SessionID(r.Context())
	items, err := h.carts.Get(r.Context(), sid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_error", err.Error())
		return
	}
	if len(items) == 0 {
		writeError(w, http.StatusConflict, "empty_cart", "Your cart is empty. Redirecting to shop page.")
		return
	}

	state := checkout.NewState()
	if err := h.saveCheckout(r, state); err != nil {
		writeError(w, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	h.writeCheckout(w, r, state)
}

func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	state, ok, err := h.loadCheckout(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "checkout_not_started", "")
		return
	}
	h.writeCheckout(w, r, state)
}

// CheckoutNext applies the submitted step fields and advances when the
// current step validates. Field errors come back as 422 and block the
// transition.
func (h *Handler) CheckoutNext(w http.ResponseWriter, r *http.Request) {
	state, ok, err := h.loadCheckout(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "checkout_not_started", "")
		return
	}

	var req CheckoutUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Contact != nil {
		state.Contact = *req.Contact
	}
	if req.Address != nil {
		state.Address = *req.Address
	}
	if req.Delivery != nil {
		state.Delivery = *req.Delivery
	}
	if req.Payment != nil {
		state.Payment = *req.Payment
	}

	if fieldErrs := state.Next(); len(fieldErrs) > 0 {
		// Persist the entered fields even when invalid so the visitor
		// does not retype them.
		if err := h.saveCheckout(r, state); err != nil {
			writeError(w, http.StatusInternalServerError, "session_error", err.Error())
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: "Please fill in all required fields correctly",
			Fields:  fieldErrs,
		})
		return
	}

	if err := h.saveCheckout(r, state); err != nil {
		writeError(w, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	h.writeCheckout(w, r, state)
}

func (h *Handler) CheckoutBack(w http.ResponseWriter, r *http.Request) {
	state, ok, err := h.loadCheckout(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "checkout_not_started", "")
		return
	}

	state.Back()
	if err := h.saveCheckout(r, state); err != nil {
		writeError(w, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	h.writeCheckout(w, r, state)
}

// CheckoutCancel abandons the wizard. The cart is left intact.
func (h *Handler) CheckoutCancel(w http.ResponseWriter, r *http.Request) {
	sid := middlewares.SessionID(r.Context())
	if err := h.sessions.Delete(r.Context(), sid, session.KeyCheckout); err != nil {
		writeError(w, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// ApplyCheckoutPromo persists a promo under the checkout key, separate
// from the cart page's promo.
func (h *Handler) ApplyCheckoutPromo(w http.ResponseWriter, r *http.Request) {
	h.applyPromo(w, r, session.KeyCheckoutPromo)
}

// PlaceOrder submits the wizard from the review step.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sid := middlewares.SessionID(r.Context())
	state, ok, err := h.loadCheckout(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "checkout_not_started", "")
		return
	}

	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	order, err := h.placer.PlaceOrder(r.Context(), sid, state, req.TermsAccepted)
	switch {
	case errors.Is(err, checkout.ErrTermsNotAccepted):
		writeError(w, http.StatusBadRequest, "terms_required",
			"Please agree to the Terms & Conditions and Privacy Policy to continue.")
		return
	case errors.Is(err, checkout.ErrEmptyCart):
		writeError(w, http.StatusConflict, "empty_cart", "Your cart is empty. Redirecting to shop page.")
		return
	case errors.Is(err, checkout.ErrNotAtReview):
		writeError(w, http.StatusConflict, "not_at_review", "Complete all checkout steps before placing the order.")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "order_error", err.Error())
		return
	}

	// The wizard is done; drop its state so a fresh checkout starts over.
	if err := h.sessions.Delete(r.Context(), sid, session.KeyCheckout); err != nil {
		slog.WarnContext(r.Context(), "checkout state cleanup failed", "error", err)
	}

	slog.InfoContext(r.Context(), "order placed",
		"order_number", order.OrderNumber, "total", order.Total, "payment", order.Payment)
	writeJSON(w, http.StatusCreated, mapOrderToResponse(order))
}

// GetOrder serves the confirmation view lookup by order number.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		writeError(w, http.StatusBadRequest, "order_number_required", "")
		return
	}
	order, err := h.orders.ByNumber(r.Context(), number)
	if err != nil {
		writeError(w, http.StatusNotFound, "order_not_found", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

func (h *Handler) loadCheckout(r *http.Request) (checkout.State, bool, error) {
	var state checkout.State
	err := h.sessions.Get(r.Context(), middlewares.SessionID(r.Context()), session.KeyCheckout, &state)
	if errors.Is(err, session.ErrNotFound) {
		return checkout.State{}, false, nil
	}
	if err != nil {
		return checkout.State{}, false, err
	}
	return state, true, nil
}

func (h *Handler) saveCheckout(r *http.Request, state checkout.State) error {
	return h.sessions.Set(r.Context(), middlewares.SessionID(r.Context()), session.KeyCheckout, state)
}

func (h *Handler) writeCheckout(w http.ResponseWriter, r *http.Request, state checkout.State) {
	resp := CheckoutResponse{
		Step:  int(state.Step),
		Name:  state.Step.String(),
		State: state,
	}
	if state.Step == checkout.StepReview {
		items, err := h.carts.Get(r.Context(), middlewares.SessionID(r.Context()))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "cart_error", err.Error())
			return
		}
		review := state.BuildReview(items, h.promoFromSession(r, session.KeyCheckoutPromo))
		resp.Review = &review
	}
	writeJSON(w, http.StatusOK, resp)
}

// ── Forms, chat, shell ───────────────────────────────────────────────────

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var msg forms.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if fieldErrs := msg.Validate(); len(fieldErrs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: "Please fill in all required fields",
			Fields:  fieldErrs,
		})
		return
	}

	slog.InfoContext(r.Context(), "contact form submitted",
		"name", msg.Name, "email", msg.Email, "subject", msg.Subject, "subsidiary", msg.Subsidiary)
	writeJSON(w, http.StatusOK, FormResponse{
		Status:    "received",
		Message:   "Message sent successfully! We will respond within 24 hours.",
		AutoReply: forms.ContactAutoReply(msg.Name),
	})
}

func (h *Handler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	var req forms.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	req.SubmittedAt = time.Now().UTC()

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: "Please fill in all required fields correctly",
			Fields:  fieldErrs,
		})
		return
	}

	slog.InfoContext(r.Context(), "quote request submitted",
		"name", req.Name, "email", req.Email, "products", strings.Join(req.Products, ","))
	writeJSON(w, http.StatusOK, FormResponse{
		Status:    "received",
		Message:   "Quote request submitted successfully! We will respond within 24 hours.",
		AutoReply: forms.QuoteAutoReply(req.Name),
	})
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ChatResponse{Reply: chat.Respond(req.Message)})
}

// ShellHeader composes the header fragment for the page named in the
// query string. Fetch failures degrade to placeholder markup, never an
// HTTP error.
func (h *Handler) ShellHeader(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.shell.Header(r.Context(), r.URL.Query().Get("page")))
}

func (h *Handler) ShellFooter(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.shell.Footer(r.Context(), r.URL.Query().Get("page")))
}

// ── Helpers ──────────────────────────────────────────────────────────────

func writeCart(w http.ResponseWriter, items []cart.LineItem) {
	writeJSON(w, http.StatusOK, CartResponse{
		Items:    items,
		Count:    cart.Count(items),
		Subtotal: cart.Subtotal(items),
	})
}

func mapOrderToResponse(order *orderlog.Order) OrderResponse {
	return OrderResponse{
		OrderNumber:      order.OrderNumber,
		Status:           string(order.Status),
		OrderDate:        order.CreatedAt.Format(time.RFC3339),
		PaymentMethod:    pricing.PaymentMethodName(order.Payment),
		DeliveryEstimate: pricing.DeliveryEstimate(order.Delivery.Method),
		Items:            order.Items,
		Subtotal:         order.Subtotal,
		DeliveryFee:      order.DeliveryFee,
		Discount:         order.Discount,
		Total:            order.Total,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
