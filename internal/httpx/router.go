package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/seventwentyholdings/storefront/internal/httpx/middlewares"
)

// NewRouter mounts the storefront API. assetsDir, when non-empty, is
// served under /assets/ so the fragments and catalog feed can be hosted
// by the same process in local dev.
func NewRouter(h *Handler, assetsDir string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.Session)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Get("/summary", h.CartSummary)
		r.Post("/items", h.AddCartItem)
		r.Put("/items/{id}", h.UpdateCartItem)
		r.Delete("/items/{id}", h.RemoveCartItem)
		r.Post("/promo", h.ApplyCartPromo)
		r.Post("/delivery", h.DeliveryQuote)
	})

	r.Route("/wishlist", func(r chi.Router) {
		r.Get("/", h.GetWishlist)
		r.Post("/toggle", h.ToggleWishlist)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Post("/", h.StartCheckout)
		r.Get("/", h.GetCheckout)
		r.Post("/next", h.CheckoutNext)
		r.Post("/back", h.CheckoutBack)
		r.Post("/cancel", h.CheckoutCancel)
		r.Post("/promo", h.ApplyCheckoutPromo)
		r.Post("/place", h.PlaceOrder)
	})

	r.Get("/orders/{number}", h.GetOrder)

	r.Post("/contact", h.SubmitContact)
	r.Post("/quote", h.SubmitQuote)
	r.Post("/chat", h.Chat)

	r.Get("/shell/header", h.ShellHeader)
	r.Get("/shell/footer", h.ShellFooter)

	if assetsDir != "" {
		fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir)))
		r.Get("/assets/*", fs.ServeHTTP)
	}

	return r
}
