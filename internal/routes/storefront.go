package routes

import (
	"github.com/esenmoda/esen/internal/middleware"
	"github.com/esenmoda/esen/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing storefront routes.
//
// Auth POST routes (login, register) are not registered here; main wires
// them through a stricter rate limiter.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Catalog browsing
	r.Get("/products", deps.ProductHandler.List)
	r.Get("/products/{id}", deps.ProductHandler.Get)
	r.Get("/categories", deps.ProductHandler.Categories)

	// Shopping cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/items", deps.CartHandler.AddItem)
	r.Post("/cart/items/{lineID}/decrement", deps.CartHandler.DecrementItem)
	r.Delete("/cart/items/{lineID}", deps.CartHandler.RemoveItem)
	r.Delete("/cart", deps.CartHandler.Clear)
	r.Post("/cart/coupon", deps.CartHandler.ApplyCoupon)
	r.Delete("/cart/coupon", deps.CartHandler.RemoveCoupon)

	// Logout needs no rate limiting; it only invalidates a token.
	r.Post("/logout", deps.AuthHandler.Logout)

	// Checkout and account routes require a signed-in user
	account := r.Group(middleware.RequireAuth)
	account.Post("/checkout", deps.CheckoutHandler.Checkout)
	account.Get("/account", deps.AccountHandler.Profile)
	account.Put("/account", deps.AccountHandler.UpdateProfile)
	account.Get("/account/favorites", deps.AccountHandler.Favorites)
	account.Get("/account/favorites/{productID}", deps.AccountHandler.IsFavorite)
	account.Post("/account/favorites/{productID}", deps.AccountHandler.ToggleFavorite)
	account.Get("/account/orders", deps.AccountHandler.Orders)
	account.Get("/account/orders/{id}", deps.AccountHandler.GetOrder)
}
