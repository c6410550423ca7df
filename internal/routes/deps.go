package routes

import (
	"github.com/esenmoda/esen/internal/handler/admin"
	"github.com/esenmoda/esen/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for storefront routes
type StorefrontDeps struct {
	// Catalog browsing
	ProductHandler *storefront.ProductHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout
	CheckoutHandler *storefront.CheckoutHandler

	// Auth (login, register, logout)
	AuthHandler *storefront.AuthHandler

	// Account (profile, favorites, order history)
	AccountHandler *storefront.AccountHandler
}

// AdminDeps contains dependencies for admin routes
type AdminDeps struct {
	// Coupons
	CouponHandler *admin.CouponHandler

	// Orders
	OrderHandler *admin.OrderHandler

	// Products
	ProductHandler *admin.ProductHandler

	// Settings
	SettingsHandler *admin.SettingsHandler
}
