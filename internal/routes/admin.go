package routes

import (
	"github.com/esenmoda/esen/internal/middleware"
	"github.com/esenmoda/esen/internal/router"
)

// RegisterAdminRoutes registers all admin panel routes.
// All routes are protected by the admin authentication middleware.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	admin := r.Group(middleware.RequireAdmin)

	// Coupon management
	admin.Get("/admin/coupons", deps.CouponHandler.List)
	admin.Post("/admin/coupons", deps.CouponHandler.Upsert)
	admin.Patch("/admin/coupons/{code}", deps.CouponHandler.SetActive)
	admin.Delete("/admin/coupons/{code}", deps.CouponHandler.Delete)

	// Order management
	admin.Get("/admin/orders", deps.OrderHandler.List)
	admin.Get("/admin/orders/{id}", deps.OrderHandler.Get)
	admin.Put("/admin/orders/{id}/status", deps.OrderHandler.UpdateStatus)

	// Product management
	admin.Put("/admin/products/{id}", deps.ProductHandler.Update)

	// Shipping settings
	admin.Get("/admin/settings/shipping", deps.SettingsHandler.GetShipping)
	admin.Put("/admin/settings/shipping", deps.SettingsHandler.UpdateShipping)
}
