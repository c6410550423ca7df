package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability,
// separate from the per-request HTTP metrics in the middleware package.
type BusinessMetrics struct {
	// Product engagement
	ProductViews    *prometheus.CounterVec
	ProductSearches *prometheus.CounterVec

	// Cart
	CartItemsAdded prometheus.Counter
	CartCleared    *prometheus.CounterVec
	CouponApplied  *prometheus.CounterVec
	CouponRejected *prometheus.CounterVec

	// Orders
	OrdersCreated  *prometheus.CounterVec
	OrderValue     *prometheus.HistogramVec
	OrderItemCount prometheus.Histogram

	// Accounts
	Logins           *prometheus.CounterVec
	FavoritesToggled *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "esen"
	}

	subsystem := "business"

	m := &BusinessMetrics{
		ProductViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_views_total",
				Help:      "Total product detail views",
			},
			[]string{"category"},
		),
		ProductSearches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_searches_total",
				Help:      "Total product list requests by filter",
			},
			[]string{"filter_type"}, // filter_type: category, search, sale, price, none
		),
		CartItemsAdded: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_added_total",
				Help:      "Total items added to carts (quantity-aware)",
			},
		),
		CartCleared: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_cleared_total",
				Help:      "Total carts cleared",
			},
			[]string{"reason"}, // reason: purchase, manual
		),
		CouponApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "coupon_applied_total",
				Help:      "Total successful coupon applications",
			},
			[]string{"code"},
		),
		CouponRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "coupon_rejected_total",
				Help:      "Total rejected coupon applications",
			},
			[]string{"reason"}, // reason: not_found, inactive
		),
		OrdersCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_created_total",
				Help:      "Total orders created",
			},
			[]string{"payment_method"},
		),
		OrderValue: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value_cents",
				Help:      "Order value distribution in cents",
				Buckets:   []float64{1000, 2500, 5000, 7500, 10000, 15000, 25000, 50000, 100000},
			},
			[]string{"payment_method"},
		),
		OrderItemCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Number of items per order",
				Buckets:   []float64{1, 2, 3, 5, 10, 15, 20},
			},
		),
		Logins: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "logins_total",
				Help:      "Total successful logins",
			},
			[]string{"user_type"}, // user_type: customer, admin
		),
		FavoritesToggled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "favorites_toggled_total",
				Help:      "Total favorite toggle actions",
			},
			[]string{"state"}, // state: added, removed
		),
	}

	return m
}

// Global instance for easy access from handlers
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace)
	return Business
}

// The Record helpers are safe to call before InitBusinessMetrics, which
// keeps handler tests free of metrics setup.

// RecordProductView records a product detail view.
func RecordProductView(category string) {
	if Business == nil {
		return
	}
	Business.ProductViews.WithLabelValues(category).Inc()
}

// RecordProductSearch records a product list request with its dominant filter.
func RecordProductSearch(filterType string) {
	if Business == nil {
		return
	}
	Business.ProductSearches.WithLabelValues(filterType).Inc()
}

// RecordCartItemsAdded records items added to a cart.
func RecordCartItemsAdded(quantity int) {
	if Business == nil {
		return
	}
	Business.CartItemsAdded.Add(float64(quantity))
}

// RecordCartCleared records a cart being emptied.
func RecordCartCleared(reason string) {
	if Business == nil {
		return
	}
	Business.CartCleared.WithLabelValues(reason).Inc()
}

// RecordCouponApplied records a successful coupon application.
func RecordCouponApplied(code string) {
	if Business == nil {
		return
	}
	Business.CouponApplied.WithLabelValues(code).Inc()
}

// RecordCouponRejected records a rejected coupon application.
func RecordCouponRejected(reason string) {
	if Business == nil {
		return
	}
	Business.CouponRejected.WithLabelValues(reason).Inc()
}

// RecordOrderCreated records a new order with its value and size.
func RecordOrderCreated(paymentMethod string, totalCents int64, itemCount int) {
	if Business == nil {
		return
	}
	Business.OrdersCreated.WithLabelValues(paymentMethod).Inc()
	Business.OrderValue.WithLabelValues(paymentMethod).Observe(float64(totalCents))
	Business.OrderItemCount.Observe(float64(itemCount))
}

// RecordLogin records a successful login.
func RecordLogin(isAdmin bool) {
	if Business == nil {
		return
	}
	userType := "customer"
	if isAdmin {
		userType = "admin"
	}
	Business.Logins.WithLabelValues(userType).Inc()
}

// RecordFavoriteToggled records a favorite being added or removed.
func RecordFavoriteToggled(nowFavorite bool) {
	if Business == nil {
		return
	}
	state := "removed"
	if nowFavorite {
		state = "added"
	}
	Business.FavoritesToggled.WithLabelValues(state).Inc()
}
