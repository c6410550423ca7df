// Package shipping computes the shipping charge for a cart.
// Implementations are rule-based; there is no carrier integration.
package shipping

import "github.com/esenmoda/esen/internal/domain"

// CostParams describes the cart state a shipping charge is computed from.
// SubtotalCents is the post-discount subtotal: the free-shipping threshold
// is evaluated against what the buyer actually pays.
type CostParams struct {
	ItemCount     int
	SubtotalCents int64
}

// Calculator computes the shipping charge for a cart, in cents.
type Calculator interface {
	Cost(params CostParams) int64
}

// PolicyFunc supplies the current shipping policy. Reading through a
// function lets admin settings changes apply to the next cart read
// without rebuilding the calculator.
type PolicyFunc func() domain.ShippingPolicy
