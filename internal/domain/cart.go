package domain

import "fmt"

// =============================================================================
// CART DOMAIN TYPES
// =============================================================================

// Cart-related domain errors.
var (
	ErrCartNotFound    = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrSessionNotFound = &Error{Code: ENOTFOUND, Message: "Session not found"}
	ErrEmptyCart       = &Error{Code: EINVALID, Message: "Cart is empty"}
)

// CartLine is one distinct product+variant entry in a cart.
// UnitPriceCents is a snapshot of the product's effective price at add time,
// so later catalog edits never retroactively change an open cart.
type CartLine struct {
	LineID         string `json:"line_id"`
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	Color          string `json:"color,omitempty"`
	Size           string `json:"size,omitempty"`
	Image          string `json:"image,omitempty"`
}

// SubtotalCents returns the line total.
func (l CartLine) SubtotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// LineID derives the deterministic cart line identifier for a product variant.
// Adding the same (product, color, size) twice increments quantity on one line
// instead of creating a duplicate.
func LineID(productID int64, color, size string) string {
	if color == "" {
		color = "default"
	}
	if size == "" {
		size = "default"
	}
	return fmt.Sprintf("%d-%s-%s", productID, color, size)
}

// CartSummary is a derived snapshot of a cart, recomputed on every read.
// AppliedCoupon is nil when no coupon is attached or the attached coupon
// is no longer valid at read time.
type CartSummary struct {
	Lines         []CartLine `json:"lines"`
	ItemCount     int        `json:"item_count"`
	SubtotalCents int64      `json:"subtotal_cents"`
	DiscountCents int64      `json:"discount_cents"`
	ShippingCents int64      `json:"shipping_cents"`
	TotalCents    int64      `json:"total_cents"`
	AppliedCoupon *Coupon    `json:"applied_coupon,omitempty"`
}
