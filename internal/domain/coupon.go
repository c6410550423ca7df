package domain

// Coupon-related domain errors.
var (
	ErrCouponNotFound = &Error{Code: ENOTFOUND, Message: "Coupon not found"}
	ErrCouponInactive = &Error{Code: EINVALID, Message: "Coupon is not active"}
)

// Coupon is a named percentage discount toggled active/inactive by an admin.
// Codes are unique case-insensitively and stored uppercased.
type Coupon struct {
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discount_percentage"`
	IsActive           bool   `json:"is_active"`
}

// DiscountCents computes the discount this coupon grants on a subtotal.
// Integer cent math, truncating toward zero; a percentage in [1,100] can
// never exceed the subtotal.
func (c Coupon) DiscountCents(subtotalCents int64) int64 {
	return subtotalCents * int64(c.DiscountPercentage) / 100
}
