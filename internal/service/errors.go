package service

import (
	"github.com/esenmoda/esen/internal/domain"
)

// Cart validation errors - use domain.EINVALID
var (
	ErrInvalidQuantity   = domain.Errorf(domain.EINVALID, "", "Quantity must be greater than 0")
	ErrCouponCodeMissing = domain.Errorf(domain.EINVALID, "", "Coupon code is required")

	// ErrInvalidCoupon is the single failure a cart reports for a coupon
	// that cannot be applied. Whether the code is unknown or merely
	// deactivated stays inside the registry; a shopper sees one outcome.
	ErrInvalidCoupon = domain.Errorf(domain.EINVALID, "", "Coupon code is invalid or inactive")
)

// Coupon registry errors
var (
	ErrInvalidPercentage = domain.Errorf(domain.EINVALID, "", "Discount percentage must be between 1 and 100")
)

// Auth errors
var (
	ErrNotLoggedIn   = domain.Errorf(domain.EUNAUTHORIZED, "", "Not logged in")
	ErrEmailRequired = domain.Errorf(domain.EINVALID, "", "Email is required")
	ErrNameRequired  = domain.Errorf(domain.EINVALID, "", "Name is required")
)
