package service

import (
	"context"
	"sync"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/shipping"
)

// ProductGetter resolves catalog products for price snapshots at add time.
type ProductGetter interface {
	Get(id int64) (domain.Product, error)
}

// CouponValidator revalidates an applied coupon at summary time, so an
// admin deactivating or deleting a coupon takes effect on the next read
// of every cart that holds it.
type CouponValidator interface {
	Validate(ctx context.Context, code string) (*domain.Coupon, error)
}

// CartService provides business logic for shopping cart operations.
// Carts are keyed by session ID and live in memory; totals are never
// stored, always derived from the lines on read.
type CartService interface {
	// AddItem adds quantity units of a product variant to the session's
	// cart, snapshotting the product's list price. Adding an existing
	// (product, color, size) combination increments its line.
	AddItem(ctx context.Context, sessionID string, productID int64, color, size string, quantity int) (*domain.CartSummary, error)

	// Decrement lowers a line's quantity by one, removing it at zero.
	Decrement(ctx context.Context, sessionID, lineID string) (*domain.CartSummary, error)

	// RemoveItem deletes a line regardless of quantity.
	RemoveItem(ctx context.Context, sessionID, lineID string) (*domain.CartSummary, error)

	// Clear empties the cart and detaches any coupon.
	Clear(ctx context.Context, sessionID string) error

	// ApplyCoupon attaches a coupon code after validating it. A cart holds
	// at most one coupon; applying a second replaces the first.
	ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.CartSummary, error)

	// RemoveCoupon detaches the applied coupon, if any.
	RemoveCoupon(ctx context.Context, sessionID string) (*domain.CartSummary, error)

	// Summary computes the cart totals: subtotal, coupon discount,
	// shipping, and total.
	Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error)
}

// cart is the per-session mutable state. Everything derived (subtotal,
// discount, shipping, total) is computed on read, never stored here.
type cart struct {
	lines      []domain.CartLine
	couponCode string
}

type cartService struct {
	mu       sync.Mutex
	carts    map[string]*cart
	catalog  ProductGetter
	coupons  CouponValidator
	shipping shipping.Calculator
}

// NewCartService creates a new CartService instance.
func NewCartService(catalog ProductGetter, coupons CouponValidator, calc shipping.Calculator) CartService {
	return &cartService{
		carts:    make(map[string]*cart),
		catalog:  catalog,
		coupons:  coupons,
		shipping: calc,
	}
}

// get returns the session's cart, creating an empty one on first touch.
// Callers hold s.mu.
func (s *cartService) get(sessionID string) *cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &cart{}
		s.carts[sessionID] = c
	}
	return c
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, productID int64, color, size string, quantity int) (*domain.CartSummary, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.Get(productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(sessionID)
	lineID := domain.LineID(productID, color, size)

	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines[i].Quantity += quantity
			return s.summarize(ctx, c), nil
		}
	}

	c.lines = append(c.lines, domain.CartLine{
		LineID:         lineID,
		ProductID:      product.ID,
		Name:           product.Name,
		UnitPriceCents: product.PriceCents,
		Quantity:       quantity,
		Color:          color,
		Size:           size,
		Image:          product.PrimaryImage(),
	})
	return s.summarize(ctx, c), nil
}

func (s *cartService) Decrement(ctx context.Context, sessionID, lineID string) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(sessionID)
	for i := range c.lines {
		if c.lines[i].LineID != lineID {
			continue
		}
		c.lines[i].Quantity--
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		break
	}
	// An absent line is a no-op, not an error; the client may be acting
	// on a stale view of the cart.
	return s.summarize(ctx, c), nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID, lineID string) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(sessionID)
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	return s.summarize(ctx, c), nil
}

func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

func (s *cartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.CartSummary, error) {
	coupon, err := s.coupons.Validate(ctx, code)
	if err != nil {
		// Unknown and inactive codes look the same from the cart.
		return nil, ErrInvalidCoupon
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(sessionID)
	c.couponCode = coupon.Code
	return s.summarize(ctx, c), nil
}

func (s *cartService) RemoveCoupon(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(sessionID)
	c.couponCode = ""
	return s.summarize(ctx, c), nil
}

func (s *cartService) Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.summarize(ctx, s.get(sessionID)), nil
}

// summarize derives the totals for a cart. The attached coupon is
// revalidated on every call; a coupon that has been deactivated or
// removed since it was applied silently contributes no discount and is
// detached. Callers hold s.mu.
func (s *cartService) summarize(ctx context.Context, c *cart) *domain.CartSummary {
	summary := &domain.CartSummary{
		Lines: make([]domain.CartLine, len(c.lines)),
	}
	copy(summary.Lines, c.lines)

	for _, l := range c.lines {
		summary.ItemCount += l.Quantity
		summary.SubtotalCents += l.SubtotalCents()
	}

	if c.couponCode != "" {
		coupon, err := s.coupons.Validate(ctx, c.couponCode)
		if err != nil {
			c.couponCode = ""
		} else {
			summary.AppliedCoupon = coupon
			summary.DiscountCents = coupon.DiscountCents(summary.SubtotalCents)
		}
	}

	discounted := summary.SubtotalCents - summary.DiscountCents
	if discounted < 0 {
		discounted = 0
	}

	summary.ShippingCents = s.shipping.Cost(shipping.CostParams{
		ItemCount:     summary.ItemCount,
		SubtotalCents: discounted,
	})
	summary.TotalCents = discounted + summary.ShippingCents
	return summary
}
