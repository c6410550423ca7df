package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/store"
)

// CouponService provides business logic for the discount coupon registry
type CouponService interface {
	// List returns all registered coupons, active or not, sorted by code.
	List(ctx context.Context) ([]domain.Coupon, error)

	// Upsert creates or replaces a coupon. Codes are case-insensitive and
	// stored uppercased; upserting an existing code replaces its percentage
	// and activates it.
	Upsert(ctx context.Context, code string, discountPercentage int) (*domain.Coupon, error)

	// SetActive toggles a coupon without touching its percentage. An
	// unknown code is a no-op and returns a nil coupon.
	SetActive(ctx context.Context, code string, active bool) (*domain.Coupon, error)

	// Remove deletes a coupon from the registry; removing an unknown code
	// is a no-op. Carts holding the removed code lose the discount on
	// their next summary read.
	Remove(ctx context.Context, code string) error

	// Validate resolves a code to its coupon if it exists and is active.
	Validate(ctx context.Context, code string) (*domain.Coupon, error)
}

type couponService struct {
	mu      sync.RWMutex
	coupons map[string]domain.Coupon
	store   store.Store
	logger  *slog.Logger
}

// NewCouponService creates a CouponService backed by the coupons slot.
// When the slot is empty or unreadable the registry starts from the two
// launch coupons.
func NewCouponService(ctx context.Context, st store.Store, logger *slog.Logger) CouponService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &couponService{
		coupons: make(map[string]domain.Coupon),
		store:   st,
		logger:  logger,
	}
	s.restore(ctx)
	return s
}

// defaultCoupons are the registry contents on first run.
func defaultCoupons() []domain.Coupon {
	return []domain.Coupon{
		{Code: "ESEN10", DiscountPercentage: 10, IsActive: true},
		{Code: "BIENVENIDA20", DiscountPercentage: 20, IsActive: true},
	}
}

func (s *couponService) restore(ctx context.Context) {
	record, err := s.store.Load(ctx, store.SlotCoupons)
	if err != nil {
		if !store.IsNotFound(err) {
			s.logger.Warn("coupon registry unreadable, seeding defaults", "error", err)
		}
		for _, c := range defaultCoupons() {
			s.coupons[c.Code] = c
		}
		return
	}

	var coupons []domain.Coupon
	if err := json.Unmarshal(record, &coupons); err != nil {
		s.logger.Warn("coupon registry corrupt, seeding defaults", "error", err)
		for _, c := range defaultCoupons() {
			s.coupons[c.Code] = c
		}
		return
	}

	for _, c := range coupons {
		s.coupons[strings.ToUpper(c.Code)] = c
	}
}

// persist writes the registry to its slot. Callers hold at least a read lock.
func (s *couponService) persist(ctx context.Context) {
	coupons := make([]domain.Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		coupons = append(coupons, c)
	}
	sort.Slice(coupons, func(i, j int) bool { return coupons[i].Code < coupons[j].Code })

	record, err := json.Marshal(coupons)
	if err != nil {
		s.logger.Error("failed to marshal coupon registry", "error", err)
		return
	}
	if err := s.store.Save(ctx, store.SlotCoupons, record); err != nil {
		s.logger.Error("failed to persist coupon registry", "error", err)
	}
}

func (s *couponService) List(ctx context.Context) ([]domain.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coupons := make([]domain.Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		coupons = append(coupons, c)
	}
	sort.Slice(coupons, func(i, j int) bool { return coupons[i].Code < coupons[j].Code })
	return coupons, nil
}

func (s *couponService) Upsert(ctx context.Context, code string, discountPercentage int) (*domain.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCouponCodeMissing
	}
	if discountPercentage < 1 || discountPercentage > 100 {
		return nil, ErrInvalidPercentage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coupon := domain.Coupon{Code: code, DiscountPercentage: discountPercentage, IsActive: true}
	s.coupons[code] = coupon
	s.persist(ctx)
	return &coupon, nil
}

func (s *couponService) SetActive(ctx context.Context, code string, active bool) (*domain.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	s.mu.Lock()
	defer s.mu.Unlock()

	coupon, ok := s.coupons[code]
	if !ok {
		return nil, nil
	}
	coupon.IsActive = active
	s.coupons[code] = coupon
	s.persist(ctx)
	return &coupon, nil
}

func (s *couponService) Remove(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.coupons[code]; !ok {
		return nil
	}
	delete(s.coupons, code)
	s.persist(ctx)
	return nil
}

func (s *couponService) Validate(ctx context.Context, code string) (*domain.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	s.mu.RLock()
	defer s.mu.RUnlock()

	coupon, ok := s.coupons[code]
	if !ok {
		return nil, domain.ErrCouponNotFound
	}
	if !coupon.IsActive {
		return nil, domain.ErrCouponInactive
	}
	return &coupon, nil
}
