package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/store"
)

// CheckoutInput carries the buyer's checkout choices alongside the cart.
type CheckoutInput struct {
	PaymentMethod domain.PaymentMethod
	Gift          *domain.GiftDetails
}

// LedgerService records what buyers have saved and bought: the favorites
// set and the order history. Both survive restarts through their slots.
type LedgerService interface {
	// ToggleFavorite flips a product in and out of the user's favorites.
	// Returns true when the product is a favorite after the call.
	ToggleFavorite(ctx context.Context, userID string, productID int64) (bool, error)

	// Favorites returns the user's favorite product IDs in ascending order.
	Favorites(ctx context.Context, userID string) ([]int64, error)

	// IsFavorite reports whether a product is in the user's favorites.
	IsFavorite(ctx context.Context, userID string, productID int64) (bool, error)

	// RecordOrder turns a cart summary into a pending order at the head of
	// the user's history. The lines are copied; the live cart is untouched.
	RecordOrder(ctx context.Context, userID string, summary *domain.CartSummary, input CheckoutInput) (*domain.Order, error)

	// Orders returns the user's orders, most recent first.
	Orders(ctx context.Context, userID string) ([]domain.Order, error)

	// AllOrders returns every order across users, most recent first.
	AllOrders(ctx context.Context) ([]domain.Order, error)

	// GetOrder fetches one order by ID.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// SetOrderStatus moves an order to any of the enumerated statuses.
	SetOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
}

type ledgerService struct {
	mu        sync.RWMutex
	favorites map[string]map[int64]bool
	orders    []domain.Order
	store     store.Store
	logger    *slog.Logger
	now       func() time.Time
}

// NewLedgerService creates a LedgerService backed by the favorites and
// orders slots. Missing or unreadable slots mean an empty ledger.
func NewLedgerService(ctx context.Context, st store.Store, logger *slog.Logger) LedgerService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &ledgerService{
		favorites: make(map[string]map[int64]bool),
		store:     st,
		logger:    logger,
		now:       time.Now,
	}
	s.restore(ctx)
	return s
}

func (s *ledgerService) restore(ctx context.Context) {
	if record, err := s.store.Load(ctx, store.SlotFavorites); err == nil {
		var favorites map[string][]int64
		if err := json.Unmarshal(record, &favorites); err != nil {
			s.logger.Warn("favorites slot corrupt, starting empty", "error", err)
		} else {
			for userID, ids := range favorites {
				set := make(map[int64]bool, len(ids))
				for _, id := range ids {
					set[id] = true
				}
				s.favorites[userID] = set
			}
		}
	} else if !store.IsNotFound(err) {
		s.logger.Warn("favorites slot unreadable, starting empty", "error", err)
	}

	if record, err := s.store.Load(ctx, store.SlotOrders); err == nil {
		if err := json.Unmarshal(record, &s.orders); err != nil {
			s.logger.Warn("orders slot corrupt, starting empty", "error", err)
			s.orders = nil
		}
	} else if !store.IsNotFound(err) {
		s.logger.Warn("orders slot unreadable, starting empty", "error", err)
	}
}

// persistFavorites writes the favorites map to its slot. Callers hold s.mu.
func (s *ledgerService) persistFavorites(ctx context.Context) {
	favorites := make(map[string][]int64, len(s.favorites))
	for userID, set := range s.favorites {
		ids := make([]int64, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		favorites[userID] = ids
	}

	record, err := json.Marshal(favorites)
	if err != nil {
		s.logger.Error("failed to marshal favorites", "error", err)
		return
	}
	if err := s.store.Save(ctx, store.SlotFavorites, record); err != nil {
		s.logger.Error("failed to persist favorites", "error", err)
	}
}

// persistOrders writes the order history to its slot. Callers hold s.mu.
func (s *ledgerService) persistOrders(ctx context.Context) {
	record, err := json.Marshal(s.orders)
	if err != nil {
		s.logger.Error("failed to marshal orders", "error", err)
		return
	}
	if err := s.store.Save(ctx, store.SlotOrders, record); err != nil {
		s.logger.Error("failed to persist orders", "error", err)
	}
}

func (s *ledgerService) ToggleFavorite(ctx context.Context, userID string, productID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.favorites[userID]
	if !ok {
		set = make(map[int64]bool)
		s.favorites[userID] = set
	}

	var favored bool
	if set[productID] {
		delete(set, productID)
	} else {
		set[productID] = true
		favored = true
	}
	s.persistFavorites(ctx)
	return favored, nil
}

func (s *ledgerService) Favorites(ctx context.Context, userID string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.favorites[userID]))
	for id := range s.favorites[userID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *ledgerService) IsFavorite(ctx context.Context, userID string, productID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.favorites[userID][productID], nil
}

// NewOrderID generates a short human-readable order reference.
func NewOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:6])
}

func (s *ledgerService) RecordOrder(ctx context.Context, userID string, summary *domain.CartSummary, input CheckoutInput) (*domain.Order, error) {
	if summary == nil || len(summary.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if !domain.ValidPaymentMethod(input.PaymentMethod) {
		return nil, domain.ErrInvalidPayment
	}

	order := domain.Order{
		ID:            NewOrderID(),
		UserID:        userID,
		CreatedAt:     s.now().UTC(),
		Lines:         make([]domain.CartLine, len(summary.Lines)),
		TotalCents:    summary.TotalCents,
		Status:        domain.OrderStatusPending,
		PaymentMethod: input.PaymentMethod,
		Gift:          input.Gift,
	}
	copy(order.Lines, summary.Lines)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Most recent first. The ledger keeps its own copy of the lines.
	s.orders = append([]domain.Order{cloneOrder(order)}, s.orders...)
	s.persistOrders(ctx)
	return &order, nil
}

// cloneOrder copies an order along with its lines, so callers holding a
// returned order cannot reach into the ledger's own slices.
func cloneOrder(o domain.Order) domain.Order {
	o.Lines = append([]domain.CartLine(nil), o.Lines...)
	if o.Gift != nil {
		gift := *o.Gift
		o.Gift = &gift
	}
	return o
}

func (s *ledgerService) Orders(ctx context.Context, userID string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, cloneOrder(o))
		}
	}
	return orders, nil
}

func (s *ledgerService) AllOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, cloneOrder(o))
	}
	return orders, nil
}

func (s *ledgerService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			order := cloneOrder(s.orders[i])
			return &order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (s *ledgerService) SetOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			order := cloneOrder(s.orders[i])
			s.persistOrders(ctx)
			return &order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}
