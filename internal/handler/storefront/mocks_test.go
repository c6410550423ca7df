package storefront

import (
	"context"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/service"
)

// mockUserService implements service.UserService for testing
type mockUserService struct {
	loginFunc         func(ctx context.Context, email, password string) (*domain.User, string, error)
	registerFunc      func(ctx context.Context, name, email, password string) (*domain.User, string, error)
	logoutFunc        func(ctx context.Context, token string) error
	getByTokenFunc    func(ctx context.Context, token string) (*domain.User, error)
	updateProfileFunc func(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return &domain.User{}, "token", nil
}

func (m *mockUserService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, name, email, password)
	}
	return &domain.User{}, "token", nil
}

func (m *mockUserService) Logout(ctx context.Context, token string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return nil
}

func (m *mockUserService) GetUserBySessionToken(ctx context.Context, token string) (*domain.User, error) {
	if m.getByTokenFunc != nil {
		return m.getByTokenFunc(ctx, token)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, userID, patch)
	}
	return &domain.User{ID: userID}, nil
}

// mockLedgerService implements service.LedgerService for testing
type mockLedgerService struct {
	toggleFavoriteFunc func(ctx context.Context, userID string, productID int64) (bool, error)
	favoritesFunc      func(ctx context.Context, userID string) ([]int64, error)
	isFavoriteFunc     func(ctx context.Context, userID string, productID int64) (bool, error)
	recordOrderFunc    func(ctx context.Context, userID string, summary *domain.CartSummary, input service.CheckoutInput) (*domain.Order, error)
	ordersFunc         func(ctx context.Context, userID string) ([]domain.Order, error)
	allOrdersFunc      func(ctx context.Context) ([]domain.Order, error)
	getOrderFunc       func(ctx context.Context, orderID string) (*domain.Order, error)
	setOrderStatusFunc func(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
}

func (m *mockLedgerService) ToggleFavorite(ctx context.Context, userID string, productID int64) (bool, error) {
	if m.toggleFavoriteFunc != nil {
		return m.toggleFavoriteFunc(ctx, userID, productID)
	}
	return false, nil
}

func (m *mockLedgerService) Favorites(ctx context.Context, userID string) ([]int64, error) {
	if m.favoritesFunc != nil {
		return m.favoritesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockLedgerService) IsFavorite(ctx context.Context, userID string, productID int64) (bool, error) {
	if m.isFavoriteFunc != nil {
		return m.isFavoriteFunc(ctx, userID, productID)
	}
	return false, nil
}

func (m *mockLedgerService) RecordOrder(ctx context.Context, userID string, summary *domain.CartSummary, input service.CheckoutInput) (*domain.Order, error) {
	if m.recordOrderFunc != nil {
		return m.recordOrderFunc(ctx, userID, summary, input)
	}
	return &domain.Order{}, nil
}

func (m *mockLedgerService) Orders(ctx context.Context, userID string) ([]domain.Order, error) {
	if m.ordersFunc != nil {
		return m.ordersFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockLedgerService) AllOrders(ctx context.Context) ([]domain.Order, error) {
	if m.allOrdersFunc != nil {
		return m.allOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *mockLedgerService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if m.getOrderFunc != nil {
		return m.getOrderFunc(ctx, orderID)
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockLedgerService) SetOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if m.setOrderStatusFunc != nil {
		return m.setOrderStatusFunc(ctx, orderID, status)
	}
	return nil, domain.ErrOrderNotFound
}
