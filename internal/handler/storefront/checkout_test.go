package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/middleware"
	"github.com/esenmoda/esen/internal/service"
)

func checkoutRequestWithUser(body string, user *domain.User, sessionID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionID})
	}
	if user != nil {
		ctx := context.WithValue(req.Context(), middleware.UserContextKey, user)
		req = req.WithContext(ctx)
	}
	return req
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "maria@example.com"}
	filledSummary := &domain.CartSummary{
		Lines:         []domain.CartLine{{LineID: "1-default-default", Quantity: 1, UnitPriceCents: 4500}},
		ItemCount:     1,
		SubtotalCents: 4500,
		ShippingCents: 600,
		TotalCents:    5100,
	}

	tests := []struct {
		name           string
		user           *domain.User
		sessionID      string
		body           string
		summary        *domain.CartSummary
		recordErr      error
		expectedStatus int
		expectCleared  bool
	}{
		{
			name:           "places an order and clears the cart",
			user:           user,
			sessionID:      "session-1",
			body:           `{"payment_method": "mobile_payment"}`,
			summary:        filledSummary,
			expectedStatus: http.StatusCreated,
			expectCleared:  true,
		},
		{
			name:           "gift details pass through",
			user:           user,
			sessionID:      "session-1",
			body:           `{"payment_method": "bank_transfer", "gift": {"recipient_name": "Ana", "recipient_email": "ana@example.com", "message": "Feliz cumple"}}`,
			summary:        filledSummary,
			expectedStatus: http.StatusCreated,
			expectCleared:  true,
		},
		{
			name:           "anonymous checkout is rejected",
			user:           nil,
			sessionID:      "session-1",
			body:           `{"payment_method": "mobile_payment"}`,
			summary:        filledSummary,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no cart session means empty cart",
			user:           user,
			sessionID:      "",
			body:           `{"payment_method": "mobile_payment"}`,
			summary:        filledSummary,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty cart is rejected",
			user:           user,
			sessionID:      "session-1",
			body:           `{"payment_method": "mobile_payment"}`,
			summary:        &domain.CartSummary{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid payment method is rejected",
			user:           user,
			sessionID:      "session-1",
			body:           `{"payment_method": "card"}`,
			summary:        filledSummary,
			recordErr:      domain.ErrInvalidPayment,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleared := false
			var gotInput service.CheckoutInput
			carts := &mockCartService{
				summaryFunc: func(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
					return tt.summary, nil
				},
				clearFunc: func(ctx context.Context, sessionID string) error {
					cleared = true
					return nil
				},
			}
			ledger := &mockLedgerService{
				recordOrderFunc: func(ctx context.Context, userID string, summary *domain.CartSummary, input service.CheckoutInput) (*domain.Order, error) {
					if tt.recordErr != nil {
						return nil, tt.recordErr
					}
					gotInput = input
					return &domain.Order{
						ID:            "ORD-AB12CD",
						UserID:        userID,
						Lines:         summary.Lines,
						TotalCents:    summary.TotalCents,
						Status:        domain.OrderStatusPending,
						PaymentMethod: input.PaymentMethod,
						Gift:          input.Gift,
					}, nil
				},
			}
			h := NewCheckoutHandler(carts, ledger, false)

			rec := httptest.NewRecorder()
			h.Checkout(rec, checkoutRequestWithUser(tt.body, tt.user, tt.sessionID))

			if rec.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.expectedStatus, rec.Body.String())
			}
			if cleared != tt.expectCleared {
				t.Errorf("cart cleared = %v, want %v", cleared, tt.expectCleared)
			}

			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var order domain.Order
			if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
				t.Fatalf("response is not valid JSON: %v", err)
			}
			if order.Status != domain.OrderStatusPending {
				t.Errorf("status = %q, want %q", order.Status, domain.OrderStatusPending)
			}
			if order.TotalCents != tt.summary.TotalCents {
				t.Errorf("total = %d, want %d", order.TotalCents, tt.summary.TotalCents)
			}
			if strings.Contains(tt.body, "gift") && gotInput.Gift == nil {
				t.Error("gift details were dropped")
			}
		})
	}
}
