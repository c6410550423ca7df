package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/esenmoda/esen/internal/domain"
)

// mockCouponService implements service.CouponService for testing
type mockCouponService struct {
	listFunc      func(ctx context.Context) ([]domain.Coupon, error)
	upsertFunc    func(ctx context.Context, code string, discountPercentage int) (*domain.Coupon, error)
	setActiveFunc func(ctx context.Context, code string, active bool) (*domain.Coupon, error)
	removeFunc    func(ctx context.Context, code string) error
	validateFunc  func(ctx context.Context, code string) (*domain.Coupon, error)
}

func (m *mockCouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockCouponService) Upsert(ctx context.Context, code string, discountPercentage int) (*domain.Coupon, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, code, discountPercentage)
	}
	return &domain.Coupon{Code: code, DiscountPercentage: discountPercentage, IsActive: true}, nil
}

func (m *mockCouponService) SetActive(ctx context.Context, code string, active bool) (*domain.Coupon, error) {
	if m.setActiveFunc != nil {
		return m.setActiveFunc(ctx, code, active)
	}
	return &domain.Coupon{Code: code, IsActive: active}, nil
}

func (m *mockCouponService) Remove(ctx context.Context, code string) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, code)
	}
	return nil
}

func (m *mockCouponService) Validate(ctx context.Context, code string) (*domain.Coupon, error) {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, code)
	}
	return nil, domain.ErrCouponNotFound
}

func TestCouponHandler_List(t *testing.T) {
	svc := &mockCouponService{
		listFunc: func(ctx context.Context) ([]domain.Coupon, error) {
			return []domain.Coupon{
				{Code: "BIENVENIDA20", DiscountPercentage: 20, IsActive: true},
				{Code: "ESEN10", DiscountPercentage: 10, IsActive: false},
			}, nil
		},
	}
	h := NewCouponHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/coupons", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Coupons []domain.Coupon `json:"coupons"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(body.Coupons) != 2 {
		t.Errorf("coupons = %d, want 2", len(body.Coupons))
	}
}

func TestCouponHandler_Upsert(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedField  string
	}{
		{
			name:           "creates a coupon",
			body:           `{"code": "VERANO15", "discount_percentage": 15}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing code",
			body:           `{"discount_percentage": 15}`,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "code",
		},
		{
			name:           "percentage out of range",
			body:           `{"code": "X", "discount_percentage": 150}`,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "discount_percentage",
		},
		{
			name:           "zero percentage",
			body:           `{"code": "X", "discount_percentage": 0}`,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "discount_percentage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCouponHandler(&mockCouponService{})

			req := httptest.NewRequest(http.MethodPost, "/admin/coupons", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Upsert(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.expectedStatus, rec.Body.String())
			}

			if tt.expectedField == "" {
				return
			}

			var body struct {
				Error struct {
					Fields map[string]string `json:"fields"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not valid JSON: %v", err)
			}
			if _, ok := body.Error.Fields[tt.expectedField]; !ok {
				t.Errorf("fields = %v, missing %q", body.Error.Fields, tt.expectedField)
			}
		})
	}
}

func TestCouponHandler_SetActive(t *testing.T) {
	var gotActive bool
	svc := &mockCouponService{
		setActiveFunc: func(ctx context.Context, code string, active bool) (*domain.Coupon, error) {
			gotActive = active
			return &domain.Coupon{Code: code, IsActive: active}, nil
		},
	}
	h := NewCouponHandler(svc)

	req := httptest.NewRequest(http.MethodPatch, "/admin/coupons/ESEN10", strings.NewReader(`{"is_active": false}`))
	req.SetPathValue("code", "ESEN10")
	rec := httptest.NewRecorder()

	h.SetActive(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if gotActive {
		t.Error("expected deactivation")
	}

	// Missing is_active field fails validation.
	req = httptest.NewRequest(http.MethodPatch, "/admin/coupons/ESEN10", strings.NewReader(`{}`))
	req.SetPathValue("code", "ESEN10")
	rec = httptest.NewRecorder()

	h.SetActive(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCouponHandler_Delete(t *testing.T) {
	removed := ""
	svc := &mockCouponService{
		removeFunc: func(ctx context.Context, code string) error {
			removed = code
			return nil
		},
	}
	h := NewCouponHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/admin/coupons/ESEN10", nil)
	req.SetPathValue("code", "ESEN10")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if removed != "ESEN10" {
		t.Errorf("removed = %q, want ESEN10", removed)
	}
}

func TestCouponHandler_SetActive_Unknown(t *testing.T) {
	svc := &mockCouponService{
		setActiveFunc: func(ctx context.Context, code string, active bool) (*domain.Coupon, error) {
			return nil, nil
		},
	}
	h := NewCouponHandler(svc)

	req := httptest.NewRequest(http.MethodPatch, "/admin/coupons/GHOST", strings.NewReader(`{"is_active": true}`))
	req.SetPathValue("code", "GHOST")
	rec := httptest.NewRecorder()

	h.SetActive(rec, req)

	// Unknown codes are a registry no-op.
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
