package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/service"
)

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		loginErr       error
		expectedStatus int
		expectCookie   bool
	}{
		{
			name:           "successful login sets the auth cookie",
			body:           `{"email": "maria@example.com", "password": "pw"}`,
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name:           "missing email is rejected",
			body:           `{"email": "", "password": "pw"}`,
			loginErr:       service.ErrEmailRequired,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password is rejected",
			body:           `{"email": "maria@example.com", "password": ""}`,
			loginErr:       domain.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed body",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				loginFunc: func(ctx context.Context, email, password string) (*domain.User, string, error) {
					if tt.loginErr != nil {
						return nil, "", tt.loginErr
					}
					return &domain.User{ID: "u1", Email: email}, "fresh-token", nil
				},
			}
			h := NewAuthHandler(users, false)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Login(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.expectedStatus, rec.Body.String())
			}

			hasCookie := false
			for _, c := range rec.Result().Cookies() {
				if c.Name == AuthCookie && c.Value == "fresh-token" {
					hasCookie = true
					if !c.HttpOnly {
						t.Error("auth cookie is not HttpOnly")
					}
				}
			}
			if hasCookie != tt.expectCookie {
				t.Errorf("auth cookie set = %v, want %v", hasCookie, tt.expectCookie)
			}
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	users := &mockUserService{
		registerFunc: func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: "u1", Name: name, Email: email}, "fresh-token", nil
		},
	}
	h := NewAuthHandler(users, false)

	body := `{"name": "María", "email": "maria@example.com", "password": "pw"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	loggedOut := ""
	users := &mockUserService{
		logoutFunc: func(ctx context.Context, token string) error {
			loggedOut = token
			return nil
		},
	}
	h := NewAuthHandler(users, false)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookie, Value: "old-token"})
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if loggedOut != "old-token" {
		t.Errorf("logged out token = %q, want %q", loggedOut, "old-token")
	}

	cookieCleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookie && c.MaxAge < 0 {
			cookieCleared = true
		}
	}
	if !cookieCleared {
		t.Error("auth cookie was not cleared")
	}
}
