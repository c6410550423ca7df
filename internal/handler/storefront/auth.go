package storefront

import (
	"net/http"

	"github.com/esenmoda/esen/internal/handler"
	"github.com/esenmoda/esen/internal/service"
	"github.com/esenmoda/esen/internal/telemetry"
)

// AuthHandler handles login, registration, and logout
type AuthHandler struct {
	userService service.UserService
	secure      bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService service.UserService, secure bool) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		secure:      secure,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	telemetry.RecordLogin(user.IsAdmin)

	SetAuthCookie(w, token, h.secure)
	handler.RespondJSON(w, http.StatusOK, user)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	user, token, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	telemetry.RecordLogin(user.IsAdmin)

	SetAuthCookie(w, token, h.secure)
	handler.RespondJSON(w, http.StatusCreated, user)
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := GetAuthToken(r); token != "" {
		if err := h.userService.Logout(r.Context(), token); err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
	}
	ClearAuthCookie(w)
	handler.RespondJSON(w, http.StatusNoContent, nil)
}
