package storefront

import (
	"net/http"
	"strconv"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/handler"
	"github.com/esenmoda/esen/internal/middleware"
	"github.com/esenmoda/esen/internal/service"
	"github.com/esenmoda/esen/internal/telemetry"
)

// AccountHandler serves the signed-in user's profile, favorites, and
// order history. Every route here sits behind RequireAuth.
type AccountHandler struct {
	userService service.UserService
	ledger      service.LedgerService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(userService service.UserService, ledger service.LedgerService) *AccountHandler {
	return &AccountHandler{
		userService: userService,
		ledger:      ledger,
	}
}

// Profile handles GET /account
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, service.ErrNotLoggedIn)
		return
	}
	handler.RespondJSON(w, http.StatusOK, user)
}

type profileRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// UpdateProfile handles PUT /account
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, service.ErrNotLoggedIn)
		return
	}

	var req profileRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), user.ID, domain.ProfilePatch{
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, updated)
}

// Favorites handles GET /account/favorites
func (h *AccountHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, service.ErrNotLoggedIn)
		return
	}

	ids, err := h.ledger.Favorites(r.Context(), user.ID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"product_ids": ids,
	})
}

// ToggleFavorite handles POST /account/favorites/{productID}
func (h *AccountHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, service.ErrNotLoggedIn)
		return
	}

	productID, err := strconv.ParseInt(r.PathValue("productID"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("favorites.toggle", "product ID must be an integer"))
		return
	}

	favored, err := h.ledger.ToggleFavorite(r.Context(), user.ID, productID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	telemetry.RecordFavoriteToggled(favored)

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"product_id": productID,
		"favorite":   favored,
	})
}

// IsFavorite handles GET /account/favorites/{productID}
func (h *AccountHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, service.ErrNotLoggedIn)
		return
	}

	productID, err := strconv.ParseInt(r.PathValue("productID"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("favorites.get", "product ID must be an integer"))
		return
	}

	favored, err := h.ledger.IsFavorite(r.Context(), user.ID, productID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"product_id": productID,
		"favorite":   favored,
	})
}

// Orders handles GET /account/orders
func (h *AccountHandler) Orders(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, service.ErrNotLoggedIn)
		return
	}

	orders, err := h.ledger.Orders(r.Context(), user.ID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder handles GET /account/orders/{id}
func (h *AccountHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, service.ErrNotLoggedIn)
		return
	}

	order, err := h.ledger.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	// Buyers only see their own orders.
	if order.UserID != user.ID && !user.IsAdmin {
		handler.ErrorResponse(w, r, domain.ErrOrderNotFound)
		return
	}
	handler.RespondJSON(w, http.StatusOK, order)
}
