package storefront

import (
	"net/http"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/handler"
	"github.com/esenmoda/esen/internal/service"
	"github.com/esenmoda/esen/internal/telemetry"
)

// CartHandler handles all cart-related storefront routes
type CartHandler struct {
	cartService service.CartService
	secure      bool
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService service.CartService, secure bool) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		secure:      secure,
	}
}

// ensureSession returns the cart session ID, issuing one on first touch.
func (h *CartHandler) ensureSession(w http.ResponseWriter, r *http.Request) (string, error) {
	sessionID := GetSessionID(r)
	if sessionID != "" {
		return sessionID, nil
	}
	sessionID, err := service.GenerateSessionID()
	if err != nil {
		return "", domain.Internal(err, "cart.session", "Failed to create session")
	}
	SetSessionCookie(w, sessionID, h.secure)
	return sessionID, nil
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.ensureSession(w, r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cartService.Summary(r.Context(), sessionID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, summary)
}

type addItemRequest struct {
	ProductID int64  `json:"product_id"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sessionID, err := h.ensureSession(w, r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cartService.AddItem(r.Context(), sessionID, req.ProductID, req.Color, req.Size, req.Quantity)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	telemetry.RecordCartItemsAdded(req.Quantity)

	handler.RespondJSON(w, http.StatusOK, summary)
}

// DecrementItem handles POST /cart/items/{lineID}/decrement
func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.ensureSession(w, r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cartService.Decrement(r.Context(), sessionID, r.PathValue("lineID"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, summary)
}

// RemoveItem handles DELETE /cart/items/{lineID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.ensureSession(w, r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cartService.RemoveItem(r.Context(), sessionID, r.PathValue("lineID"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, summary)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionID(r)
	if sessionID != "" {
		if err := h.cartService.Clear(r.Context(), sessionID); err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
		telemetry.RecordCartCleared("manual")
	}
	handler.RespondJSON(w, http.StatusNoContent, nil)
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

// ApplyCoupon handles POST /cart/coupon
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.Code == "" {
		handler.ErrorResponse(w, r, service.ErrCouponCodeMissing)
		return
	}

	sessionID, err := h.ensureSession(w, r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cartService.ApplyCoupon(r.Context(), sessionID, req.Code)
	if err != nil {
		telemetry.RecordCouponRejected(domain.ErrorCode(err))
		handler.ErrorResponse(w, r, err)
		return
	}
	if summary.AppliedCoupon != nil {
		telemetry.RecordCouponApplied(summary.AppliedCoupon.Code)
	}
	handler.RespondJSON(w, http.StatusOK, summary)
}

// RemoveCoupon handles DELETE /cart/coupon
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.ensureSession(w, r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cartService.RemoveCoupon(r.Context(), sessionID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, summary)
}
