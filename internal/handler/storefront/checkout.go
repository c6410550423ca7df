package storefront

import (
	"net/http"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/handler"
	"github.com/esenmoda/esen/internal/middleware"
	"github.com/esenmoda/esen/internal/service"
	"github.com/esenmoda/esen/internal/telemetry"
)

// CheckoutHandler turns a cart into an order
type CheckoutHandler struct {
	cartService service.CartService
	ledger      service.LedgerService
	secure      bool
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(cartService service.CartService, ledger service.LedgerService, secure bool) *CheckoutHandler {
	return &CheckoutHandler{
		cartService: cartService,
		ledger:      ledger,
		secure:      secure,
	}
}

type checkoutRequest struct {
	PaymentMethod string              `json:"payment_method"`
	Gift          *domain.GiftDetails `json:"gift,omitempty"`
}

// Checkout handles POST /checkout
//
// The cart's current summary, coupon and shipping included, becomes a
// pending order on the buyer's ledger. The cart is emptied afterwards;
// the order keeps its own copy of the lines.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := middleware.GetUserFromContext(ctx)
	if user == nil {
		handler.ErrorResponse(w, r, service.ErrNotLoggedIn)
		return
	}

	var req checkoutRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	sessionID := GetSessionID(r)
	if sessionID == "" {
		handler.ErrorResponse(w, r, domain.ErrEmptyCart)
		return
	}

	summary, err := h.cartService.Summary(ctx, sessionID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if len(summary.Lines) == 0 {
		handler.ErrorResponse(w, r, domain.ErrEmptyCart)
		return
	}

	order, err := h.ledger.RecordOrder(ctx, user.ID, summary, service.CheckoutInput{
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Gift:          req.Gift,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.cartService.Clear(ctx, sessionID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	telemetry.RecordOrderCreated(string(order.PaymentMethod), order.TotalCents, summary.ItemCount)
	telemetry.RecordCartCleared("purchase")

	handler.RespondJSON(w, http.StatusCreated, order)
}
