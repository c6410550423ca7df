package admin

import (
	"net/http"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/handler"
	"github.com/esenmoda/esen/internal/service"
)

// OrderHandler manages orders across all users
type OrderHandler struct {
	ledger service.LedgerService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(ledger service.LedgerService) *OrderHandler {
	return &OrderHandler{ledger: ledger}
}

// List handles GET /admin/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ledger.AllOrders(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// Get handles GET /admin/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.ledger.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending payment_approved shipped delivered"`
}

// UpdateStatus handles PUT /admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if err := validateStruct("admin.orders.updateStatus", req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.ledger.SetOrderStatus(r.Context(), r.PathValue("id"), domain.OrderStatus(req.Status))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, order)
}
