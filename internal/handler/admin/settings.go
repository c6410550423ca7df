package admin

import (
	"net/http"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/handler"
	"github.com/esenmoda/esen/internal/service"
)

// SettingsHandler manages the store-wide shipping policy
type SettingsHandler struct {
	settings service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetShipping handles GET /admin/settings/shipping
func (h *SettingsHandler) GetShipping(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, h.settings.ShippingPolicy(r.Context()))
}

type shippingPolicyRequest struct {
	BaseCostCents      int64 `json:"base_cost_cents" validate:"gte=0"`
	FreeThresholdCents int64 `json:"free_threshold_cents" validate:"gte=0"`
	FreeItemCount      int   `json:"free_item_count" validate:"required,min=1"`
}

// UpdateShipping handles PUT /admin/settings/shipping
//
// The new policy applies to the next summary of every open cart.
func (h *SettingsHandler) UpdateShipping(w http.ResponseWriter, r *http.Request) {
	var req shippingPolicyRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if err := validateStruct("admin.settings.shipping", req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	policy := domain.ShippingPolicy{
		BaseCostCents:      req.BaseCostCents,
		FreeThresholdCents: req.FreeThresholdCents,
		FreeItemCount:      req.FreeItemCount,
	}
	if err := h.settings.UpdateShippingPolicy(r.Context(), policy); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, policy)
}
