package admin

import (
	"net/http"

	"github.com/esenmoda/esen/internal/handler"
	"github.com/esenmoda/esen/internal/service"
)

// CouponHandler manages the discount coupon registry
type CouponHandler struct {
	coupons service.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(coupons service.CouponService) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

// List handles GET /admin/coupons
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupons.List(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"coupons": coupons,
	})
}

type upsertCouponRequest struct {
	Code               string `json:"code" validate:"required"`
	DiscountPercentage int    `json:"discount_percentage" validate:"required,min=1,max=100"`
}

// Upsert handles POST /admin/coupons
func (h *CouponHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertCouponRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if err := validateStruct("admin.coupons.upsert", req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	coupon, err := h.coupons.Upsert(r.Context(), req.Code, req.DiscountPercentage)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, coupon)
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// SetActive handles PATCH /admin/coupons/{code}
func (h *CouponHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if err := validateStruct("admin.coupons.setActive", req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	coupon, err := h.coupons.SetActive(r.Context(), r.PathValue("code"), *req.IsActive)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if coupon == nil {
		// Unknown code: the registry treats this as a no-op.
		handler.RespondJSON(w, http.StatusNoContent, nil)
		return
	}
	handler.RespondJSON(w, http.StatusOK, coupon)
}

// Delete handles DELETE /admin/coupons/{code}
func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.coupons.Remove(r.Context(), r.PathValue("code")); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusNoContent, nil)
}
