package admin

import (
	"net/http"
	"strconv"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/handler"
)

// CatalogEditor is the write surface the product handlers need.
type CatalogEditor interface {
	Get(id int64) (domain.Product, error)
	Update(p domain.Product) error
}

// ProductHandler manages catalog edits
type ProductHandler struct {
	catalog CatalogEditor
}

// NewProductHandler creates a new admin product handler
func NewProductHandler(catalog CatalogEditor) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type updateProductRequest struct {
	Name           string   `json:"name" validate:"required"`
	Category       string   `json:"category" validate:"required"`
	PriceCents     int64    `json:"price_cents" validate:"required,min=1"`
	SalePriceCents int64    `json:"sale_price_cents" validate:"gte=0"`
	IsNew          bool     `json:"is_new"`
	IsSale         bool     `json:"is_sale"`
	Images         []string `json:"images"`
}

// Update handles PUT /admin/products/{id}
//
// The whole product is replaced under its ID. Open carts keep the price
// they snapshotted at add time.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("admin.products.update", "product ID must be an integer"))
		return
	}

	var req updateProductRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if err := validateStruct("admin.products.update", req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product := domain.Product{
		ID:             id,
		Name:           req.Name,
		Category:       req.Category,
		PriceCents:     req.PriceCents,
		SalePriceCents: req.SalePriceCents,
		IsNew:          req.IsNew,
		IsSale:         req.IsSale,
		Images:         req.Images,
	}
	if err := h.catalog.Update(product); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, product)
}
