package storefront

import (
	"net/http"
	"strconv"

	"github.com/esenmoda/esen/internal/catalog"
	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/handler"
	"github.com/esenmoda/esen/internal/telemetry"
)

// Catalog is the read surface the product handlers need.
type Catalog interface {
	List() []domain.Product
	Get(id int64) (domain.Product, error)
	Categories() []domain.Category
}

// ProductHandler handles catalog browsing routes
type ProductHandler struct {
	catalog Catalog
}

// NewProductHandler creates a new product handler
func NewProductHandler(c Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

// List handles GET /products
//
// Query parameters:
//   - category: exact category name
//   - search: case-insensitive substring over name and category
//   - sale: "true" restricts to on-sale products
//   - min_price, max_price: inclusive bounds in cents on the effective price
//   - sort: price_asc, price_desc, or newest
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		SaleOnly: r.URL.Query().Get("sale") == "true",
	}

	if v := r.URL.Query().Get("min_price"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil || cents < 0 {
			handler.ErrorResponse(w, r, domain.Invalid("products.list", "min_price must be a non-negative integer"))
			return
		}
		q.MinPriceCents = cents
	}
	if v := r.URL.Query().Get("max_price"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil || cents < 0 {
			handler.ErrorResponse(w, r, domain.Invalid("products.list", "max_price must be a non-negative integer"))
			return
		}
		q.MaxPriceCents = cents
	}

	// Both underscore and hyphen spellings are accepted for the price sorts.
	sortKey := catalog.SortDefault
	switch r.URL.Query().Get("sort") {
	case "":
	case "price_asc", "price-asc":
		sortKey = catalog.SortPriceAsc
	case "price_desc", "price-desc":
		sortKey = catalog.SortPriceDesc
	case "newest":
		sortKey = catalog.SortNewest
	default:
		handler.ErrorResponse(w, r, domain.Invalid("products.list", "sort must be one of price_asc, price_desc, newest"))
		return
	}

	products := catalog.Sort(catalog.Filter(h.catalog.List(), q), sortKey)

	telemetry.RecordProductSearch(filterType(q))

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// Get handles GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("products.get", "product ID must be an integer"))
		return
	}

	product, err := h.catalog.Get(id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	telemetry.RecordProductView(product.Category)

	handler.RespondJSON(w, http.StatusOK, product)
}

// filterType names the dominant filter of a query for metrics.
func filterType(q catalog.Query) string {
	switch {
	case q.Search != "":
		return "search"
	case q.Category != "":
		return "category"
	case q.SaleOnly:
		return "sale"
	case q.MinPriceCents > 0 || q.MaxPriceCents > 0:
		return "price"
	default:
		return "none"
	}
}

// Categories handles GET /categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(),
	})
}
