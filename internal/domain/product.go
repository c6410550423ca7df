package domain

// =============================================================================
// CATALOG DOMAIN TYPES
// =============================================================================

// Product represents a sellable catalog entry.
// Catalog entries are immutable except through the admin update path;
// cart and order operations never mutate them.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`

	// Pricing in cents. SalePriceCents of 0 means no sale price is set.
	PriceCents     int64 `json:"price_cents"`
	SalePriceCents int64 `json:"sale_price_cents,omitempty"`

	// Merchandising flags
	IsNew  bool `json:"is_new"`
	IsSale bool `json:"is_sale"`

	// Images is an ordered list of image URLs; the first is the primary image.
	Images []string `json:"images"`
}

// EffectivePriceCents returns the price a buyer actually pays:
// the sale price when the product is on sale and a sale price is set,
// the regular price otherwise.
func (p Product) EffectivePriceCents() int64 {
	if p.IsSale && p.SalePriceCents > 0 {
		return p.SalePriceCents
	}
	return p.PriceCents
}

// OnSale reports whether the product should appear in sale-only views.
func (p Product) OnSale() bool {
	return p.IsSale || p.SalePriceCents > 0
}

// PrimaryImage returns the first image URL, or empty if none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Category represents a browsable product grouping.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Catalog-related domain errors.
var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
)
