package catalog

import (
	"sort"
	"strings"

	"github.com/esenmoda/esen/internal/domain"
)

// SortKey selects the ordering of a product listing.
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
)

// Query describes a shop listing filter. Zero values mean "no constraint":
// empty Category matches everything, MaxPriceCents of 0 means no upper
// bound, empty Search skips text matching.
type Query struct {
	Category      string
	MinPriceCents int64
	MaxPriceCents int64
	SaleOnly      bool
	Search        string
}

// Filter returns the products matching q, in their original relative
// order. The input slice is never mutated; the result is freshly
// allocated. Price bounds are inclusive and apply to the effective price.
func Filter(products []domain.Product, q Query) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.SaleOnly && !p.OnSale() {
			continue
		}
		price := p.EffectivePriceCents()
		if price < q.MinPriceCents {
			continue
		}
		if q.MaxPriceCents > 0 && price > q.MaxPriceCents {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort returns products ordered by key. Sorts are stable: items with
// equal keys keep their original relative order, and SortNewest only
// partitions IsNew items first without reordering within a partition.
// SortDefault (and unknown keys) return the input order unchanged.
func Sort(products []domain.Product, key SortKey) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePriceCents() < out[j].EffectivePriceCents()
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePriceCents() > out[j].EffectivePriceCents()
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsNew && !out[j].IsNew
		})
	}
	return out
}
