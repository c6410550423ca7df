package catalog

import "github.com/esenmoda/esen/internal/domain"

// DefaultProducts is the seed catalog the service starts from when no
// other source is supplied. Prices are in cents.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:         1,
			Name:       "Vestido Floral de Verano",
			PriceCents: 4500,
			Category:   "Vestidos",
			IsNew:      true,
			Images:     []string{"https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?q=80&w=1000&auto=format&fit=crop"},
		},
		{
			ID:         2,
			Name:       "Blusa de Seda Blanca",
			PriceCents: 3200,
			Category:   "Blusas",
			Images:     []string{"https://images.unsplash.com/photo-1564257631407-4deb1f99d992?q=80&w=1000&auto=format&fit=crop"},
		},
		{
			ID:         3,
			Name:       "Pantalón Palazzo Negro",
			PriceCents: 5500,
			Category:   "Pantalones",
			IsSale:     true,
			Images:     []string{"https://images.unsplash.com/photo-1509631179647-0177331693ae?q=80&w=1000&auto=format&fit=crop"},
		},
		{
			ID:         4,
			Name:       "Chaqueta de Mezclilla",
			PriceCents: 6800,
			Category:   "Chaquetas",
			Images:     []string{"https://images.unsplash.com/photo-1544441893-675973e31985?q=80&w=1000&auto=format&fit=crop"},
		},
		{
			ID:         5,
			Name:       "Falda Midi Plisada",
			PriceCents: 3800,
			Category:   "Faldas",
			IsNew:      true,
			Images:     []string{"https://images.unsplash.com/photo-1583496661160-fb5886a0aaaa?q=80&w=1000&auto=format&fit=crop"},
		},
		{
			ID:         6,
			Name:       "Suéter de Punto Beige",
			PriceCents: 4200,
			Category:   "Suéteres",
			Images:     []string{"https://images.unsplash.com/photo-1576566588028-4147f3842f27?q=80&w=1000&auto=format&fit=crop"},
		},
		{
			ID:         7,
			Name:       "Bolso de Cuero Marrón",
			PriceCents: 8500,
			Category:   "Accesorios",
			Images:     []string{"https://images.unsplash.com/photo-1584917865442-de89df76afd3?q=80&w=1000&auto=format&fit=crop"},
		},
		{
			ID:         8,
			Name:       "Tacones Clásicos Nude",
			PriceCents: 6000,
			Category:   "Zapatos",
			IsSale:     true,
			Images:     []string{"https://images.unsplash.com/photo-1543163521-1bf539c55dd2?q=80&w=1000&auto=format&fit=crop"},
		},
	}
}

// DefaultCategories is the browsable category list for the storefront.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Vestidos", Image: "https://images.unsplash.com/photo-1595777457583-95e059d581b8?q=80&w=1000&auto=format&fit=crop"},
		{ID: 2, Name: "Accesorios", Image: "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?q=80&w=1000&auto=format&fit=crop"},
		{ID: 3, Name: "Zapatos", Image: "https://images.unsplash.com/photo-1560343090-f0409e92791a?q=80&w=1000&auto=format&fit=crop"},
		{ID: 4, Name: "Bolsos", Image: "https://images.unsplash.com/photo-1584917865442-de89df76afd3?q=80&w=1000&auto=format&fit=crop"},
	}
}
