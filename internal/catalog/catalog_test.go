package catalog_test

import (
	"testing"

	"github.com/esenmoda/esen/internal/catalog"
	"github.com/esenmoda/esen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetAndList(t *testing.T) {
	svc := catalog.NewService(catalog.DefaultProducts(), catalog.DefaultCategories())

	products := svc.List()
	assert.Len(t, products, 8)
	assert.Len(t, svc.Categories(), 4)

	p, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Vestido Floral de Verano", p.Name)
	assert.Equal(t, int64(4500), p.PriceCents)

	_, err = svc.Get(999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestService_UpdateReplacesById(t *testing.T) {
	svc := catalog.NewService(catalog.DefaultProducts(), catalog.DefaultCategories())

	p, err := svc.Get(3)
	require.NoError(t, err)

	p.SalePriceCents = 4900
	require.NoError(t, svc.Update(p))

	got, err := svc.Get(3)
	require.NoError(t, err)
	assert.Equal(t, int64(4900), got.SalePriceCents)
	assert.True(t, got.IsSale)
	assert.Equal(t, int64(4900), got.EffectivePriceCents())

	// Catalog order is preserved by an update.
	assert.Equal(t, int64(3), svc.List()[2].ID)
}

func TestService_UpdateUnknownProduct(t *testing.T) {
	svc := catalog.NewService(catalog.DefaultProducts(), catalog.DefaultCategories())

	err := svc.Update(domain.Product{ID: 404, Name: "Fantasma"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestService_ListReturnsCopy(t *testing.T) {
	svc := catalog.NewService(catalog.DefaultProducts(), catalog.DefaultCategories())

	list := svc.List()
	list[0].Name = "mutated"

	p, err := svc.Get(list[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", p.Name)
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name string
		p    domain.Product
		want int64
	}{
		{"regular price", domain.Product{PriceCents: 4500}, 4500},
		{"on sale with sale price", domain.Product{PriceCents: 4500, IsSale: true, SalePriceCents: 3600}, 3600},
		{"on sale without sale price", domain.Product{PriceCents: 4500, IsSale: true}, 4500},
		{"sale price set but not on sale", domain.Product{PriceCents: 4500, SalePriceCents: 3600}, 4500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.EffectivePriceCents())
		})
	}
}
