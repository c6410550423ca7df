package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esenmoda/esen/internal/domain"
)

func defaultPolicy() domain.ShippingPolicy {
	return domain.ShippingPolicy{
		BaseCostCents:      600,
		FreeThresholdCents: 10000,
		FreeItemCount:      3,
	}
}

func TestThresholdCalculator_Cost(t *testing.T) {
	tests := []struct {
		name   string
		policy domain.ShippingPolicy
		params CostParams
		want   int64
	}{
		{
			name:   "empty cart ships free",
			policy: defaultPolicy(),
			params: CostParams{ItemCount: 0, SubtotalCents: 0},
			want:   0,
		},
		{
			name:   "small cart below threshold pays base cost",
			policy: defaultPolicy(),
			params: CostParams{ItemCount: 1, SubtotalCents: 4050},
			want:   600,
		},
		{
			name:   "two items below threshold pays base cost",
			policy: defaultPolicy(),
			params: CostParams{ItemCount: 2, SubtotalCents: 7700},
			want:   600,
		},
		{
			name:   "three items ship free regardless of subtotal",
			policy: defaultPolicy(),
			params: CostParams{ItemCount: 3, SubtotalCents: 9600},
			want:   0,
		},
		{
			name:   "many items ship free",
			policy: defaultPolicy(),
			params: CostParams{ItemCount: 7, SubtotalCents: 500},
			want:   0,
		},
		{
			name:   "subtotal at threshold ships free",
			policy: defaultPolicy(),
			params: CostParams{ItemCount: 1, SubtotalCents: 10000},
			want:   0,
		},
		{
			name:   "subtotal above threshold ships free",
			policy: defaultPolicy(),
			params: CostParams{ItemCount: 2, SubtotalCents: 12300},
			want:   0,
		},
		{
			name:   "post-discount subtotal just under threshold pays base cost",
			policy: defaultPolicy(),
			params: CostParams{ItemCount: 1, SubtotalCents: 9999},
			want:   600,
		},
		{
			name: "custom policy values",
			policy: domain.ShippingPolicy{
				BaseCostCents:      1200,
				FreeThresholdCents: 5000,
				FreeItemCount:      10,
			},
			params: CostParams{ItemCount: 4, SubtotalCents: 4999},
			want:   1200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewThresholdCalculator(func() domain.ShippingPolicy { return tt.policy })
			assert.Equal(t, tt.want, calc.Cost(tt.params))
		})
	}
}

func TestThresholdCalculator_PolicyReadPerCall(t *testing.T) {
	policy := defaultPolicy()
	calc := NewThresholdCalculator(func() domain.ShippingPolicy { return policy })

	params := CostParams{ItemCount: 1, SubtotalCents: 4500}
	assert.Equal(t, int64(600), calc.Cost(params))

	policy.BaseCostCents = 900
	assert.Equal(t, int64(900), calc.Cost(params))
}

func TestFlatRateCalculator_Cost(t *testing.T) {
	calc := NewFlatRateCalculator(500)

	assert.Equal(t, int64(0), calc.Cost(CostParams{ItemCount: 0}))
	assert.Equal(t, int64(500), calc.Cost(CostParams{ItemCount: 1, SubtotalCents: 100}))
	assert.Equal(t, int64(500), calc.Cost(CostParams{ItemCount: 9, SubtotalCents: 99999}))
}
