package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esenmoda/esen/internal"
	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/store"
)

func testShippingConfig() internal.ShippingConfig {
	return internal.ShippingConfig{BaseCostCents: 600, FreeThresholdCents: 10000, FreeItemCount: 3}
}

func TestSettingsService_SeedsFromConfig(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(ctx, testShippingConfig(), store.NewMemory(), nil)

	policy := svc.ShippingPolicy(ctx)
	assert.Equal(t, int64(600), policy.BaseCostCents)
	assert.Equal(t, int64(10000), policy.FreeThresholdCents)
	assert.Equal(t, 3, policy.FreeItemCount)
}

func TestSettingsService_UpdateShippingPolicy(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(ctx, testShippingConfig(), store.NewMemory(), nil)

	err := svc.UpdateShippingPolicy(ctx, domain.ShippingPolicy{
		BaseCostCents:      900,
		FreeThresholdCents: 15000,
		FreeItemCount:      5,
	})
	require.NoError(t, err)

	policy := svc.ShippingPolicy(ctx)
	assert.Equal(t, int64(900), policy.BaseCostCents)
	assert.Equal(t, int64(15000), policy.FreeThresholdCents)
	assert.Equal(t, 5, policy.FreeItemCount)
}

func TestSettingsService_UpdateShippingPolicy_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(ctx, testShippingConfig(), store.NewMemory(), nil)

	err := svc.UpdateShippingPolicy(ctx, domain.ShippingPolicy{BaseCostCents: -1, FreeThresholdCents: 0, FreeItemCount: 1})
	assert.True(t, domain.IsValidationError(err))

	err = svc.UpdateShippingPolicy(ctx, domain.ShippingPolicy{BaseCostCents: 0, FreeThresholdCents: -5, FreeItemCount: 1})
	assert.True(t, domain.IsValidationError(err))

	err = svc.UpdateShippingPolicy(ctx, domain.ShippingPolicy{BaseCostCents: 0, FreeThresholdCents: 0, FreeItemCount: 0})
	assert.True(t, domain.IsValidationError(err))

	// Rejected updates leave the policy untouched.
	assert.Equal(t, int64(600), svc.ShippingPolicy(ctx).BaseCostCents)
}

func TestSettingsService_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	svc := NewSettingsService(ctx, testShippingConfig(), st, nil)
	err := svc.UpdateShippingPolicy(ctx, domain.ShippingPolicy{
		BaseCostCents:      450,
		FreeThresholdCents: 8000,
		FreeItemCount:      2,
	})
	require.NoError(t, err)

	svc = NewSettingsService(ctx, testShippingConfig(), st, nil)
	policy := svc.ShippingPolicy(ctx)
	assert.Equal(t, int64(450), policy.BaseCostCents)
	assert.Equal(t, 2, policy.FreeItemCount)
}
