package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/store"
)

func TestCouponService_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	svc := NewCouponService(ctx, store.NewMemory(), nil)

	coupons, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.Equal(t, "BIENVENIDA20", coupons[0].Code)
	assert.Equal(t, 20, coupons[0].DiscountPercentage)
	assert.Equal(t, "ESEN10", coupons[1].Code)
	assert.Equal(t, 10, coupons[1].DiscountPercentage)
	assert.True(t, coupons[0].IsActive)
	assert.True(t, coupons[1].IsActive)
}

func TestCouponService_Upsert(t *testing.T) {
	ctx := context.Background()
	svc := NewCouponService(ctx, store.NewMemory(), nil)

	coupon, err := svc.Upsert(ctx, "verano15", 15)
	require.NoError(t, err)
	assert.Equal(t, "VERANO15", coupon.Code)
	assert.Equal(t, 15, coupon.DiscountPercentage)
	assert.True(t, coupon.IsActive)

	// Re-upserting the same code in another case replaces in place.
	_, err = svc.SetActive(ctx, "VERANO15", false)
	require.NoError(t, err)
	coupon, err = svc.Upsert(ctx, "Verano15", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, coupon.DiscountPercentage)
	assert.True(t, coupon.IsActive)

	coupons, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, coupons, 3)
}

func TestCouponService_Upsert_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewCouponService(ctx, store.NewMemory(), nil)

	_, err := svc.Upsert(ctx, "", 10)
	assert.ErrorIs(t, err, ErrCouponCodeMissing)

	_, err = svc.Upsert(ctx, "X", 0)
	assert.ErrorIs(t, err, ErrInvalidPercentage)

	_, err = svc.Upsert(ctx, "X", 101)
	assert.ErrorIs(t, err, ErrInvalidPercentage)

	_, err = svc.Upsert(ctx, "X", 100)
	assert.NoError(t, err)
}

func TestCouponService_Validate(t *testing.T) {
	ctx := context.Background()
	svc := NewCouponService(ctx, store.NewMemory(), nil)

	coupon, err := svc.Validate(ctx, "esen10")
	require.NoError(t, err)
	assert.Equal(t, "ESEN10", coupon.Code)

	_, err = svc.Validate(ctx, "MISSING")
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)

	_, err = svc.SetActive(ctx, "ESEN10", false)
	require.NoError(t, err)
	_, err = svc.Validate(ctx, "ESEN10")
	assert.ErrorIs(t, err, domain.ErrCouponInactive)
}

func TestCouponService_SetActive_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := NewCouponService(ctx, store.NewMemory(), nil)

	// Toggling an unknown code changes nothing and is not an error.
	coupon, err := svc.SetActive(ctx, "GHOST", true)
	require.NoError(t, err)
	assert.Nil(t, coupon)

	coupons, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, coupons, 2)
}

func TestCouponService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := NewCouponService(ctx, store.NewMemory(), nil)

	require.NoError(t, svc.Remove(ctx, "esen10"))
	// Removing again is a no-op.
	require.NoError(t, svc.Remove(ctx, "ESEN10"))

	coupons, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, coupons, 1)
}

func TestCouponService_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	svc := NewCouponService(ctx, st, nil)
	_, err := svc.Upsert(ctx, "REBAJA30", 30)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, "ESEN10"))

	// A fresh service over the same store sees the registry, not the seeds.
	svc = NewCouponService(ctx, st, nil)
	coupons, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.Equal(t, "BIENVENIDA20", coupons[0].Code)
	assert.Equal(t, "REBAJA30", coupons[1].Code)
	assert.Equal(t, 30, coupons[1].DiscountPercentage)
}
