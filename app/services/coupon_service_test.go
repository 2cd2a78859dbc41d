package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCoupon(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createCoupon(t, "SAVE10", 10, true)
	env.createCoupon(t, "EXPIRED25", 25, false)
	hundred := decimal.NewFromInt(100)

	t.Run("active coupon", func(t *testing.T) {
		discount, final, err := env.couponSvc.Apply(ctx, "SAVE10", hundred)
		require.NoError(t, err)
		assert.Equal(t, "10.00", discount.StringFixed(2))
		assert.Equal(t, "90.00", final.StringFixed(2))
	})

	t.Run("code match is case-insensitive", func(t *testing.T) {
		discount, final, err := env.couponSvc.Apply(ctx, "save10", hundred)
		require.NoError(t, err)
		assert.Equal(t, "10.00", discount.StringFixed(2))
		assert.Equal(t, "90.00", final.StringFixed(2))
	})

	t.Run("inactive coupon does nothing", func(t *testing.T) {
		discount, final, err := env.couponSvc.Apply(ctx, "EXPIRED25", hundred)
		require.NoError(t, err)
		assert.True(t, discount.IsZero())
		assert.True(t, final.Equal(hundred))
	})

	t.Run("unknown code does nothing", func(t *testing.T) {
		discount, final, err := env.couponSvc.Apply(ctx, "NOPE", hundred)
		require.NoError(t, err)
		assert.True(t, discount.IsZero())
		assert.True(t, final.Equal(hundred))
	})

	t.Run("empty code does nothing", func(t *testing.T) {
		discount, final, err := env.couponSvc.Apply(ctx, "  ", hundred)
		require.NoError(t, err)
		assert.True(t, discount.IsZero())
		assert.True(t, final.Equal(hundred))
	})

	t.Run("discount rounds to cents", func(t *testing.T) {
		discount, final, err := env.couponSvc.Apply(ctx, "SAVE10", decimal.RequireFromString("19.99"))
		require.NoError(t, err)
		assert.Equal(t, "2.00", discount.StringFixed(2))
		assert.Equal(t, "17.99", final.StringFixed(2))
	})
}

func TestCreateCouponUppercasesCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	coupon, err := env.couponSvc.Create(ctx, " spring15 ", decimal.NewFromInt(15), true)
	require.NoError(t, err)
	assert.Equal(t, "SPRING15", coupon.Code)

	coupons, err := env.couponSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 1)
}
