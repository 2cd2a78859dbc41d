package services_test

import (
	"context"
	"testing"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCreatesOrderFromCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendor := env.createUser(t, models.RoleVendor)
	customer := env.createUser(t, models.RoleCustomer)
	keyboard := env.createProduct(t, vendor, "Keyboard", "45.50", 10)
	mouse := env.createProduct(t, vendor, "Mouse", "19.99", 5)

	env.addToCart(t, customer, keyboard, 2)
	env.addToCart(t, customer, mouse, 1)

	order, err := env.checkoutSvc.Checkout(ctx, customer.ID, "")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "110.99", order.Total.StringFixed(2))
	assert.True(t, order.DiscountAmount.IsZero())
	assert.NotEmpty(t, order.OrderCode)
	require.Len(t, order.OrderItems, 2)

	byProduct := map[string]models.OrderItem{}
	for _, item := range order.OrderItems {
		byProduct[item.ProductID] = item
	}
	assert.Equal(t, "Keyboard", byProduct[keyboard.ID].ProductName)
	assert.Equal(t, 2, byProduct[keyboard.ID].Qty)
	assert.Equal(t, "45.50", byProduct[keyboard.ID].Price.StringFixed(2))
	assert.Equal(t, "91.00", byProduct[keyboard.ID].Subtotal.StringFixed(2))
	assert.Equal(t, "19.99", byProduct[mouse.ID].Subtotal.StringFixed(2))

	assert.Equal(t, 8, env.productStock(t, keyboard.ID))
	assert.Equal(t, 4, env.productStock(t, mouse.ID))

	count, err := env.cartItemRepo.CountForUser(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, models.RoleCustomer)

	order, err := env.checkoutSvc.Checkout(context.Background(), customer.ID, "")
	require.ErrorIs(t, err, services.ErrEmptyCart)
	assert.Nil(t, order)
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendor := env.createUser(t, models.RoleVendor)
	customer := env.createUser(t, models.RoleCustomer)
	lamp := env.createProduct(t, vendor, "Lamp", "30.00", 10)
	chair := env.createProduct(t, vendor, "Chair", "80.00", 1)
	desk := env.createProduct(t, vendor, "Desk", "120.00", 10)

	env.addToCart(t, customer, lamp, 1)
	env.addToCart(t, customer, chair, 3) // only 1 in stock
	env.addToCart(t, customer, desk, 1)

	order, err := env.checkoutSvc.Checkout(ctx, customer.ID, "")
	require.ErrorIs(t, err, services.ErrInsufficientStock)
	assert.Nil(t, order)

	// Nothing from the failed checkout may persist.
	assert.Zero(t, env.countRows(t, &models.Order{}))
	assert.Zero(t, env.countRows(t, &models.OrderItem{}))
	assert.Equal(t, 10, env.productStock(t, lamp.ID))
	assert.Equal(t, 1, env.productStock(t, chair.ID))
	assert.Equal(t, 10, env.productStock(t, desk.ID))

	count, err := env.cartItemRepo.CountForUser(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCheckoutLastUnitGoesToOneBuyer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendor := env.createUser(t, models.RoleVendor)
	first := env.createUser(t, models.RoleCustomer)
	second := env.createUser(t, models.RoleCustomer)
	vinyl := env.createProduct(t, vendor, "Vinyl", "25.00", 1)

	env.addToCart(t, first, vinyl, 1)
	env.addToCart(t, second, vinyl, 1)

	order, err := env.checkoutSvc.Checkout(ctx, first.ID, "")
	require.NoError(t, err)
	require.NotNil(t, order)

	// The decrement is conditional on remaining stock, so the second buyer
	// fails instead of driving the count negative.
	_, err = env.checkoutSvc.Checkout(ctx, second.ID, "")
	require.ErrorIs(t, err, services.ErrInsufficientStock)

	assert.Equal(t, 0, env.productStock(t, vinyl.ID))
	assert.Equal(t, int64(1), env.countRows(t, &models.Order{}))
}

func TestCheckoutCouponDisabledByDefault(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendor := env.createUser(t, models.RoleVendor)
	customer := env.createUser(t, models.RoleCustomer)
	product := env.createProduct(t, vendor, "Headphones", "100.00", 5)
	env.createCoupon(t, "SAVE10", 10, true)
	env.addToCart(t, customer, product, 1)

	order, err := env.checkoutSvc.Checkout(ctx, customer.ID, "SAVE10")
	require.NoError(t, err)

	assert.Equal(t, "100.00", order.Total.StringFixed(2))
	assert.True(t, order.DiscountAmount.IsZero())
	assert.Empty(t, order.CouponCode)
}

func TestCheckoutCouponApplied(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	checkoutSvc := services.NewCheckoutService(
		env.db, env.cartItemRepo, env.productRepo, env.orderRepo, env.orderItemRepo, env.couponSvc, true)

	vendor := env.createUser(t, models.RoleVendor)
	customer := env.createUser(t, models.RoleCustomer)
	product := env.createProduct(t, vendor, "Monitor", "100.00", 5)
	env.createCoupon(t, "SAVE10", 10, true)
	env.addToCart(t, customer, product, 1)

	order, err := checkoutSvc.Checkout(ctx, customer.ID, "SAVE10")
	require.NoError(t, err)

	assert.Equal(t, "90.00", order.Total.StringFixed(2))
	assert.Equal(t, "10.00", order.DiscountAmount.StringFixed(2))
	assert.Equal(t, "SAVE10", order.CouponCode)
}

func TestCheckoutUnknownCouponStillPlacesOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	checkoutSvc := services.NewCheckoutService(
		env.db, env.cartItemRepo, env.productRepo, env.orderRepo, env.orderItemRepo, env.couponSvc, true)

	vendor := env.createUser(t, models.RoleVendor)
	customer := env.createUser(t, models.RoleCustomer)
	product := env.createProduct(t, vendor, "Webcam", "60.00", 5)
	env.addToCart(t, customer, product, 1)

	order, err := checkoutSvc.Checkout(ctx, customer.ID, "NOPE")
	require.NoError(t, err)

	assert.Equal(t, "60.00", order.Total.StringFixed(2))
	assert.True(t, order.DiscountAmount.IsZero())
}
