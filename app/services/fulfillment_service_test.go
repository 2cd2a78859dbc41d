package services_test

import (
	"context"
	"testing"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) orderStatus(t *testing.T, orderID string) string {
	t.Helper()

	var order models.Order
	require.NoError(t, e.db.First(&order, "id = ?", orderID).Error)
	return order.Status
}

func TestUpdateStatusForwardOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendor := env.createUser(t, models.RoleVendor)
	customer := env.createUser(t, models.RoleCustomer)
	plant := env.createProduct(t, vendor, "Plant", "15.00", 5)
	order := env.createOrder(t, customer, models.OrderStatusPending, plant)

	require.NoError(t, env.fulfillmentSvc.UpdateStatus(ctx, vendor.ID, order.ID, models.OrderStatusShipped))
	assert.Equal(t, models.OrderStatusShipped, env.orderStatus(t, order.ID))

	require.NoError(t, env.fulfillmentSvc.UpdateStatus(ctx, vendor.ID, order.ID, models.OrderStatusDelivered))
	assert.Equal(t, models.OrderStatusDelivered, env.orderStatus(t, order.ID))
}

func TestUpdateStatusRejectsBackwardAndSkippedMoves(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendor := env.createUser(t, models.RoleVendor)
	customer := env.createUser(t, models.RoleCustomer)
	pot := env.createProduct(t, vendor, "Pot", "22.00", 5)

	t.Run("pending cannot jump to delivered", func(t *testing.T) {
		order := env.createOrder(t, customer, models.OrderStatusPending, pot)
		err := env.fulfillmentSvc.UpdateStatus(ctx, vendor.ID, order.ID, models.OrderStatusDelivered)
		require.ErrorIs(t, err, services.ErrInvalidTransition)
		assert.Equal(t, models.OrderStatusPending, env.orderStatus(t, order.ID))
	})

	t.Run("shipped cannot go back to pending", func(t *testing.T) {
		order := env.createOrder(t, customer, models.OrderStatusShipped, pot)
		err := env.fulfillmentSvc.UpdateStatus(ctx, vendor.ID, order.ID, models.OrderStatusPending)
		require.ErrorIs(t, err, services.ErrInvalidTransition)
		assert.Equal(t, models.OrderStatusShipped, env.orderStatus(t, order.ID))
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		order := env.createOrder(t, customer, models.OrderStatusDelivered, pot)
		err := env.fulfillmentSvc.UpdateStatus(ctx, vendor.ID, order.ID, models.OrderStatusShipped)
		require.ErrorIs(t, err, services.ErrInvalidTransition)
		assert.Equal(t, models.OrderStatusDelivered, env.orderStatus(t, order.ID))
	})

	t.Run("unknown status name", func(t *testing.T) {
		order := env.createOrder(t, customer, models.OrderStatusPending, pot)
		err := env.fulfillmentSvc.UpdateStatus(ctx, vendor.ID, order.ID, "Refunded")
		require.ErrorIs(t, err, services.ErrInvalidTransition)
		assert.Equal(t, models.OrderStatusPending, env.orderStatus(t, order.ID))
	})
}

func TestUpdateStatusForeignVendor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendor := env.createUser(t, models.RoleVendor)
	intruder := env.createUser(t, models.RoleVendor)
	customer := env.createUser(t, models.RoleCustomer)
	rug := env.createProduct(t, vendor, "Rug", "90.00", 5)
	order := env.createOrder(t, customer, models.OrderStatusPending, rug)

	err := env.fulfillmentSvc.UpdateStatus(ctx, intruder.ID, order.ID, models.OrderStatusShipped)
	require.ErrorIs(t, err, services.ErrForbidden)
	assert.Equal(t, models.OrderStatusPending, env.orderStatus(t, order.ID))
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.createUser(t, models.RoleVendor)

	err := env.fulfillmentSvc.UpdateStatus(context.Background(), vendor.ID, "no-such-order", models.OrderStatusShipped)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestVendorOrderItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendor := env.createUser(t, models.RoleVendor)
	other := env.createUser(t, models.RoleVendor)
	customer := env.createUser(t, models.RoleCustomer)

	mug := env.createProduct(t, vendor, "Mug", "8.00", 10)
	vase := env.createProduct(t, other, "Vase", "30.00", 10)
	env.createOrder(t, customer, models.OrderStatusPending, mug, vase)

	items, err := env.fulfillmentSvc.VendorOrderItems(ctx, vendor.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mug.ID, items[0].ProductID)

	items, err = env.fulfillmentSvc.VendorOrderItems(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, vase.ID, items[0].ProductID)
}
