package repositories

import (
	"context"

	"github.com/bintangp/go-marketplace/app/models"
	"gorm.io/gorm"
)

type OrderItemRepository interface {
	BulkCreate(ctx context.Context, db *gorm.DB, items []models.OrderItem) error
	FindByVendor(ctx context.Context, vendorID string) ([]models.OrderItem, error)
	ExistsForVendor(ctx context.Context, orderID, vendorID string) (bool, error)
	HasDeliveredProduct(ctx context.Context, customerID, productID string) (bool, error)
}

type OrderItemRepositoryImpl struct {
	DB *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &OrderItemRepositoryImpl{DB: db}
}

func (r *OrderItemRepositoryImpl) BulkCreate(ctx context.Context, db *gorm.DB, items []models.OrderItem) error {
	return db.WithContext(ctx).Create(&items).Error
}

// FindByVendor lists every line item whose product belongs to the vendor,
// across all orders.
func (r *OrderItemRepositoryImpl) FindByVendor(ctx context.Context, vendorID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.DB.WithContext(ctx).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.user_id = ?", vendorID).
		Preload("Order").
		Preload("Product").
		Order("order_items.created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *OrderItemRepositoryImpl) ExistsForVendor(ctx context.Context, orderID, vendorID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ? AND products.user_id = ?", orderID, vendorID).
		Count(&count).Error
	return count > 0, err
}

// HasDeliveredProduct reports whether the customer has a Delivered order
// containing the product. This is the review-eligibility check.
func (r *OrderItemRepositoryImpl) HasDeliveredProduct(ctx context.Context, customerID, productID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.product_id = ?",
			customerID, models.OrderStatusDelivered, productID).
		Count(&count).Error
	return count > 0, err
}
