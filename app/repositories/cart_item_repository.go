package repositories

import (
	"context"

	"github.com/bintangp/go-marketplace/app/models"
	"gorm.io/gorm"
)

type CartItemRepository struct {
	DB *gorm.DB
}

type CartItemRepositoryImpl interface {
	Add(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.CartItem, error)
	GetByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	GetByUserTx(ctx context.Context, tx *gorm.DB, userID string) ([]models.CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error)
	CountForUser(ctx context.Context, userID string) (int, error)
	ClearForUser(ctx context.Context, tx *gorm.DB, userID string) error
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &CartItemRepository{db}
}

func (r *CartItemRepository) Add(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *CartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *CartItemRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", id).Error
}

func (r *CartItemRepository) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartItemRepository) GetByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	return fetchCartItems(r.DB.WithContext(ctx), userID)
}

// GetByUserTx re-reads the cart inside the checkout transaction so the
// snapshot being ordered is the one that gets cleared.
func (r *CartItemRepository) GetByUserTx(ctx context.Context, tx *gorm.DB, userID string) ([]models.CartItem, error) {
	return fetchCartItems(tx.WithContext(ctx), userID)
}

func fetchCartItems(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartItemRepository) GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartItemRepository) CountForUser(ctx context.Context, userID string) (int, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return int(count), err
}

func (r *CartItemRepository) ClearForUser(ctx context.Context, tx *gorm.DB, userID string) error {
	return tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
