package repositories

import (
	"context"
	"strings"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter narrows catalog listings. Zero-value fields are ignored.
type ProductFilter struct {
	Query      string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	GetByVendor(ctx context.Context, vendorID string) ([]models.Product, error)
	GetFiltered(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, productID string, qty int) (bool, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (p *productRepository) GetByVendor(ctx context.Context, vendorID string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", vendorID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetFiltered(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := p.db.WithContext(ctx).Model(&models.Product{})

	if filter.Query != "" {
		keyword := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(name) LIKE ?", keyword)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

// DecrementStock reduces stock by qty only when enough stock remains. It
// reports false when the guard rejected the update, which callers must treat
// as insufficient stock.
func (p *productRepository) DecrementStock(ctx context.Context, tx *gorm.DB, productID string, qty int) (bool, error) {
	result := tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
