package services

import (
	"context"
	"fmt"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

type ProductService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	reviewSvc    *ReviewService
}

// ProductInput carries the vendor-editable fields.
type ProductInput struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// ProductDetail is the product page payload.
type ProductDetail struct {
	Product       models.Product  `json:"product"`
	Reviews       []models.Review `json:"reviews"`
	AverageRating decimal.Decimal `json:"average_rating"`
	ReviewCount   int64           `json:"review_count"`
}

func NewProductService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	reviewSvc *ReviewService,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewSvc:    reviewSvc,
	}
}

func (s *ProductService) List(ctx context.Context, filter repositories.ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	return s.productRepo.GetFiltered(ctx, filter, limit, offset)
}

func (s *ProductService) Detail(ctx context.Context, productID string) (*ProductDetail, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	reviews, err := s.reviewSvc.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	avg, count, err := s.reviewSvc.AverageRating(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		Product:       *product,
		Reviews:       reviews,
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}

func (s *ProductService) VendorProducts(ctx context.Context, vendorID string) ([]models.Product, error) {
	return s.productRepo.GetByVendor(ctx, vendorID)
}

func (s *ProductService) Create(ctx context.Context, vendorID string, input ProductInput) (*models.Product, error) {
	if input.Price.IsNegative() || input.Stock < 0 {
		return nil, fmt.Errorf("price and stock must not be negative: %w", ErrConflict)
	}

	productSlug, err := s.uniqueSlug(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		UserID:      vendorID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Slug:        productSlug,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, vendorID, productID string, input ProductInput) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}
	if input.Price.IsNegative() || input.Stock < 0 {
		return nil, fmt.Errorf("price and stock must not be negative: %w", ErrConflict)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	if input.CategoryID != "" {
		product.CategoryID = input.CategoryID
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, vendorID, productID string) error {
	if _, err := s.ownedProduct(ctx, vendorID, productID); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *ProductService) ownedProduct(ctx context.Context, vendorID, productID string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	if product.UserID != vendorID {
		return nil, fmt.Errorf("product %s is not owned by vendor %s: %w", productID, vendorID, ErrForbidden)
	}
	return product, nil
}

// uniqueSlug slugifies the name and, on collision, retries with a short random
// suffix until the slug is free.
func (s *ProductService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for {
		exists, err := s.productRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%s", base, uuid.NewString()[:6])
	}
}
