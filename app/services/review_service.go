package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReviewService enforces that only customers who received a delivered order
// containing a product may review it, once.
type ReviewService struct {
	reviewRepo    repositories.ReviewRepositoryImpl
	orderItemRepo repositories.OrderItemRepository
	productRepo   repositories.ProductRepositoryImpl
}

func NewReviewService(
	reviewRepo repositories.ReviewRepositoryImpl,
	orderItemRepo repositories.OrderItemRepository,
	productRepo repositories.ProductRepositoryImpl,
) *ReviewService {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
	}
}

func (s *ReviewService) Submit(ctx context.Context, customerID, productID string, rating int, body string) (*models.Review, error) {
	if rating < models.RatingMin || rating > models.RatingMax {
		return nil, fmt.Errorf("rating %d: %w", rating, ErrInvalidRating)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	eligible, err := s.orderItemRepo.HasDeliveredProduct(ctx, customerID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check review eligibility: %w", err)
	}
	if !eligible {
		return nil, fmt.Errorf("no delivered order of product %s for customer %s: %w", productID, customerID, ErrForbidden)
	}

	exists, err := s.reviewRepo.ExistsByCustomerAndProduct(ctx, customerID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("product %s already reviewed: %w", productID, ErrConflict)
	}

	review := &models.Review{
		CustomerID: customerID,
		ProductID:  productID,
		Rating:     rating,
		Body:       body,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		// The unique index backs the pre-check against a concurrent insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("product %s already reviewed: %w", productID, ErrConflict)
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return s.reviewRepo.FindByProduct(ctx, productID)
}

// AverageRating is the mean rating rounded to one decimal place. With zero
// reviews it returns 0 with count 0; callers must check the count before
// treating the value as a rating.
func (s *ReviewService) AverageRating(ctx context.Context, productID string) (decimal.Decimal, int64, error) {
	avg, count, err := s.reviewRepo.Aggregate(ctx, productID)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	if count == 0 {
		return decimal.Zero, 0, nil
	}
	return decimal.NewFromFloat(avg).Round(1), count, nil
}
