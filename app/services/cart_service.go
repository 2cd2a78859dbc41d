package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/bintangp/go-marketplace/app/utils/calc"
	"github.com/bintangp/go-marketplace/app/utils/format"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	couponSvc    *CouponService
}

// CartView is what the cart page renders: the entries plus the coupon math.
type CartView struct {
	Items             []models.CartItem `json:"items"`
	Total             decimal.Decimal   `json:"total"`
	Discount          decimal.Decimal   `json:"discount"`
	FinalTotal        decimal.Decimal   `json:"final_total"`
	FinalTotalDisplay string            `json:"final_total_display"`
	CouponCode        string            `json:"coupon_code,omitempty"`
}

func NewCartService(cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl, couponSvc *CouponService) *CartService {
	return &CartService{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		couponSvc:    couponSvc,
	}
}

// AddItem adds one unit of the product to the user's cart. A repeated add
// increments the existing entry rather than creating a second one.
func (s *CartService) AddItem(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	existing, err := s.cartItemRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if existing != nil {
		if product.Stock < existing.Qty+1 {
			return nil, fmt.Errorf("product %s: %w", product.Name, ErrInsufficientStock)
		}
		existing.Qty++
		if err := s.cartItemRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		existing.Product = product
		return existing, nil
	}

	if product.Stock < 1 {
		return nil, fmt.Errorf("product %s: %w", product.Name, ErrInsufficientStock)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Qty:       1,
	}
	if err := s.cartItemRepo.Add(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	item.Product = product
	return item, nil
}

// RemoveItem deletes a cart entry the user owns. A missing or foreign entry is
// ErrNotFound, never a silent no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, cartItemID string) error {
	item, err := s.cartItemRepo.GetByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart item %s: %w", cartItemID, ErrNotFound)
		}
		return fmt.Errorf("failed to get cart item: %w", err)
	}
	if item.UserID != userID {
		return fmt.Errorf("cart item %s: %w", cartItemID, ErrNotFound)
	}

	if err := s.cartItemRepo.Delete(ctx, cartItemID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// View returns the user's cart with line totals, the undiscounted sum, and the
// coupon discount when a code is supplied.
func (s *CartService) View(ctx context.Context, userID, couponCode string) (*CartView, error) {
	items, err := s.cartItemRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	lineTotals := make([]decimal.Decimal, len(items))
	for i := range items {
		lineTotals[i] = items[i].LineTotal()
	}
	total := calc.CartTotal(lineTotals)

	discount, finalTotal, err := s.couponSvc.Apply(ctx, couponCode, total)
	if err != nil {
		return nil, err
	}

	return &CartView{
		Items:             items,
		Total:             total,
		Discount:          discount,
		FinalTotal:        finalTotal,
		FinalTotalDisplay: format.Money(finalTotal),
		CouponCode:        couponCode,
	}, nil
}

func (s *CartService) Count(ctx context.Context, userID string) (int, error) {
	return s.cartItemRepo.CountForUser(ctx, userID)
}
