package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService converts a non-empty cart into an order. All writes happen
// in one transaction: order, items, stock decrements and the cart clear either
// all land or none do.
type CheckoutService struct {
	db            *gorm.DB
	cartItemRepo  repositories.CartItemRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	couponSvc     *CouponService

	// applyCoupon controls whether a coupon code handed to Checkout reduces
	// the persisted order total. Off by default: the cart view shows the
	// discount but the order records the undiscounted sum.
	applyCoupon bool
}

func NewCheckoutService(
	db *gorm.DB,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
	couponSvc *CouponService,
	applyCoupon bool,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		cartItemRepo:  cartItemRepo,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		couponSvc:     couponSvc,
		applyCoupon:   applyCoupon,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, userID, couponCode string) (*models.Order, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("checkout: rolling back after panic: %v", r)
			tx.Rollback()
			panic(r)
		}
	}()

	// The cart is re-read inside the transaction so the snapshot we order is
	// the snapshot we clear.
	items, err := s.cartItemRepo.GetByUserTx(ctx, tx, userID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		tx.Rollback()
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for i := range items {
		item := &items[i]
		if item.Product == nil {
			tx.Rollback()
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrNotFound)
		}

		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
		total = total.Add(subtotal)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Qty:         item.Qty,
			Price:       item.Product.Price,
			Subtotal:    subtotal,
		})
	}
	total = total.Round(2)

	order := &models.Order{
		UserID:    userID,
		OrderCode: fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8]),
		OrderDate: time.Now(),
		Total:     total,
		Status:    models.OrderStatusPending,
	}

	if s.applyCoupon && couponCode != "" {
		discount, finalTotal, err := s.couponSvc.Apply(ctx, couponCode, total)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if discount.IsPositive() {
			order.Total = finalTotal
			order.DiscountAmount = discount
			order.CouponCode = couponCode
		}
	}

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.ID

		ok, err := s.productRepo.DecrementStock(ctx, tx, orderItems[i].ProductID, orderItems[i].Qty)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to decrement stock for product %s: %w", orderItems[i].ProductID, err)
		}
		if !ok {
			tx.Rollback()
			return nil, fmt.Errorf("product %s: %w", orderItems[i].ProductName, ErrInsufficientStock)
		}
	}

	if err := s.orderItemRepo.BulkCreate(ctx, tx, orderItems); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err := s.cartItemRepo.ClearForUser(ctx, tx, userID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}

	order.OrderItems = orderItems
	log.Printf("checkout: order %s placed for user %s, total %s", order.OrderCode, userID, order.Total)
	return order, nil
}
