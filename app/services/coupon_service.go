package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/bintangp/go-marketplace/app/utils/calc"
	"github.com/shopspring/decimal"
)

type CouponService struct {
	couponRepo repositories.CouponRepositoryImpl
}

func NewCouponService(couponRepo repositories.CouponRepositoryImpl) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// Apply computes the discount a code is worth against cartTotal. An unknown or
// inactive code is not an error: the discount is zero and the total is
// unchanged, which is what the cart view shows.
func (s *CouponService) Apply(ctx context.Context, code string, cartTotal decimal.Decimal) (discount, finalTotal decimal.Decimal, err error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return decimal.Zero, cartTotal, nil
	}

	coupon, err := s.couponRepo.FindActiveByCode(ctx, code)
	if err != nil {
		return decimal.Zero, cartTotal, fmt.Errorf("failed to look up coupon %q: %w", code, err)
	}
	if coupon == nil {
		return decimal.Zero, cartTotal, nil
	}

	discount = calc.CalculateDiscount(cartTotal, coupon.DiscountPercent)
	return discount, cartTotal.Sub(discount), nil
}

func (s *CouponService) Create(ctx context.Context, code string, discountPercent decimal.Decimal, active bool) (*models.Coupon, error) {
	coupon := &models.Coupon{
		Code:            strings.ToUpper(strings.TrimSpace(code)),
		DiscountPercent: discountPercent,
		Active:          active,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return coupon, nil
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.couponRepo.GetAll(ctx)
}
