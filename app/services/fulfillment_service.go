package services

import (
	"context"
	"fmt"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/repositories"
)

// FulfillmentService lets a vendor move orders containing their products
// through the status machine: Pending -> Shipped -> Delivered, forward only.
type FulfillmentService struct {
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
}

func NewFulfillmentService(orderRepo repositories.OrderRepository, orderItemRepo repositories.OrderItemRepository) *FulfillmentService {
	return &FulfillmentService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// VendorOrderItems lists every sold line item belonging to the vendor.
func (s *FulfillmentService) VendorOrderItems(ctx context.Context, vendorID string) ([]models.OrderItem, error) {
	items, err := s.orderItemRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor order items: %w", err)
	}
	return items, nil
}

// UpdateStatus advances an order's status. The vendor must own at least one
// product in the order, the target status must be a known state, and the move
// must be a single forward step.
func (s *FulfillmentService) UpdateStatus(ctx context.Context, vendorID, orderID, newStatus string) error {
	if !models.ValidOrderStatus(newStatus) {
		return fmt.Errorf("status %q: %w", newStatus, ErrInvalidTransition)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}

	owns, err := s.orderItemRepo.ExistsForVendor(ctx, orderID, vendorID)
	if err != nil {
		return fmt.Errorf("failed to check order ownership: %w", err)
	}
	if !owns {
		return fmt.Errorf("order %s has no products of vendor %s: %w", orderID, vendorID, ErrForbidden)
	}

	if !models.CanTransition(order.Status, newStatus) {
		return fmt.Errorf("cannot move order %s from %s to %s: %w", orderID, order.Status, newStatus, ErrInvalidTransition)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
