package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
)

// ValidOrderStatus reports whether s is one of the known fulfillment states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// CanTransition allows forward moves only: Pending -> Shipped -> Delivered.
func CanTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusShipped
	case OrderStatusShipped:
		return to == OrderStatusDelivered
	}
	return false
}

type Order struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	OrderCode string    `gorm:"size:255;unique;not null" json:"order_code"`
	OrderDate time.Time `gorm:"not null" json:"order_date"`

	OrderItems []OrderItem `json:"order_items,omitempty"`

	// Total is the snapshot taken at checkout. Later product price changes
	// never affect it.
	Total          decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(16,2);default:0.00" json:"discount_amount"`
	CouponCode     string          `gorm:"size:20" json:"coupon_code,omitempty"`

	Status string `gorm:"size:20;default:'Pending';not null" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
