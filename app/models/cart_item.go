package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one entry per (user, product). Adding the same product again
// increments Qty instead of inserting a second row.
type CartItem struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string   `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	User      User     `gorm:"foreignKey:UserID" json:"-"`
	ProductID string   `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Qty       int      `gorm:"not null;default:1" json:"qty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}

// LineTotal is Qty times the current product price. It is computed, never stored.
func (ci *CartItem) LineTotal() decimal.Decimal {
	if ci.Product == nil {
		return decimal.Zero
	}
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Qty)))
}
