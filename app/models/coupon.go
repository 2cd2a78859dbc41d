package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Coupon struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Code            string          `gorm:"size:20;not null;uniqueIndex" json:"code"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount_percent"`
	Active          bool            `gorm:"default:true;not null" json:"active"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
