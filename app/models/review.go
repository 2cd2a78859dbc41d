package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// Review is unique per (customer, product); the index backs the service-level
// duplicate pre-check against races.
type Review struct {
	ID         string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerID string  `gorm:"size:36;not null;uniqueIndex:idx_review_customer_product" json:"customer_id"`
	Customer   User    `gorm:"foreignKey:CustomerID" json:"-"`
	ProductID  string  `gorm:"size:36;not null;uniqueIndex:idx_review_customer_product" json:"product_id"`
	Product    Product `gorm:"foreignKey:ProductID" json:"-"`
	Rating     int     `gorm:"not null" json:"rating"`
	Body       string  `gorm:"type:text" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
