package seeders

import (
	"github.com/bintangp/go-marketplace/app/db/fakers"
	"github.com/bintangp/go-marketplace/app/models"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var categoryNames = []string{"Electronics", "Fashion", "Home", "Books"}

func DBSeed(db *gorm.DB) error {
	categories := make([]*models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := &models.Category{Name: name, Slug: slug.Make(name)}
		if err := db.FirstOrCreate(category, "name = ?", name).Error; err != nil {
			return err
		}
		categories = append(categories, category)
	}

	vendor := fakers.UserFaker(models.RoleVendor)
	if err := db.FirstOrCreate(vendor, "email = ?", vendor.Email).Error; err != nil {
		return err
	}

	customer := fakers.UserFaker(models.RoleCustomer)
	if err := db.FirstOrCreate(customer, "email = ?", customer.Email).Error; err != nil {
		return err
	}

	for i := 0; i < 12; i++ {
		product := fakers.ProductFaker(vendor, categories[i%len(categories)])
		if err := db.Create(product).Error; err != nil {
			return err
		}
	}

	coupon := &models.Coupon{
		Code:            "SAVE10",
		DiscountPercent: decimal.NewFromInt(10),
		Active:          true,
	}
	return db.FirstOrCreate(coupon, "code = ?", coupon.Code).Error
}
