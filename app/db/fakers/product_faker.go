package fakers

import (
	"math"
	"math/rand"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

func ProductFaker(vendor *models.User, category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word()

	return &models.Product{
		ID:          uuid.New().String(),
		UserID:      vendor.ID,
		CategoryID:  category.ID,
		Name:        name,
		Slug:        slug.Make(name + "-" + uuid.NewString()[:6]),
		Description: faker.Paragraph(),
		Price:       decimal.NewFromFloat(fakePrice()),
		Stock:       rand.Intn(20) + 1,
	}
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
