package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/models/migrations"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory database, so every pooled connection sees
	// the same data instead of its own empty one.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", "test-"+timeSuffix())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

type testEnv struct {
	db *gorm.DB

	cartItemRepo  repositories.CartItemRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	couponRepo    repositories.CouponRepositoryImpl
	reviewRepo    repositories.ReviewRepositoryImpl
	categoryRepo  repositories.CategoryRepositoryImpl

	couponSvc      *services.CouponService
	cartSvc        *services.CartService
	checkoutSvc    *services.CheckoutService
	fulfillmentSvc *services.FulfillmentService
	reviewSvc      *services.ReviewService
	productSvc     *services.ProductService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupDB(t)

	env := &testEnv{
		db:            db,
		cartItemRepo:  repositories.NewCartItemRepository(db),
		productRepo:   repositories.NewProductRepository(db),
		orderRepo:     repositories.NewOrderRepository(db),
		orderItemRepo: repositories.NewOrderItemRepository(db),
		couponRepo:    repositories.NewCouponRepository(db),
		reviewRepo:    repositories.NewReviewRepository(db),
		categoryRepo:  repositories.NewCategoryRepository(db),
	}

	env.couponSvc = services.NewCouponService(env.couponRepo)
	env.cartSvc = services.NewCartService(env.cartItemRepo, env.productRepo, env.couponSvc)
	env.checkoutSvc = services.NewCheckoutService(db, env.cartItemRepo, env.productRepo, env.orderRepo, env.orderItemRepo, env.couponSvc, false)
	env.fulfillmentSvc = services.NewFulfillmentService(env.orderRepo, env.orderItemRepo)
	env.reviewSvc = services.NewReviewService(env.reviewRepo, env.orderItemRepo, env.productRepo)
	env.productSvc = services.NewProductService(env.productRepo, env.categoryRepo, env.reviewSvc)

	return env
}

func (e *testEnv) createUser(t *testing.T, role string) *models.User {
	t.Helper()

	user := &models.User{
		FirstName: "Test",
		LastName:  role,
		Email:     role + "-" + timeSuffix() + "@example.com",
		Password:  "hashed",
		Role:      role,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createCategory(t *testing.T, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Slug: name}
	require.NoError(t, e.db.Create(category).Error)
	return category
}

func (e *testEnv) createProduct(t *testing.T, vendor *models.User, name string, price string, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		UserID: vendor.ID,
		Name:   name,
		Slug:   name + "-" + timeSuffix(),
		Price:  mustDecimal(t, price),
		Stock:  stock,
	}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func (e *testEnv) addToCart(t *testing.T, user *models.User, product *models.Product, qty int) *models.CartItem {
	t.Helper()

	item := &models.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Qty:       qty,
	}
	require.NoError(t, e.db.Create(item).Error)
	return item
}

func (e *testEnv) createCoupon(t *testing.T, code string, percent int64, active bool) *models.Coupon {
	t.Helper()

	coupon := &models.Coupon{
		Code:            code,
		DiscountPercent: decimal.NewFromInt(percent),
		Active:          active,
	}
	require.NoError(t, e.db.Create(coupon).Error)
	return coupon
}

// createOrder writes an order with its items directly, bypassing checkout.
// Used to set up fulfillment and review scenarios.
func (e *testEnv) createOrder(t *testing.T, customer *models.User, status string, products ...*models.Product) *models.Order {
	t.Helper()

	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}

	order := &models.Order{
		UserID:    customer.ID,
		OrderCode: "TEST-" + timeSuffix(),
		OrderDate: time.Now(),
		Total:     total,
		Status:    status,
	}
	require.NoError(t, e.db.Create(order).Error)

	for _, p := range products {
		item := &models.OrderItem{
			OrderID:     order.ID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Qty:         1,
			Price:       p.Price,
			Subtotal:    p.Price,
		}
		require.NoError(t, e.db.Create(item).Error)
	}
	return order
}

func (e *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, e.db.Model(model).Count(&count).Error)
	return count
}

func (e *testEnv) productStock(t *testing.T, productID string) int {
	t.Helper()

	var product models.Product
	require.NoError(t, e.db.First(&product, "id = ?", productID).Error)
	return product.Stock
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

var suffixCounter int

func timeSuffix() string {
	suffixCounter++
	return time.Now().Format("150405.000000") + "-" + string(rune('a'+suffixCounter%26)) + string(rune('a'+(suffixCounter/26)%26))
}
