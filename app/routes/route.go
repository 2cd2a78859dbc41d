package routes

import (
	"log"
	"net/http"

	"github.com/bintangp/go-marketplace/app/configs"
	"github.com/bintangp/go-marketplace/app/handlers"
	"github.com/bintangp/go-marketplace/app/middlewares"
	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/bintangp/go-marketplace/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) http.Handler {
	rnd := render.New()

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("failed to load session keys: %v", err)
	}
	store := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	couponSvc := services.NewCouponService(couponRepo)
	cartSvc := services.NewCartService(cartItemRepo, productRepo, couponSvc)
	checkoutSvc := services.NewCheckoutService(db, cartItemRepo, productRepo, orderRepo, orderItemRepo, couponSvc, env.CheckoutApplyCoupon)
	fulfillmentSvc := services.NewFulfillmentService(orderRepo, orderItemRepo)
	reviewSvc := services.NewReviewService(reviewRepo, orderItemRepo, productRepo)
	productSvc := services.NewProductService(productRepo, categoryRepo, reviewSvc)

	authHandler := handlers.NewAuthHandler(userRepo, store, rnd)
	productHandler := handlers.NewProductHandler(productSvc, categoryRepo, rnd)
	vendorProductHandler := handlers.NewVendorProductHandler(productSvc, rnd)
	cartHandler := handlers.NewCartHandler(cartSvc, rnd)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, rnd)
	orderHandler := handlers.NewOrderHandler(orderRepo, fulfillmentSvc, rnd)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, rnd)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, rnd)
	couponHandler := handlers.NewCouponHandler(couponSvc, rnd)

	router := mux.NewRouter()
	router.Use(middlewares.CurrentUserMiddleware(store, userRepo))

	// Public catalog.
	router.HandleFunc("/products", productHandler.Products).Methods("GET")
	router.HandleFunc("/products/{id}", productHandler.ProductDetail).Methods("GET")
	router.HandleFunc("/categories", categoryHandler.List).Methods("GET")

	// Auth.
	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Customer routes.
	customer := router.PathPrefix("").Subrouter()
	customer.Use(middlewares.RequireAuth)
	customer.HandleFunc("/cart", cartHandler.View).Methods("GET")
	customer.HandleFunc("/cart/add/{productID}", cartHandler.Add).Methods("POST")
	customer.HandleFunc("/cart/remove/{id}", cartHandler.Remove).Methods("POST")
	customer.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	customer.HandleFunc("/orders", orderHandler.History).Methods("GET")
	customer.HandleFunc("/orders/{id}", orderHandler.Detail).Methods("GET")
	customer.HandleFunc("/products/{productID}/reviews", reviewHandler.Submit).Methods("POST")

	// Vendor routes.
	vendor := router.PathPrefix("/vendor").Subrouter()
	vendor.Use(middlewares.RequireRole(models.RoleVendor))
	vendor.HandleFunc("/products", vendorProductHandler.List).Methods("GET")
	vendor.HandleFunc("/products", vendorProductHandler.Create).Methods("POST")
	vendor.HandleFunc("/products/{id}", vendorProductHandler.Update).Methods("PUT")
	vendor.HandleFunc("/products/{id}", vendorProductHandler.Delete).Methods("DELETE")
	vendor.HandleFunc("/orders", orderHandler.VendorOrders).Methods("GET")
	vendor.HandleFunc("/orders/{id}/status", orderHandler.UpdateStatus).Methods("POST")

	// Admin routes.
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.RequireRole(models.RoleAdmin))
	admin.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	admin.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/coupons", couponHandler.List).Methods("GET")
	admin.HandleFunc("/coupons", couponHandler.Create).Methods("POST")

	if env.APP_ENV == "production" {
		csrfMiddleware := csrf.Protect(keys.AuthKey, csrf.Secure(true))
		return csrfMiddleware(router)
	}

	return router
}
