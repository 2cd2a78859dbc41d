package handlers

import (
	"net/http"
	"strconv"

	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	productSvc   *services.ProductService
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewProductHandler(p *services.ProductService, c repositories.CategoryRepositoryImpl, r *render.Render) *ProductHandler {
	return &ProductHandler{p, c, r}
}

// Products lists the catalog with optional text, category and price filters.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit := 9
	offset := (page - 1) * limit

	filter := repositories.ProductFilter{
		Query:      q.Get("q"),
		CategoryID: q.Get("category"),
	}
	if raw := q.Get("min_price"); raw != "" {
		if min, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &min
		}
	}
	if raw := q.Get("max_price"); raw != "" {
		if max, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &max
		}
	}

	products, total, err := h.productSvc.List(r.Context(), filter, limit, offset)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products":    products,
		"categories":  categories,
		"page":        page,
		"total_pages": totalPages,
		"total":       total,
	})
}

// ProductDetail returns the product with its reviews and aggregate rating.
func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	detail, err := h.productSvc.Detail(r.Context(), productID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, detail)
}
