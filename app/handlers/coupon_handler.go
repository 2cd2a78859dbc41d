package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bintangp/go-marketplace/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type CouponHandler struct {
	couponSvc *services.CouponService
	render    *render.Render
}

func NewCouponHandler(couponSvc *services.CouponService, r *render.Render) *CouponHandler {
	return &CouponHandler{couponSvc: couponSvc, render: r}
}

func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponSvc.List(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"coupons": coupons})
}

func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Code            string          `json:"code"`
		DiscountPercent decimal.Decimal `json:"discount_percent"`
		Active          bool            `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Code == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "code is required"})
		return
	}

	coupon, err := h.couponSvc.Create(r.Context(), input.Code, input.DiscountPercent, input.Active)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, coupon)
}
