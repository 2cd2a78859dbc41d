package handlers

import (
	"net/http"

	"github.com/bintangp/go-marketplace/app/middlewares"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	checkoutSvc *services.CheckoutService
	render      *render.Render
}

func NewCheckoutHandler(checkoutSvc *services.CheckoutService, r *render.Render) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc, render: r}
}

// Checkout places the order. There is no payment step; a successful checkout
// goes straight to the confirmation payload.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r)
	couponCode := r.FormValue("coupon_code")

	order, err := h.checkoutSvc.Checkout(r.Context(), user.ID, couponCode)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"order":   order,
		"message": "order placed",
	})
}
