package handlers

import (
	"net/http"

	"github.com/bintangp/go-marketplace/app/middlewares"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, r *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, render: r}
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r)
	productID := mux.Vars(r)["productID"]

	item, err := h.cartSvc.AddItem(r.Context(), user.ID, productID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, item)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r)
	cartItemID := mux.Vars(r)["id"]

	if err := h.cartSvc.RemoveItem(r.Context(), user.ID, cartItemID); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// View shows the cart; an optional coupon code query applies a display-time
// discount.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r)
	couponCode := r.URL.Query().Get("coupon_code")

	view, err := h.cartSvc.View(r.Context(), user.ID, couponCode)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, view)
}
