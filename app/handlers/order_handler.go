package handlers

import (
	"fmt"
	"net/http"

	"github.com/bintangp/go-marketplace/app/middlewares"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orderRepo      repositories.OrderRepository
	fulfillmentSvc *services.FulfillmentService
	render         *render.Render
}

func NewOrderHandler(orderRepo repositories.OrderRepository, fulfillmentSvc *services.FulfillmentService, r *render.Render) *OrderHandler {
	return &OrderHandler{
		orderRepo:      orderRepo,
		fulfillmentSvc: fulfillmentSvc,
		render:         r,
	}
}

// History lists the customer's own orders, newest first.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r)

	orders, err := h.orderRepo.FindByUserID(r.Context(), user.ID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r)
	orderID := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), orderID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if order == nil || order.UserID != user.ID {
		respondError(h.render, w, fmt.Errorf("order %s: %w", orderID, services.ErrNotFound))
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}

// VendorOrders lists sold line items for the vendor's products.
func (h *OrderHandler) VendorOrders(w http.ResponseWriter, r *http.Request) {
	vendor := middlewares.UserFromContext(r)

	items, err := h.fulfillmentSvc.VendorOrderItems(r.Context(), vendor.ID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"order_items": items})
}

// UpdateStatus advances the fulfillment status of an order the vendor shares.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vendor := middlewares.UserFromContext(r)
	orderID := mux.Vars(r)["id"]
	newStatus := r.FormValue("status")

	if err := h.fulfillmentSvc.UpdateStatus(r.Context(), vendor.ID, orderID, newStatus); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": newStatus})
}
