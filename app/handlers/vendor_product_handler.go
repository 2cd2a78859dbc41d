package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bintangp/go-marketplace/app/helpers"
	"github.com/bintangp/go-marketplace/app/middlewares"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type VendorProductHandler struct {
	productSvc *services.ProductService
	validate   *validator.Validate
	render     *render.Render
}

func NewVendorProductHandler(p *services.ProductService, r *render.Render) *VendorProductHandler {
	return &VendorProductHandler{
		productSvc: p,
		validate:   validator.New(),
		render:     r,
	}
}

func (h *VendorProductHandler) List(w http.ResponseWriter, r *http.Request) {
	vendor := middlewares.UserFromContext(r)

	products, err := h.productSvc.VendorProducts(r.Context(), vendor.ID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *VendorProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	vendor := middlewares.UserFromContext(r)

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	product, err := h.productSvc.Create(r.Context(), vendor.ID, input)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, product)
}

func (h *VendorProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	vendor := middlewares.UserFromContext(r)
	productID := mux.Vars(r)["id"]

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	product, err := h.productSvc.Update(r.Context(), vendor.ID, productID, input)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

func (h *VendorProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vendor := middlewares.UserFromContext(r)
	productID := mux.Vars(r)["id"]

	if err := h.productSvc.Delete(r.Context(), vendor.ID, productID); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *VendorProductHandler) decodeInput(w http.ResponseWriter, r *http.Request) (services.ProductInput, bool) {
	var input services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return input, false
	}
	if err := h.validate.Struct(input); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"errors": helpers.FormatValidationErrors(errs)})
			return input, false
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return input, false
	}
	return input, true
}
