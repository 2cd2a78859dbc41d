package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bintangp/go-marketplace/app/middlewares"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ReviewHandler struct {
	reviewSvc *services.ReviewService
	render    *render.Render
}

type reviewInput struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

func NewReviewHandler(reviewSvc *services.ReviewService, r *render.Render) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc, render: r}
}

func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r)
	productID := mux.Vars(r)["productID"]

	var input reviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	review, err := h.reviewSvc.Submit(r.Context(), user.ID, productID, input.Rating, input.Body)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, review)
}
