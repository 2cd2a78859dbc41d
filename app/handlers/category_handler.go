package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/bintangp/go-marketplace/app/services"
	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryImpl, r *render.Render) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo, render: r}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	category := &models.Category{
		Name: input.Name,
		Slug: slug.Make(input.Name),
	}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if category == nil {
		respondError(h.render, w, fmt.Errorf("category %s: %w", id, services.ErrNotFound))
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
