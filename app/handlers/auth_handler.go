package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bintangp/go-marketplace/app/helpers"
	"github.com/bintangp/go-marketplace/app/models"
	"github.com/bintangp/go-marketplace/app/repositories"
	"github.com/bintangp/go-marketplace/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	userRepo repositories.UserRepositoryImpl
	store    sessions.SessionStore
	validate *validator.Validate
	render   *render.Render
}

type registerInput struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=vendor customer"`
	Address   string `json:"address"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, store sessions.SessionStore, r *render.Render) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		store:    store,
		validate: validator.New(),
		render:   r,
	}
}

// Register creates a user with the role they picked. The role is fixed from
// here on.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"errors": helpers.FormatValidationErrors(errs)})
			return
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), input.Email)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if existing != nil {
		h.render.JSON(w, http.StatusConflict, map[string]string{"error": "email already registered"})
		return
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
		Address:   input.Address,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		respondError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), input.Email)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(input.Password)) {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}

	if err := h.store.SetUserID(w, r, user.ID); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearSession(w, r); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
