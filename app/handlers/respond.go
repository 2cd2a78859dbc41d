package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bintangp/go-marketplace/app/services"
	"github.com/unrolled/render"
)

// statusForError maps the business-error taxonomy onto HTTP statuses. The
// services never decide presentation; this is the only place that happens.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidRating):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(rnd *render.Render, w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		rnd.JSON(w, status, map[string]string{"error": "internal server error"})
		return
	}
	rnd.JSON(w, status, map[string]string{"error": err.Error()})
}
