package services

import "errors"

// Business-rule violations surface as typed errors so callers can decide how
// to render them. Nothing in this layer swallows a failed check.
var (
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("operation not permitted")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient product stock")
	ErrConflict          = errors.New("duplicate record")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
