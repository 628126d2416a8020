package products

import (
	"errors"
	"net/http"
)

// Domain errors for product operations.
var (
	ErrValidation  = errors.New("invalid product")
	ErrUpload      = errors.New("image upload failed")
	ErrPersistence = errors.New("product store failure")
	ErrNotFound    = errors.New("product not found")
	ErrConflict    = errors.New("product was modified concurrently")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUpload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
