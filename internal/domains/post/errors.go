package post

import (
	"errors"
	"net/http"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrDuplicateSlug = errors.New("post with this slug already exists")
	ErrNotOwner      = errors.New("not authorized to modify this post")
	ErrInvalidRef    = errors.New("referenced record does not exist")
	ErrValidation    = errors.New("validation failed")
)

// GetHTTPStatusCode maps domain errors onto the API's error taxonomy.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrDuplicateSlug), errors.Is(err, ErrInvalidRef), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
