package category

import (
	"errors"
	"net/http"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubCategoryNotFound = errors.New("subcategory not found")
	ErrDuplicateSlug       = errors.New("category with this slug already exists")
	ErrDuplicateSubSlug    = errors.New("subcategory with this slug already exists")
	ErrValidation          = errors.New("validation failed")
)

// GetHTTPStatusCode maps domain errors onto the API's error taxonomy.
// Duplicate slugs are 400 (the conflict shape this API publishes), not 409.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrSubCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug), errors.Is(err, ErrDuplicateSubSlug), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
