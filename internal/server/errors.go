package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/docexport/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedMediaType indicates a request body that is not JSON
type ErrUnsupportedMediaType struct {
	ContentType string
}

func (e *ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("unsupported content type %q (want application/json)", e.ContentType)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		mediaErr      *ErrUnsupportedMediaType
		schemaErr     *schemas.ValidationError
		tooLarge      *http.MaxBytesError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &mediaErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
