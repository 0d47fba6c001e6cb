package contact

import (
	"errors"
	"fmt"
)

var (
	// ErrFormNotFound signals that the surface has no #contacto form; the
	// controller stays inert.
	ErrFormNotFound = errors.New("contact: form not found")
	// ErrSubmitInProgress is carried by Busy outcomes.
	ErrSubmitInProgress = errors.New("contact: submit already in progress")
	// ErrNotInitialized is returned when HandleSubmit runs before Init.
	ErrNotInitialized = errors.New("contact: controller not initialized")
)

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact: invalid %s: %s", e.Field, e.Message)
}

// StatusError reports a non-2xx response from the form action.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("contact: %s %s: unexpected status %s", e.Method, e.URL, e.Status)
}
