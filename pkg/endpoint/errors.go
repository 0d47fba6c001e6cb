package endpoint

import "errors"

var (
	// ErrOperationNotFound is returned when no operation matches the id.
	ErrOperationNotFound = errors.New("endpoint: operation not found")
	// ErrPathParameters is returned for templated paths; a contact form posts
	// to a fixed URL.
	ErrPathParameters = errors.New("endpoint: path parameters are not supported")
	// ErrNotJSON is returned when the operation body does not accept JSON.
	ErrNotJSON = errors.New("endpoint: request body does not accept application/json")
)
