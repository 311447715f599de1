package server

import (
	"fmt"
	"net/http"
)

// ErrMalformedBody indicates the request body could not be decoded
type ErrMalformedBody struct {
	Cause error
}

func (e *ErrMalformedBody) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Cause)
}

func (e *ErrMalformedBody) Unwrap() error { return e.Cause }

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Cause error
}

func (e *ErrValidation) Error() string {
	return e.Cause.Error()
}

func (e *ErrValidation) Unwrap() error { return e.Cause }

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMalformedBody, *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
