package services

import (
	"errors"
	"net/http"
)

// ServiceError is a business-level failure with an HTTP status mapping.
type ServiceError struct {
	Status  int
	Message string
}

func (e ServiceError) Error() string {
	return e.Message
}

// ErrValidation rejects malformed or out-of-range input. Nothing is persisted.
func ErrValidation(msg string) error {
	return ServiceError{Status: http.StatusBadRequest, Message: msg}
}

// ErrNotFound signals an operation against a nonexistent entity.
func ErrNotFound(msg string) error {
	return ServiceError{Status: http.StatusNotFound, Message: msg}
}

// ErrConflict signals a uniqueness violation, rejected before any write.
func ErrConflict(msg string) error {
	return ServiceError{Status: http.StatusConflict, Message: msg}
}

func ErrUnauthorized(msg string) error {
	return ServiceError{Status: http.StatusUnauthorized, Message: msg}
}

func ErrForbidden(msg string) error {
	return ServiceError{Status: http.StatusForbidden, Message: msg}
}

// HTTPStatus maps an error to the status code handlers should respond with.
func HTTPStatus(err error) int {
	var svcErr ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Status
	}
	return http.StatusInternalServerError
}
