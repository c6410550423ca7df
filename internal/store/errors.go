package store

import (
	"errors"
	"fmt"
)

// These constants mirror domain error codes to avoid circular imports.
// The handler layer maps these to HTTP status codes.
const (
	codeInvalid  = "invalid"
	codeNotFound = "not_found"
)

// StoreError represents a store-specific error with a code and message.
type StoreError struct {
	Code    string
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *StoreError) ErrorCode() string {
	return e.Code
}

// ErrSlotNotFound creates an error for an empty slot.
func ErrSlotNotFound(slot string) error {
	return &StoreError{
		Code:    codeNotFound,
		Message: fmt.Sprintf("slot not found: %s", slot),
	}
}

// ErrUnknownProvider creates an error for unknown store providers.
func ErrUnknownProvider(provider string) error {
	return &StoreError{
		Code:    codeInvalid,
		Message: fmt.Sprintf("unknown store provider: %s", provider),
	}
}

// IsNotFound reports whether err indicates an empty slot.
// Services use this to fall back to defaults instead of failing.
func IsNotFound(err error) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == codeNotFound
	}
	return false
}
