package models

import (
	"errors"
	"fmt"
)

// ValidationKind classifies why a block mutation was rejected.
type ValidationKind string

const (
	ValidationOutOfRange ValidationKind = "out-of-range"
	ValidationOverlap    ValidationKind = "overlap"
)

// ValidationError is returned by store mutations that reject a block.
// It is always a plain return value, never a panic.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewOutOfRangeError(format string, args ...any) *ValidationError {
	return &ValidationError{Kind: ValidationOutOfRange, Message: fmt.Sprintf(format, args...)}
}

func NewOverlapError(format string, args ...any) *ValidationError {
	return &ValidationError{Kind: ValidationOverlap, Message: fmt.Sprintf(format, args...)}
}

// AsValidationError unwraps err into a ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
