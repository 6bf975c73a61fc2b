package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// Auth errors
var (
	ErrEmailNotFound   = errors.New("email not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmailTaken      = errors.New("email already exists")
)

// Inventory errors
var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrConflict         = errors.New("conflicting reference or duplicate value")
	ErrBadExpiryDate    = errors.New("expiry_date must be YYYY-MM-DD")
)

// ValidationError reports required fields absent from a request payload.
// Missing preserves the declared field order of the entity.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
