package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound is returned when a ledger record is not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateTxHash is returned when a submission reuses a transaction
	// hash already held by another record in the same table
	ErrDuplicateTxHash = errors.New("transaction hash already recorded")

	// ErrTermsHashMismatch is returned when a campaign submission carries a
	// terms hash that does not match the canonical hash of its terms
	ErrTermsHashMismatch = errors.New("terms hash does not match canonical terms")
)

// ValidationError indicates malformed submission input. It is the only error
// kind surfaced synchronously to the original caller; nothing is persisted
// when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
