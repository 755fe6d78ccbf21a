package service

import (
	"errors"
	"fmt"
)

// ValidationError reports a required request field that was not supplied.
// Handlers answer it with 400 and Message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InternalError wraps any other failure while evaluating a rule.
// Its text is the underlying error's text.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// NewInternalError wraps err as an InternalError for operation op.
func NewInternalError(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}

var (
	ErrCategoryRequired        = &ValidationError{Field: "category", Message: "Category is required"}
	ErrProductsRequired        = &ValidationError{Field: "products", Message: "Products data is required"}
	ErrDaysUntilExpiryRequired = &ValidationError{Field: "days_until_expiry", Message: "Days until expiry is required"}
)

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var errDateOutOfRange = errors.New("date value out of range")

// errInvalidDate is wrapped with the offending value when no layout matches.
var errInvalidDate = errors.New("invalid isoformat string")

func invalidDate(value string) error {
	return fmt.Errorf("%w: %q", errInvalidDate, value)
}
