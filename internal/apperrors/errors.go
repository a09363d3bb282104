package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a request that is not valid for the resource's current state.
var ErrConflict = errors.New("conflicting state")

// ErrInternal indicates an unexpected failure that should not be exposed to callers in detail.
var ErrInternal = errors.New("internal error")

// ErrInvalidAmount indicates a transaction amount that is zero, negative or not a whole number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientBalance indicates a debit larger than the investor's current net balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInvalidInput indicates a caller bug, e.g. transactions of several investors passed to one ledger computation.
var ErrInvalidInput = errors.New("invalid input")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
