package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotAvailable     = errors.New("room not available")
	ErrNotFound         = errors.New("not found")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrAmountMismatch   = errors.New("amount mismatch")
)
