package hotel

import "errors"

var (
	ErrValidation        = errors.New("invalid hotel data")
	ErrAlreadyRegistered = errors.New("account already has a hotel")
	ErrNotFound          = errors.New("hotel not found")
)
