package offer

import "errors"

var (
	ErrValidation = errors.New("invalid offer data")
	ErrNotFound   = errors.New("offer not found")
	ErrNoHotel    = errors.New("no hotel registered for this account")
	ErrForbidden  = errors.New("offer belongs to another owner")
)
