package room

import "errors"

var (
	ErrValidation = errors.New("invalid room data")
	ErrNotFound   = errors.New("room not found")
	ErrNoHotel    = errors.New("no hotel registered for this account")
	ErrForbidden  = errors.New("room belongs to another owner")
)
