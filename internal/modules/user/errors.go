package user

import "errors"

var (
	ErrValidation   = errors.New("invalid user data")
	ErrNotFound     = errors.New("user not found")
	ErrUnauthorized = errors.New("webhook signature rejected")
)
