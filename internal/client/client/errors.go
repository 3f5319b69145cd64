package client

import "errors"

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")
	ErrAlreadyExists  = errors.New("already exists")
)
