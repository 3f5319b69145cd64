// Package common defines shared constants and sentinel errors used across
// the server, transport and client layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorEmailTaken    = errors.New("email already registered")
	ErrorWorkerIDTaken = errors.New("worker id already taken")

	// Provisioning failure kinds. Every error returned by the provisioning
	// service wraps exactly one of these.
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorInvalidArgument = errors.New("invalid argument")
	ErrorAlreadyExists   = errors.New("already exists")
	ErrorInternal        = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
