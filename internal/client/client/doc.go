// Package client talks to the worker provisioning server.
//
// GRPCClient implements Client over gRPC: it attaches the caller's session
// token to every call and maps gRPC status codes onto the sentinel errors
// ErrUnauthorized, ErrInvalidRequest, ErrAlreadyExists and ErrUnavailable,
// which callers match with errors.Is. The server's message is kept in the
// wrapped error text.
package client
