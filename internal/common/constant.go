package common

// AccessTokenHeaderName is the gRPC metadata key carrying the caller's
// session token.
const AccessTokenHeaderName = "access_token"

// Caller roles allowed to provision workers.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)
