package models

import "time"

// Account is a credentialed identity. It is created at most once per email
// and may exist without the worker/user records.
type Account struct {
	ID           string
	Email        string
	PasswordSalt []byte
	PasswordHash []byte
	AccountFlags
	CreatedAt time.Time
}

// AccountFlags are the state flags an account is created with.
type AccountFlags struct {
	EmailVerified bool
	Disabled      bool
}
