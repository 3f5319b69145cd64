// Package cryptox derives and verifies password hashes for credentialed
// accounts using argon2id.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/gophworker/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

// DeriveKey stretches password with salt (argon2id, 1 pass, 64 MiB, 4 lanes).
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// HashPassword returns a fresh random salt and the derived key for password.
func HashPassword(password []byte) (salt, hash []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	return salt, DeriveKey(password, salt)
}

// VerifyPassword reports whether candidate hashes to hash under salt.
// The comparison runs in constant time.
func VerifyPassword(candidate, salt, hash []byte) bool {
	return subtle.ConstantTimeCompare(DeriveKey(candidate, salt), hash) == 1
}
