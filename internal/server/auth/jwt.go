// Package auth issues and verifies caller session tokens (HS256 JWT).
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophworker/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard claims plus the caller's role.
// The caller id travels in RegisteredClaims.Subject.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Caller is the verified identity extracted from a session token.
type Caller struct {
	ID   string
	Role string
}

// Authenticated reports whether the caller holds a role allowed to
// provision workers.
func (c Caller) Authenticated() bool {
	return c.ID != "" && (c.Role == common.RoleAdmin || c.Role == common.RoleCustomer)
}

func GenerateToken(subject, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Role: role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns
// the caller it names. Expired tokens yield common.ErrTokenExpired.
func ParseToken(tokenString string, secretKey []byte) (Caller, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Caller{}, common.ErrTokenExpired
		}
		return Caller{}, err
	}

	if !token.Valid || claims.Subject == "" {
		return Caller{}, common.ErrInvalidToken
	}

	return Caller{ID: claims.Subject, Role: claims.Role}, nil
}
