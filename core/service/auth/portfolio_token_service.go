// Package auth issues the API's signed access tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrAccessDenied is returned when the supplied password does not match the
// shared token password.
var ErrAccessDenied = errors.New("You don't have access to generate a token")

// TokenIssuer exchanges the shared token password for a signed, time-limited
// HS256 token. The supplied password is embedded as the tokenPassword claim,
// which the authorization gate requires on every verified token.
type TokenIssuer struct {
	secret   string
	password string
	ttl      time.Duration
}

// NewTokenIssuer creates a token issuer with a fixed 1-day expiry.
func NewTokenIssuer(secret, password string) *TokenIssuer {
	return &TokenIssuer{
		secret:   secret,
		password: password,
		ttl:      24 * time.Hour,
	}
}

// Issue compares the supplied password against the shared secret and, on
// match, returns a signed token. Plain equality; an unconfigured password
// denies everything.
func (i *TokenIssuer) Issue(password string) (string, error) {
	if i.password == "" || password != i.password {
		return "", ErrAccessDenied
	}

	claims := jwt.MapClaims{
		"tokenPassword": password,
		"exp":           jwt.NewNumericDate(time.Now().Add(i.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.secret))
}
