// Package utils provides helpers for creating and validating session
// tokens. A session is an HS256 JWT stored in a cookie; the only claim that
// matters is the role of the account that logged in. Tokens carry no expiry
// on purpose - a board PC logs in once and stays logged in until someone
// hits logout, matching how the workshop actually uses the screens.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie under which the signed role token lives.
const SessionCookieName = "workshop_session"

// ErrInvalidSession is returned when a session token fails signature
// validation or carries no usable role claim.
var ErrInvalidSession = errors.New("invalid session")

// NewSessionToken builds and signs a session JWT for a role. The claims are
// the subject (the account name, which equals the role), the role itself
// and the issue time.
func NewSessionToken(secret, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  role,
		"role": role,
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken validates a session token and returns its role claim.
// Tokens signed with anything other than HMAC are rejected.
func ParseSessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", ErrInvalidSession
	}
	return role, nil
}
