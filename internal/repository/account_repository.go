// Package repository contains data access logic separated from HTTP
// handlers. The workshop tracker has exactly one table worth of identity
// data: five fixed role accounts. They are defined by configuration, hashed
// once at startup and never change while the process runs, so the "table"
// is an in-memory map of bcrypt hashes.
package repository

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/vehicle-workshop/internal/config"
)

// ErrInvalidCredentials is returned when the username is unknown or the
// password does not match. Handlers translate it into an HTTP 401 without
// distinguishing the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AccountRepo holds the static role account table. The account name doubles
// as the role name: logging in as "staff" yields the staff surface and
// nothing else.
type AccountRepo struct {
	hashes map[string][]byte
}

// NewAccountRepo hashes the configured passwords and builds the account
// table. Plain passwords are not retained.
func NewAccountRepo(cfg config.Config) (*AccountRepo, error) {
	hashes := make(map[string][]byte, len(cfg.Passwords))
	for role, pass := range cfg.Passwords {
		h, err := bcrypt.GenerateFromPassword([]byte(pass), cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", role, err)
		}
		hashes[role] = h
	}
	return &AccountRepo{hashes: hashes}, nil
}

// Verify checks a username/password pair against the table and returns the
// role name on success.
func (r *AccountRepo) Verify(username, password string) (string, error) {
	h, ok := r.hashes[username]
	if !ok {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(h, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return username, nil
}
