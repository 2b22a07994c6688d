package repository

import (
	"testing"

	"github.com/iliyamo/vehicle-workshop/internal/config"
)

func newTestRepo(t *testing.T) *AccountRepo {
	t.Helper()
	repo, err := NewAccountRepo(config.Config{
		BcryptCost: 4,
		Passwords: map[string]string{
			"admin":     "admin123",
			"reception": "reception123",
		},
	})
	if err != nil {
		t.Fatalf("NewAccountRepo: %v", err)
	}
	return repo
}

func TestVerify(t *testing.T) {
	repo := newTestRepo(t)

	role, err := repo.Verify("reception", "reception123")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if role != "reception" {
		t.Errorf("role = %q, want reception", role)
	}
}

func TestVerifyRejects(t *testing.T) {
	repo := newTestRepo(t)

	cases := []struct{ user, pass string }{
		{"admin", "wrong"},
		{"nobody", "admin123"},
		{"admin", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := repo.Verify(tc.user, tc.pass); err != ErrInvalidCredentials {
			t.Errorf("Verify(%q, %q) = %v, want ErrInvalidCredentials", tc.user, tc.pass, err)
		}
	}
}
