package utils

import "testing"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := NewSessionToken("secret", "reception")
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	role, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if role != "reception" {
		t.Errorf("role = %q, want reception", role)
	}
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := NewSessionToken("secret", "admin")
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("different", token); err != ErrInvalidSession {
		t.Errorf("got %v, want ErrInvalidSession", err)
	}
}

func TestParseSessionTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "not.a.jwt", "aaaa"} {
		if _, err := ParseSessionToken("secret", raw); err != ErrInvalidSession {
			t.Errorf("raw %q: got %v, want ErrInvalidSession", raw, err)
		}
	}
}
