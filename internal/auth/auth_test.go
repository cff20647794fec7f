package auth

import (
	"errors"
	"testing"
)

func TestManager(t *testing.T) {
	m := NewManager("test-secret")

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := m.Issue("a@b.com")
		if err != nil {
			t.Fatalf("Unexpected error issuing token: %v", err)
		}
		email, err := m.Verify(token)
		if err != nil {
			t.Fatalf("Unexpected error verifying token: %v", err)
		}
		if email != "a@b.com" {
			t.Errorf("Expected 'a@b.com', got '%s'", email)
		}
	})

	t.Run("WrongSecretRejected", func(t *testing.T) {
		token, err := m.Issue("a@b.com")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		other := NewManager("other-secret")
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("GarbageRejected", func(t *testing.T) {
		if _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}
