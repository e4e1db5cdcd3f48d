package auth

import (
	"testing"
	"time"
)

const testSecret = "test-secret-key-for-testing-only"

func TestIssueAndParseSession(t *testing.T) {
	token, err := IssueSession("acct-123", "user@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	claims, err := ParseSession(token, testSecret)
	if err != nil {
		t.Fatalf("ParseSession failed: %v", err)
	}

	if claims.AccountID != "acct-123" {
		t.Errorf("AccountID = %q, want %q", claims.AccountID, "acct-123")
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "user@example.com")
	}
}

func TestParseSession_WrongSecret(t *testing.T) {
	token, err := IssueSession("acct-123", "user@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	if _, err := ParseSession(token, "a-different-secret"); err != ErrInvalidSession {
		t.Errorf("Expected ErrInvalidSession for wrong secret, got %v", err)
	}
}

func TestParseSession_Expired(t *testing.T) {
	token, err := IssueSession("acct-123", "user@example.com", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	if _, err := ParseSession(token, testSecret); err != ErrInvalidSession {
		t.Errorf("Expected ErrInvalidSession for expired token, got %v", err)
	}
}

func TestParseSession_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"two segments", "aaaa.bbbb"},
		{"tampered", "eyJhbGciOiJIUzI1NiJ9.eyJ1aWQiOiJ4In0.tampered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSession(tt.token, testSecret); err != ErrInvalidSession {
				t.Errorf("Expected ErrInvalidSession, got %v", err)
			}
		})
	}
}

func TestIssueSession_DefaultTTL(t *testing.T) {
	token, err := IssueSession("acct-123", "user@example.com", testSecret, 0)
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	claims, err := ParseSession(token, testSecret)
	if err != nil {
		t.Fatalf("ParseSession failed: %v", err)
	}

	// Default lifetime is seven days
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 6*24*time.Hour || remaining > 7*24*time.Hour {
		t.Errorf("Expected default 7-day expiry, %v remaining", remaining)
	}
}
