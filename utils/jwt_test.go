package utils

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("test-secret", 42, "Administrateur", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken() failed: %v", err)
	}

	adminID, err := ParseAccessToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseAccessToken() failed: %v", err)
	}
	if adminID != 42 {
		t.Errorf("admin id = %d, want 42", adminID)
	}

	if _, err := ParseAccessToken("wrong-secret", token); err == nil {
		t.Error("token must not validate under a different secret")
	}

	expired, err := NewAccessToken("test-secret", 42, "Administrateur", -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken() failed: %v", err)
	}
	if _, err := ParseAccessToken("test-secret", expired); err == nil {
		t.Error("expired token must be rejected")
	}
}
