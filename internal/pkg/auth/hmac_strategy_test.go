package auth

import (
	"testing"
	"time"
)

func TestHMACStrategyIssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	id, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected user id 42, got %d", id)
	}
}

func TestHMACStrategyRejectsTamperedToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})
	other := NewHMACStrategy("other-secret", Options{TTL: time.Hour})

	token, err := other.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	if _, err := strategy.ParseToken("not-base64!"); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error for garbage, got %v", err)
	}
}

func TestHMACStrategyRejectsExpiredToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: -time.Minute})
	// Constructor normalizes non-positive TTL, so craft expiry manually.
	strategy.ttl = -time.Minute

	token, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyName(t *testing.T) {
	if got := NewHMACStrategy("s", Options{}).Name(); got != "hmac" {
		t.Fatalf("unexpected strategy name %q", got)
	}
}
