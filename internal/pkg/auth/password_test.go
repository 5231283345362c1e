package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("1111")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if hash == "1111" {
		t.Fatal("hash must not equal plaintext")
	}

	if err := hasher.Compare(hash, "1111"); err != nil {
		t.Fatalf("compare rejected valid password: %v", err)
	}
	if err := hasher.Compare(hash, "2222"); err == nil {
		t.Fatal("compare accepted wrong password")
	}
}

func TestNewBcryptHasherDefaultsCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, hasher.cost)
	}
}
