package auth

import (
	"testing"
	"time"

	"github.com/6631501193-blip/tracking-server/internal/config"
)

func TestNewPasswordHasherUsesConfiguredCost(t *testing.T) {
	hasher := newPasswordHasher(hasherParams{Config: &config.Config{BcryptCost: 6}})
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != 6 {
		t.Fatalf("expected cost 6, got %d", bcryptHasher.cost)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{AuthSecret: "secret", TokenTTL: time.Hour}})
	if _, ok := strategy.(*HMACStrategy); !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if strategy.Name() != "hmac" {
		t.Fatalf("unexpected strategy name %q", strategy.Name())
	}
}
