package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("CART_IDLE_TTL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	env := LoadEnv()
	if env.JWTSecret != DevJWTSecret {
		t.Fatalf("JWTSecret = %q", env.JWTSecret)
	}
	if env.CartIdleTTL != 30*time.Minute {
		t.Fatalf("CartIdleTTL = %v", env.CartIdleTTL)
	}
	if len(env.CORSAllowedOrigins) != 2 || env.CORSAllowedOrigins[1] != "http://b.test" {
		t.Fatalf("CORSAllowedOrigins = %q", env.CORSAllowedOrigins)
	}
	if err := env.Validate(); err != nil {
		t.Fatalf("dev defaults should validate: %v", err)
	}
}

func TestValidateRejectsDevSecretInRelease(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GIN_MODE", "release")
	if err := LoadEnv().Validate(); err == nil {
		t.Fatalf("expected error for default secret in release mode")
	}

	t.Setenv("JWT_SECRET", "a-real-secret")
	if err := LoadEnv().Validate(); err != nil {
		t.Fatalf("explicit secret in release mode: %v", err)
	}
}
