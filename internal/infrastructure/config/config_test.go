package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("REDIS_PASSWORD", "s3cret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8088" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.Redis.Password != "s3cret" {
		t.Fatalf("Redis.Password = %q", cfg.Redis.Password)
	}
	if !cfg.UsingDevSecret() {
		t.Fatal("empty JWT_SECRET should fall back to the dev secret")
	}
}

func TestLoad_ExplicitSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "deploy-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UsingDevSecret() {
		t.Fatal("explicit JWT_SECRET must not count as the dev fallback")
	}
	if cfg.JWTSecret != "deploy-secret" {
		t.Fatalf("JWTSecret = %q", cfg.JWTSecret)
	}
}
