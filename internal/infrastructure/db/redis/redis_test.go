package redis

import (
	"testing"
	"time"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(Config{
		Addr:     "cache:6379",
		Password: "s3cret",
		DB:       2,
	})

	if opts.Addr != "cache:6379" {
		t.Fatalf("Addr = %q", opts.Addr)
	}
	if opts.Password != "s3cret" {
		t.Fatalf("Password = %q", opts.Password)
	}
	if opts.DB != 2 {
		t.Fatalf("DB = %d", opts.DB)
	}
	if opts.ClientName != "cargo-api" {
		t.Fatalf("ClientName = %q", opts.ClientName)
	}
	if opts.DialTimeout != defaultDialTimeout {
		t.Fatalf("DialTimeout = %v, want default %v", opts.DialTimeout, defaultDialTimeout)
	}
}

func TestClientOptions_ExplicitTimeout(t *testing.T) {
	opts := clientOptions(Config{Addr: "cache:6379", Timeout: 2 * time.Second})
	if opts.DialTimeout != 2*time.Second {
		t.Fatalf("DialTimeout = %v", opts.DialTimeout)
	}
}
