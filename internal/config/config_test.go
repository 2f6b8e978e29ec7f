package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr != "0.0.0.0:8080" {
		t.Fatalf("server addr = %q", cfg.Server.Addr)
	}
	if cfg.Auth.TokenTTLHours != 168 {
		t.Fatalf("token ttl hours = %d; want 168 (7 days)", cfg.Auth.TokenTTLHours)
	}
	if !cfg.Auth.Demo {
		t.Fatal("demo mode must default to on")
	}
	if cfg.Auth.JWTSecret != DefaultJWTSecret {
		t.Fatalf("jwt secret = %q", cfg.Auth.JWTSecret)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GOAT_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("GOAT_AUTH_JWTSECRET", "explicit-secret")
	t.Setenv("GOAT_AUTH_DEMO", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Fatalf("server addr = %q", cfg.Server.Addr)
	}
	if cfg.Auth.JWTSecret != "explicit-secret" {
		t.Fatalf("jwt secret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.Demo {
		t.Fatal("demo mode should be off")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateFailsClosed(t *testing.T) {
	var cfg Config
	cfg.Auth.TokenTTLHours = 168

	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty secret must be rejected")
	}

	cfg.Auth.JWTSecret = DefaultJWTSecret
	cfg.Auth.Demo = false
	if err := cfg.Validate(); err == nil {
		t.Fatal("default secret outside demo mode must be rejected")
	}

	cfg.Auth.Demo = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default secret in demo mode should pass: %v", err)
	}

	cfg.Auth.TokenTTLHours = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("non-positive ttl must be rejected")
	}
}
