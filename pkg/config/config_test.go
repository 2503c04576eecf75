package config

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv(EnvAccessToken, "sk.secret-token")
	t.Setenv(EnvPublicToken, "pk.public-token")
	t.Setenv(EnvServerPath, "/opt/mcp-server/dist/esm/index.js")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AccessToken != "sk.secret-token" {
		t.Errorf("unexpected access token: %q", cfg.AccessToken)
	}
	if cfg.PublicToken != "pk.public-token" {
		t.Errorf("unexpected public token: %q", cfg.PublicToken)
	}
	if cfg.ServerPath != "/opt/mcp-server/dist/esm/index.js" {
		t.Errorf("unexpected server path: %q", cfg.ServerPath)
	}
	if cfg.LaunchTimeout != DefaultLaunchTimeout {
		t.Errorf("unexpected launch timeout: %v", cfg.LaunchTimeout)
	}
}

func TestLoadMissingAccessToken(t *testing.T) {
	t.Setenv(EnvAccessToken, "")
	t.Setenv(EnvPublicToken, "pk.public-token")

	_, err := Load()
	if !errors.Is(err, ErrMissingAccessToken) {
		t.Fatalf("expected ErrMissingAccessToken, got %v", err)
	}
}

func TestRequirePublicToken(t *testing.T) {
	cfg := &Config{AccessToken: "sk.secret-token"}
	if err := cfg.RequirePublicToken(); !errors.Is(err, ErrMissingPublicToken) {
		t.Fatalf("expected ErrMissingPublicToken, got %v", err)
	}

	cfg.PublicToken = "pk.public-token"
	if err := cfg.RequirePublicToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
