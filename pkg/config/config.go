// ABOUTME: Environment-backed configuration for the Mapbox MCP demos
// ABOUTME: Loads optional .env files and validates the required Mapbox tokens

// Package config loads demo configuration from the environment.
// All demos require MAPBOX_ACCESS_TOKEN for the MCP server subprocess;
// the browser demos additionally require MAPBOX_PUBLIC_TOKEN, a pk.-prefixed
// token that is safe to embed in a web page.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the demos.
const (
	EnvAccessToken = "MAPBOX_ACCESS_TOKEN"
	EnvPublicToken = "MAPBOX_PUBLIC_TOKEN"
	EnvServerPath  = "MAPBOX_MCP_SERVER"
)

// DefaultLaunchTimeout bounds MCP server startup and protocol initialization.
const DefaultLaunchTimeout = 30 * time.Second

var (
	// ErrMissingAccessToken indicates MAPBOX_ACCESS_TOKEN is not set.
	ErrMissingAccessToken = errors.New("MAPBOX_ACCESS_TOKEN environment variable is required (get a token at https://account.mapbox.com/)")

	// ErrMissingPublicToken indicates MAPBOX_PUBLIC_TOKEN is not set.
	// Only the browser demos need it; public tokens start with "pk." and
	// are safe to expose client-side.
	ErrMissingPublicToken = errors.New("MAPBOX_PUBLIC_TOKEN environment variable is required for browser demos (public tokens start with pk.)")
)

// Config holds everything the demos read from the environment.
type Config struct {
	// AccessToken is the secret Mapbox token handed to the MCP server
	// subprocess. Never embed it in a web page.
	AccessToken string

	// PublicToken is the browser-safe token substituted into the map
	// template. Empty unless the environment provides one.
	PublicToken string

	// ServerPath optionally points at a local build of the Mapbox MCP
	// server (dist/esm/index.js). When empty the published npm package
	// is used via npx.
	ServerPath string

	// LaunchTimeout bounds MCP server startup.
	LaunchTimeout time.Duration
}

// Load reads configuration from the environment, honoring a .env file in
// the working directory when present. It fails if the secret access token
// is missing; the public token is validated separately because only the
// browser demos need it.
func Load() (*Config, error) {
	// A missing .env file is fine; variables may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		AccessToken:   os.Getenv(EnvAccessToken),
		PublicToken:   os.Getenv(EnvPublicToken),
		ServerPath:    os.Getenv(EnvServerPath),
		LaunchTimeout: DefaultLaunchTimeout,
	}

	if cfg.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	return cfg, nil
}

// RequirePublicToken verifies that the browser-safe token is configured.
func (c *Config) RequirePublicToken() error {
	if c.PublicToken == "" {
		return ErrMissingPublicToken
	}
	return nil
}

// MustLoad is a convenience for demo main functions.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}
	return cfg
}
