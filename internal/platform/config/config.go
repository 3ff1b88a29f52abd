// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (API client, front end) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the client is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Device Profiles

// Networking profiles for reaching a service bound to the host machine.
// Emulated devices cannot see the host's loopback interface directly, so the
// base URL differs per profile.
const (
	// ProfileHost targets a service on the local machine directly.
	ProfileHost = "host"

	// ProfileAndroidEmulator targets the host through the Android emulator's
	// loopback alias (10.0.2.2).
	ProfileAndroidEmulator = "android-emulator"
)

const (
	hostBaseURL     = "http://localhost:3001"
	emulatorBaseURL = "http://10.0.2.2:3001"
)

// # Configuration Schema

// Config holds all runtime configuration for the Hiraku client.
type Config struct {

	// Remote auth service selection
	//
	// APIBaseURL, when set, overrides the profile-derived base URL entirely.
	APIBaseURL    string `env:"API_BASE_URL"`
	DeviceProfile string `env:"DEVICE_PROFILE" envDefault:"host"`

	// HTTPTimeout is the transport default for every API call. There is no
	// per-operation override and no retry.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// BaseURL resolves the auth service base URL from the explicit override or,
// failing that, the device profile. The result never has a trailing slash.
func (c *Config) BaseURL() string {
	if c.APIBaseURL != "" {
		return strings.TrimRight(c.APIBaseURL, "/")
	}
	if c.DeviceProfile == ProfileAndroidEmulator {
		return emulatorBaseURL
	}
	return hostBaseURL
}

// IsDevelopment reports whether the client is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
