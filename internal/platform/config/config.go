// Copyright (c) 2026 The Oratio Project. All rights reserved.

/*
Package config maps OS environment variables into a typed, read-only
settings struct using 'caarlos0/env'.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Both the API server and the corpus ingestor share this schema; the
ingestor only needs DATABASE_URL, and not even that under --dry-run. No
globals: the loaded struct is handed to components through constructors.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the Oratio services.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Optional: when empty, the stats cache is
	// disabled and summary queries always hit PostgreSQL.
	RedisURL string `env:"REDIS_URL"`

	// ExtraOrigins is a comma-separated list of additional origins allowed
	// by CORS in production.
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// Load parses the environment into a [Config]. Missing required variables
// fail here, before any connection is attempted.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ExtraAllowedOrigins returns the parsed EXTRA_ORIGINS list.
func (c *Config) ExtraAllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
