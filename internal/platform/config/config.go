// Copyright (c) 2026 Ludora. All rights reserved.
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
  - DI-Friendly: Passed to core components (DB, Redis, caches) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Ludora API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis), used for play-count tracking
	RedisURL string `env:"REDIS_URL,required"`

	// DefaultLocale is the base language the catalog's canonical content is
	// written in. Translations fall back to it.
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`

	// Cache TTL tiers. Every cached dataset maps onto one of these.
	CacheTTLShort      time.Duration `env:"CACHE_TTL_SHORT"       envDefault:"60s"`
	CacheTTLMedium     time.Duration `env:"CACHE_TTL_MEDIUM"      envDefault:"300s"`
	CacheTTLStatsShort time.Duration `env:"CACHE_TTL_STATS_SHORT" envDefault:"1800s"`
	CacheTTLLong       time.Duration `env:"CACHE_TTL_LONG"        envDefault:"3600s"`
	CacheTTLBaseData   time.Duration `env:"CACHE_TTL_BASE_DATA"   envDefault:"21600s"`
	CacheTTLVeryLong   time.Duration `env:"CACHE_TTL_VERY_LONG"   envDefault:"86400s"`

	// PlayFlushInterval is how often accumulated play counts are flushed
	// from Redis to PostgreSQL.
	PlayFlushInterval time.Duration `env:"PLAY_FLUSH_INTERVAL" envDefault:"60s"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
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
