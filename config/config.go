// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config.
//   - Validate required values so callers fail fast on bad/missing config.
//   - Provide sane defaults for optional blocks (environment name,
//     writer role allow-list).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// the process env before any var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable must carry.
//
// Keys are normalized by trimming the prefix, lowercasing, and mapping
// underscores to the "." nesting delimiter, so leaf keys stay single
// words:
//
//	SQLVERK_DATABASE_HOST     -> database.host -> Config.Database.Host
//	SQLVERK_DATABASE_SSLMODE  -> database.sslmode
//	SQLVERK_GATEWAY_WRITERROLES -> gateway.writerroles
const EnvPrefix = "SQLVERK_"

// Config is the root configuration object for the gateway.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary  Primary        `koanf:"primary"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Gateway  GatewayConfig  `koanf:"gateway"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and switch SQL trace logging on in local runs.
type Primary struct {
	Env string `koanf:"env"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool
// sizing. The record is opaque to the gateway itself; only the
// database package interprets it.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"sslmode" validate:"required"`
	MaxConns int    `koanf:"maxconns"`
	MinConns int    `koanf:"minconns"`
}

// GatewayConfig holds gateway policy settings.
//
// WriterRoles is the role allow-list for mutating operations. It is
// configuration rather than a code constant so a new role can be added
// without touching call sites.
type GatewayConfig struct {
	WriterRoles []string `koanf:"writerroles"`
}

// DefaultWriterRoles is the writer allow-list applied when the
// configuration does not name one.
var DefaultWriterRoles = []string{"editor", "theone"}

// Load reads configuration from environment variables, unmarshals it
// into Config, validates it, and applies defaults.
//
// Unlike process-owning applications this is a library, so Load never
// exits: every failure is returned to the caller.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		mapped := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", ".")

		// The role allow-list is the one list-valued key; comma-split it
		// here so values elsewhere (passwords included) stay untouched.
		if mapped == "gateway.writerroles" {
			return mapped, strings.Split(value, ",")
		}
		return mapped, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "local"
	}
	if len(cfg.Gateway.WriterRoles) == 0 {
		cfg.Gateway.WriterRoles = DefaultWriterRoles
	}

	return cfg, nil
}
