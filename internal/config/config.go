// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads holologin settings from defaults, an optional YAML
// file and command-line flags, in that order of precedence.
package config

import (
	"log/slog"

	"github.com/samber/oops"
)

// Config is the full set of holologin settings.
type Config struct {
	Store   StoreConfig   `koanf:"store" json:"store,omitempty"`
	Auth    AuthConfig    `koanf:"auth" json:"auth,omitempty"`
	Log     LogConfig     `koanf:"log" json:"log,omitempty"`
	Metrics MetricsConfig `koanf:"metrics" json:"metrics,omitempty"`
}

// StoreConfig selects and locates the credential store.
type StoreConfig struct {
	Driver         string `koanf:"driver" json:"driver,omitempty" jsonschema:"enum=sqlite,enum=postgres,enum=redis,description=Credential store backend"`
	Path           string `koanf:"path" json:"path,omitempty" jsonschema:"description=SQLite file path"`
	DSN            string `koanf:"dsn" json:"dsn,omitempty" jsonschema:"description=PostgreSQL connection string"`
	RedisAddr      string `koanf:"redis_addr" json:"redis_addr,omitempty" jsonschema:"description=Redis host:port"`
	RedisKey       string `koanf:"redis_key" json:"redis_key,omitempty" jsonschema:"description=Redis hash holding the accounts"`
	ConnectRetries uint64 `koanf:"connect_retries" json:"connect_retries,omitempty" jsonschema:"maximum=20,description=Extra connection attempts at startup"`
}

// AuthConfig controls input limits and password storage.
type AuthConfig struct {
	MaxInputLength int    `koanf:"max_input_length" json:"max_input_length,omitempty" jsonschema:"minimum=2,maximum=256,description=Input buffer size; fields hold one less character"`
	PasswordScheme string `koanf:"password_scheme" json:"password_scheme,omitempty" jsonschema:"enum=plain,enum=argon2id,description=How passwords are stored"`
}

// LogConfig controls the session log.
type LogConfig struct {
	Format string `koanf:"format" json:"format,omitempty" jsonschema:"enum=json,enum=text"`
	File   string `koanf:"file" json:"file,omitempty" jsonschema:"description=Log file; defaults to the XDG state directory"`
	Level  string `koanf:"level" json:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
}

// MetricsConfig controls the metrics dump written on exit.
type MetricsConfig struct {
	Textfile string `koanf:"textfile" json:"textfile,omitempty" jsonschema:"description=Prometheus text file written on exit; empty disables the dump"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Driver:   "sqlite",
			Path:     "users.db",
			RedisKey: "holologin:users",
		},
		Auth: AuthConfig{
			MaxInputLength: 50,
			PasswordScheme: "plain",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
		},
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.Path == "" {
			return invalid("store.path", "store.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.DSN == "" {
			return invalid("store.dsn", "store.dsn is required for the postgres driver")
		}
	case "redis":
		if c.Store.RedisAddr == "" {
			return invalid("store.redis_addr", "store.redis_addr is required for the redis driver")
		}
	default:
		return invalid("store.driver", "store.driver must be sqlite, postgres or redis, got %q", c.Store.Driver)
	}

	if c.Auth.MaxInputLength < 2 || c.Auth.MaxInputLength > 256 {
		return invalid("auth.max_input_length", "auth.max_input_length must be between 2 and 256, got %d", c.Auth.MaxInputLength)
	}
	if c.Auth.PasswordScheme != "plain" && c.Auth.PasswordScheme != "argon2id" {
		return invalid("auth.password_scheme", "auth.password_scheme must be 'plain' or 'argon2id', got %q", c.Auth.PasswordScheme)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return invalid("log.format", "log.format must be 'json' or 'text', got %q", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level", "log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

func invalid(key, format string, args ...any) error {
	return oops.Code("CONFIG_INVALID").With("key", key).Errorf(format, args...)
}

// SlogLevel maps Level to a slog.Level. Unknown values mean info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
