// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package config

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"store-driver":     "store.driver",
	"store-path":       "store.path",
	"store-dsn":        "store.dsn",
	"redis-addr":       "store.redis_addr",
	"redis-key":        "store.redis_key",
	"connect-retries":  "store.connect_retries",
	"max-input-length": "auth.max_input_length",
	"password-scheme":  "auth.password_scheme",
	"log-format":       "log.format",
	"log-file":         "log.file",
	"log-level":        "log.level",
	"metrics-textfile": "metrics.textfile",
}

// RegisterFlags adds one flag per config key to fs, defaulting to Default().
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("store-driver", d.Store.Driver, "credential store backend (sqlite, postgres or redis)")
	fs.String("store-path", d.Store.Path, "SQLite store file")
	fs.String("store-dsn", d.Store.DSN, "PostgreSQL connection string")
	fs.String("redis-addr", d.Store.RedisAddr, "Redis host:port")
	fs.String("redis-key", d.Store.RedisKey, "Redis hash holding the accounts")
	fs.Uint64("connect-retries", d.Store.ConnectRetries, "extra store connection attempts at startup")
	fs.Int("max-input-length", d.Auth.MaxInputLength, "input buffer size (fields hold one less character)")
	fs.String("password-scheme", d.Auth.PasswordScheme, "password storage scheme (plain or argon2id)")
	fs.String("log-format", d.Log.Format, "log format (json or text)")
	fs.String("log-file", d.Log.File, "log file (default: XDG state directory)")
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn or error)")
	fs.String("metrics-textfile", d.Metrics.Textfile, "write Prometheus metrics to this file on exit")
}

// Load builds a Config from Default(), the YAML file at path (skipped when
// path is empty) and the flags in fs (skipped when nil). Flags win over the
// file only when set explicitly.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		//nolint:gosec // G304: config path comes from the operator
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, oops.Code("CONFIG_READ_FAILED").With("path", path).Wrap(err)
		}
		if err := ValidateYAML(data); err != nil {
			return Config{}, oops.Code("CONFIG_INVALID").With("path", path).Wrap(err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_READ_FAILED").With("path", path).Wrap(err)
		}
	}

	if fs != nil {
		provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(fs, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return Config{}, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
		}
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, oops.Code("CONFIG_DECODE_FAILED").Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
