// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/holologin/internal/auth"
	"github.com/holomush/holologin/internal/config"
	"github.com/holomush/holologin/internal/logging"
	"github.com/holomush/holologin/internal/session"
	"github.com/holomush/holologin/internal/store"
	"github.com/holomush/holologin/internal/tui"
	"github.com/holomush/holologin/pkg/errutil"
)

const serviceName = "holologin"

// runSessionWithDeps runs one interactive session with injectable dependencies.
// If deps is nil, default implementations are used.
func runSessionWithDeps(ctx context.Context, cmd *cobra.Command, deps *SessionDeps) error {
	deps = deps.withDefaults()

	cfg, err := loadConfig(cmd, deps)
	if err != nil {
		return err
	}

	logOut, err := deps.LogOpener(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logOut.Close() }()

	logger := newLogger(cfg, logOut)

	creds, err := openStore(ctx, cfg.Store, deps, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := creds.Close(); closeErr != nil {
			errutil.LogError(logger, "failed to close credential store", closeErr)
		}
	}()

	codec, err := auth.NewCodec(cfg.Auth.PasswordScheme)
	if err != nil {
		return err
	}
	engine, err := auth.NewEngineWithLogger(creds, codec, logger)
	if err != nil {
		return oops.Code("SESSION_SETUP_FAILED").Wrap(err)
	}
	engine.WithMaxInputLength(cfg.Auth.MaxInputLength)

	registry := prometheus.NewRegistry()
	auth.RegisterMetrics(registry)
	defer writeMetrics(cfg.Metrics.Textfile, registry, logger)

	ctrl, err := session.NewControllerWithLogger(engine, tui.Layout(cfg.Auth.MaxInputLength), logger)
	if err != nil {
		return oops.Code("SESSION_SETUP_FAILED").Wrap(err)
	}

	logger.Info("session started",
		"driver", cfg.Store.Driver,
		"password_scheme", cfg.Auth.PasswordScheme,
		"max_input_length", cfg.Auth.MaxInputLength,
	)

	final, err := deps.UIRunner(ctx, ctrl, ctrl.NewState(cfg.Auth.MaxInputLength))
	if err != nil {
		errutil.LogError(logger, "session aborted", err)
		return err
	}

	logger.Info("session ended",
		"terminated", final.Terminated,
		"closed", final.Closed,
		"outcome", final.Outcome.Kind.String(),
	)
	if final.Terminated {
		cmd.Println(final.Outcome.Message)
	}
	return nil
}

// newLogger builds the session logger. Every record carries a fresh session id.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return logging.Setup(logging.Options{
		Service: serviceName,
		Version: version,
		Format:  cfg.Log.Format,
		Level:   cfg.Log.SlogLevel(),
	}, w).With("session_id", ulid.Make().String())
}

// openStore connects to the store and makes sure the users relation exists.
// Both failures are fatal to the session.
func openStore(ctx context.Context, cfg config.StoreConfig, deps *SessionDeps, logger *slog.Logger) (store.Store, error) {
	creds, err := deps.StoreOpener(ctx, cfg)
	if err != nil {
		errutil.LogError(logger, "credential store unavailable", err, "driver", cfg.Driver)
		return nil, err
	}
	if err := creds.EnsureSchema(ctx); err != nil {
		_ = creds.Close()
		errutil.LogError(logger, "failed to prepare credential store", err, "driver", cfg.Driver)
		return nil, err
	}
	logger.Debug("credential store ready", "driver", cfg.Driver)
	return creds, nil
}

// writeMetrics dumps the registry to path in the Prometheus text format.
// An empty path disables the dump.
func writeMetrics(path string, registry *prometheus.Registry, logger *slog.Logger) {
	if path == "" {
		return
	}
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		errutil.LogError(logger, "failed to write metrics", oops.Code("METRICS_WRITE_FAILED").With("path", path).Wrap(err))
	}
}
