// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"io"

	"github.com/holomush/holologin/internal/config"
	"github.com/holomush/holologin/internal/logging"
	"github.com/holomush/holologin/internal/session"
	"github.com/holomush/holologin/internal/store"
	"github.com/holomush/holologin/internal/tui"
	"github.com/holomush/holologin/internal/xdg"
)

// SessionDeps contains injectable dependencies for the session and init commands.
// All fields with nil values will use their default implementations.
type SessionDeps struct {
	// StoreOpener connects to the credential store.
	// Default: store.Open
	StoreOpener func(ctx context.Context, cfg config.StoreConfig) (store.Store, error)

	// LogOpener opens the session log destination.
	// Default: logging.OpenFile
	LogOpener func(path string) (io.WriteCloser, error)

	// UIRunner drives the interactive form until it is done.
	// Default: tui.Run
	UIRunner func(ctx context.Context, ctrl *session.Controller, state session.State) (session.State, error)

	// DefaultConfigFile returns the config file read when --config is not given.
	// Default: xdg.DefaultConfigFile
	DefaultConfigFile func() string
}

// withDefaults returns a copy of deps with every nil field filled in.
func (deps *SessionDeps) withDefaults() *SessionDeps {
	d := SessionDeps{}
	if deps != nil {
		d = *deps
	}
	if d.StoreOpener == nil {
		d.StoreOpener = store.Open
	}
	if d.LogOpener == nil {
		d.LogOpener = func(path string) (io.WriteCloser, error) {
			return logging.OpenFile(path)
		}
	}
	if d.UIRunner == nil {
		d.UIRunner = func(ctx context.Context, ctrl *session.Controller, state session.State) (session.State, error) {
			return tui.Run(ctx, ctrl, state)
		}
	}
	if d.DefaultConfigFile == nil {
		d.DefaultConfigFile = xdg.DefaultConfigFile
	}
	return &d
}
