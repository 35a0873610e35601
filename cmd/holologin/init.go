// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"

	"github.com/spf13/cobra"
)

// newInitCmdWithDeps creates the init subcommand.
func newInitCmdWithDeps(deps *SessionDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the credential store schema and exit",
		Long: `Connect to the configured credential store, create the users relation
if it does not exist yet, and exit without starting the form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInitWithDeps(cmd.Context(), cmd, deps)
		},
	}
}

func runInitWithDeps(ctx context.Context, cmd *cobra.Command, deps *SessionDeps) error {
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
	if err := creds.Close(); err != nil {
		return err
	}

	logger.Info("credential store initialized", "driver", cfg.Store.Driver)
	cmd.Printf("Credential store ready (%s)\n", cfg.Store.Driver)
	return nil
}
