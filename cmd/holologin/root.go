// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/holologin/internal/config"
)

// NewRootCmd creates the root command for the holologin CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmdWithDeps(nil)
}

func newRootCmdWithDeps(deps *SessionDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holologin",
		Short: "holologin - terminal sign-in and sign-up form",
		Long: `holologin shows a sign-in / sign-up form in the terminal and checks
or records accounts in a credential store (a SQLite file by default).
Press TAB to switch modes; a successful sign-in ends the program.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSessionWithDeps(cmd.Context(), cmd, deps)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file path (default: XDG config dir, if present)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newInitCmdWithDeps(deps))

	return cmd
}

// loadConfig reads --config, falling back to the default config file when it
// exists, and layers flags on top.
func loadConfig(cmd *cobra.Command, deps *SessionDeps) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
	}

	if path == "" {
		candidate := deps.DefaultConfigFile()
		if _, statErr := os.Stat(candidate); statErr == nil {
			path = candidate
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return config.Config{}, oops.Code("CONFIG_READ_FAILED").With("path", candidate).Wrap(statErr)
		}
	}

	return config.Load(path, cmd.Flags())
}
