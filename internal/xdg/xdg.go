// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package xdg provides XDG Base Directory paths for holologin.
package xdg

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
)

const appName = "holologin"

// ConfigDir returns the XDG config directory for holologin.
// Checks XDG_CONFIG_HOME first, falls back to ~/.config.
func ConfigDir() string {
	return dir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for holologin.
// Checks XDG_STATE_HOME first, falls back to ~/.local/state.
func StateDir() string {
	return dir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// DefaultConfigFile is the config file picked up when --config is not given.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultLogFile is where session logs go when log.file is not set.
func DefaultLogFile() string {
	return filepath.Join(StateDir(), appName+".log")
}

func dir(env, fallback string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), fallback)
	}
	return filepath.Join(base, appName)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
// Directories are created with 0700 permissions.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return oops.Code("XDG_MKDIR_FAILED").With("path", path).Wrap(err)
	}
	return nil
}
