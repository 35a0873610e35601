// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package session holds the sign-in/sign-up form state and the controller
// that advances it one input cycle at a time.
//
// A State value is created once per session with NewState. Each cycle the
// rendering surface collects an Input, calls Controller.Step and draws the
// returned State through Controller.View. The package never draws anything
// and never reads the terminal; units of Point and Rect are whatever the
// surface uses.
package session
