// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package session

// Input is what the surface observed during one cycle.
type Input struct {
	// Pointer is the current pointer position.
	Pointer Point
	// Pressed is true when the primary button went down this cycle.
	Pressed bool
	// Typed holds the characters typed this cycle, in order.
	Typed []rune
	// Delete is true when the deletion key was pressed.
	Delete bool
	// Toggle is true when the mode switch key was pressed.
	Toggle bool
	// Submit triggers the action without a pointer press.
	Submit bool
	// FocusRequest moves focus from the keyboard. FocusNone leaves it alone.
	FocusRequest Focus
	// CloseRequested is true when the user asked to quit.
	CloseRequested bool
}
