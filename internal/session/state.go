// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package session

import "github.com/holomush/holologin/internal/auth"

// State is everything the form shows. It is a value: Controller.Step takes
// one and returns the next.
type State struct {
	Mode     Mode
	Username InputBuffer
	Password InputBuffer
	Focus    Focus
	Outcome  auth.Outcome
	Pointer  Point

	// Terminated is set by a successful sign-in.
	Terminated bool
	// Closed is set when the surface asked to close.
	Closed bool
}

// NewState returns the state a session starts in: sign-in mode, empty
// unfocused fields and no outcome.
func NewState(layout Layout, maxInputLength int) State {
	return State{
		Mode:     ModeSignIn,
		Username: NewInputBuffer(layout.Username, maxInputLength),
		Password: NewInputBuffer(layout.Password, maxInputLength),
		Focus:    FocusNone,
		Outcome:  auth.Pending(),
	}
}

// Done reports whether the session loop should stop.
func (s State) Done() bool {
	return s.Terminated || s.Closed
}

// Toggle switches mode, clears both fields and resets the outcome.
// Focus is left where it was.
func (s *State) Toggle() {
	s.Mode = s.Mode.Other()
	s.Username.Clear()
	s.Password.Clear()
	s.Outcome = auth.Pending()
}

// SetFocus makes f the only active field.
func (s *State) SetFocus(f Focus) {
	s.Focus = f
	s.Username.SetActive(f == FocusUsername)
	s.Password.SetActive(f == FocusPassword)
}

// focused returns the buffer that receives edits, or nil.
func (s *State) focused() *InputBuffer {
	switch s.Focus {
	case FocusUsername:
		return &s.Username
	case FocusPassword:
		return &s.Password
	default:
		return nil
	}
}

// clearFields empties both fields.
func (s *State) clearFields() {
	s.Username.Clear()
	s.Password.Clear()
}
