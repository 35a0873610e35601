// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package session

// Mode selects which operation a submit performs.
type Mode int

// Modes.
const (
	ModeSignIn Mode = iota
	ModeSignUp
)

func (m Mode) String() string {
	switch m {
	case ModeSignIn:
		return "Sign In"
	case ModeSignUp:
		return "Sign Up"
	default:
		return "unknown"
	}
}

// Other returns the mode a toggle switches to.
func (m Mode) Other() Mode {
	if m == ModeSignIn {
		return ModeSignUp
	}
	return ModeSignIn
}

// Focus names the field that receives typed characters. At most one field
// is focused at a time.
type Focus int

// Focus targets.
const (
	FocusNone Focus = iota
	FocusUsername
	FocusPassword
)

func (f Focus) String() string {
	switch f {
	case FocusNone:
		return "none"
	case FocusUsername:
		return "username"
	case FocusPassword:
		return "password"
	default:
		return "unknown"
	}
}
