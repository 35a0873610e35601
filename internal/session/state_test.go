// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/holomush/holologin/internal/auth"
	"github.com/holomush/holologin/internal/session"
)

func TestNewState(t *testing.T) {
	layout := session.DefaultLayout()
	s := session.NewState(layout, auth.DefaultMaxInputLength)

	assert.Equal(t, session.ModeSignIn, s.Mode)
	assert.True(t, s.Username.Empty())
	assert.True(t, s.Password.Empty())
	assert.Equal(t, session.FocusNone, s.Focus)
	assert.False(t, s.Username.Active())
	assert.False(t, s.Password.Active())
	assert.Equal(t, auth.Pending(), s.Outcome)
	assert.False(t, s.Terminated)
	assert.False(t, s.Done())
	assert.Equal(t, layout.Username, s.Username.Region())
	assert.Equal(t, layout.Password, s.Password.Region())
}

func TestState_ToggleClearsEverything(t *testing.T) {
	outcomes := []auth.Outcome{
		auth.Pending(),
		auth.Success(auth.MsgSignupSuccessful),
		auth.Failure(auth.MsgUsernameTaken),
	}
	contents := [][2]string{{"", ""}, {"alice", ""}, {"", "secret"}, {"alice", "secret"}}

	for _, mode := range []session.Mode{session.ModeSignIn, session.ModeSignUp} {
		for _, outcome := range outcomes {
			for _, c := range contents {
				s := session.NewState(session.DefaultLayout(), 10)
				s.Mode = mode
				s.Outcome = outcome
				s.SetFocus(session.FocusUsername)
				appendString(&s.Username, c[0])
				s.SetFocus(session.FocusPassword)
				appendString(&s.Password, c[1])

				s.Toggle()

				assert.Equal(t, mode.Other(), s.Mode)
				assert.True(t, s.Username.Empty())
				assert.True(t, s.Password.Empty())
				assert.Equal(t, auth.Pending(), s.Outcome)
				assert.Equal(t, session.FocusPassword, s.Focus, "toggle leaves focus alone")
			}
		}
	}
}

func TestState_ToggleTwiceReturnsToMode(t *testing.T) {
	s := session.NewState(session.DefaultLayout(), 10)
	s.Toggle()
	assert.Equal(t, session.ModeSignUp, s.Mode)
	s.Toggle()
	assert.Equal(t, session.ModeSignIn, s.Mode)
}

func TestState_SetFocusIsExclusive(t *testing.T) {
	tests := []struct {
		focus        session.Focus
		wantUsername bool
		wantPassword bool
	}{
		{session.FocusNone, false, false},
		{session.FocusUsername, true, false},
		{session.FocusPassword, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.focus.String(), func(t *testing.T) {
			s := session.NewState(session.DefaultLayout(), 10)
			s.SetFocus(session.FocusUsername)
			s.SetFocus(session.FocusPassword)

			s.SetFocus(tt.focus)

			assert.Equal(t, tt.focus, s.Focus)
			assert.Equal(t, tt.wantUsername, s.Username.Active())
			assert.Equal(t, tt.wantPassword, s.Password.Active())
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "Sign In", session.ModeSignIn.String())
	assert.Equal(t, "Sign Up", session.ModeSignUp.String())
	assert.Equal(t, "unknown", session.Mode(7).String())
}

func TestRect_Contains(t *testing.T) {
	r := session.Rect{X: 10, Y: 20, W: 5, H: 2}

	assert.True(t, r.Contains(session.Point{X: 10, Y: 20}))
	assert.True(t, r.Contains(session.Point{X: 14, Y: 21}))
	assert.False(t, r.Contains(session.Point{X: 15, Y: 20}))
	assert.False(t, r.Contains(session.Point{X: 10, Y: 22}))
	assert.False(t, r.Contains(session.Point{X: 9, Y: 20}))
	assert.False(t, session.Rect{}.Contains(session.Point{}))
}
