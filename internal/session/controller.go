// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package session

import (
	"context"
	"log/slog"

	"github.com/samber/oops"

	"github.com/holomush/holologin/internal/auth"
)

// Authenticator performs the two form actions. *auth.Engine implements it.
type Authenticator interface {
	SignIn(ctx context.Context, username, password string) auth.Outcome
	SignUp(ctx context.Context, username, password string) auth.Outcome
}

// Controller advances a State one input cycle at a time.
type Controller struct {
	auth   Authenticator
	layout Layout
	logger *slog.Logger
}

// NewController creates a Controller with a no-op logger.
func NewController(a Authenticator, layout Layout) (*Controller, error) {
	return NewControllerWithLogger(a, layout, slog.New(slog.DiscardHandler))
}

// NewControllerWithLogger creates a Controller that logs mode switches and
// submits to logger.
func NewControllerWithLogger(a Authenticator, layout Layout, logger *slog.Logger) (*Controller, error) {
	if a == nil {
		return nil, oops.Code("SESSION_INVALID_CONTROLLER").Errorf("authenticator is required")
	}
	if logger == nil {
		return nil, oops.Code("SESSION_INVALID_CONTROLLER").Errorf("logger is required")
	}
	return &Controller{auth: a, layout: layout, logger: logger}, nil
}

// Layout returns the geometry the controller hit-tests against.
func (c *Controller) Layout() Layout { return c.layout }

// NewState returns a fresh session state laid out for this controller.
func (c *Controller) NewState(maxInputLength int) State {
	return NewState(c.layout, maxInputLength)
}

// Step applies one cycle of input to s and returns the result.
//
// The order is fixed: mode toggle, then focus and edits, then submit.
// A state that is already done is returned unchanged.
func (c *Controller) Step(ctx context.Context, s State, in Input) State {
	if s.Done() {
		return s
	}
	if in.CloseRequested {
		s.Closed = true
		return s
	}

	if in.Toggle {
		s.Toggle()
		c.logger.Debug("mode switched", "mode", s.Mode.String())
	}

	s.Pointer = in.Pointer
	switch {
	case in.Pressed:
		s.SetFocus(c.focusAt(s, in.Pointer))
	case in.FocusRequest != FocusNone:
		s.SetFocus(in.FocusRequest)
	}

	if b := s.focused(); b != nil {
		for _, r := range in.Typed {
			b.Append(r)
		}
		if in.Delete {
			b.DeleteLast()
		}
	}

	if in.Submit || (in.Pressed && c.layout.Action.Contains(in.Pointer)) {
		s = c.submit(ctx, s)
	}
	return s
}

// focusAt returns the field under p. A press anywhere else clears focus.
func (c *Controller) focusAt(s State, p Point) Focus {
	switch {
	case s.Username.Region().Contains(p):
		return FocusUsername
	case s.Password.Region().Contains(p):
		return FocusPassword
	default:
		return FocusNone
	}
}

func (c *Controller) submit(ctx context.Context, s State) State {
	username := s.Username.Content()
	password := s.Password.Content()

	if s.Username.Empty() || s.Password.Empty() {
		s.Outcome = auth.Failure(auth.MsgFillAllFields)
		c.logger.Debug("submit rejected", "mode", s.Mode.String(), "reason", "empty field")
		return s
	}

	switch s.Mode {
	case ModeSignUp:
		s.Outcome = c.auth.SignUp(ctx, username, password)
		if s.Outcome.IsSuccess() {
			s.clearFields()
		}
	default:
		s.Outcome = c.auth.SignIn(ctx, username, password)
		if s.Outcome.IsSuccess() {
			s.Terminated = true
		}
	}

	c.logger.Info("form submitted",
		"mode", s.Mode.String(),
		"username", username,
		"outcome", s.Outcome.Kind.String(),
		"terminated", s.Terminated,
	)
	return s
}
