// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package session

import (
	"strings"

	"github.com/holomush/holologin/internal/auth"
)

// HelpText is shown under the form.
const HelpText = "Press TAB to switch between Sign In and Sign Up"

// Field labels.
const (
	UsernameLabel = "Username:"
	PasswordLabel = "Password:"
)

// passwordMask replaces each password character on screen.
const passwordMask = "*"

// View is a snapshot of what the surface should draw for a State.
type View struct {
	Title    string
	Tabs     [2]Tab
	Username FieldView
	Password FieldView
	Action   ActionView
	// Message is empty while the outcome is pending.
	Message     string
	MessageKind auth.OutcomeKind
	Help        string
}

// Tab is one mode indicator.
type Tab struct {
	Label    string
	Selected bool
}

// FieldView is one text field as drawn. Password text is masked.
type FieldView struct {
	Label  string
	Text   string
	Region Rect
	Active bool
	Cap    int
}

// ActionView is the submit control.
type ActionView struct {
	Label  string
	Region Rect
	Hover  bool
}

// View derives everything the surface draws from s.
func (c *Controller) View(s State) View {
	v := View{
		Title: s.Mode.String(),
		Tabs: [2]Tab{
			{Label: ModeSignIn.String(), Selected: s.Mode == ModeSignIn},
			{Label: ModeSignUp.String(), Selected: s.Mode == ModeSignUp},
		},
		Username: FieldView{
			Label:  UsernameLabel,
			Text:   s.Username.Content(),
			Region: s.Username.Region(),
			Active: s.Username.Active(),
			Cap:    s.Username.Cap(),
		},
		Password: FieldView{
			Label:  PasswordLabel,
			Text:   strings.Repeat(passwordMask, s.Password.Len()),
			Region: s.Password.Region(),
			Active: s.Password.Active(),
			Cap:    s.Password.Cap(),
		},
		Action: ActionView{
			Label:  s.Mode.String(),
			Region: c.layout.Action,
			Hover:  c.layout.Action.Contains(s.Pointer),
		},
		Help: HelpText,
	}
	if !s.Outcome.IsPending() {
		v.Message = s.Outcome.Message
		v.MessageKind = s.Outcome.Kind
	}
	return v
}
