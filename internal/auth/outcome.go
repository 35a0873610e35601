// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

// User-facing outcome messages.
const (
	MsgFillAllFields      = "Please fill all fields!"
	MsgLoginSuccessful    = "Login successful!"
	MsgInvalidCredentials = "Invalid username or password!"
	MsgSignupSuccessful   = "Signup successful!"
	MsgUsernameTaken      = "Username already exists!"
	MsgInvalidAccount     = "Username or password contains invalid characters!"
	MsgStoreError         = "Storage error, please try again."
	MsgInternalError      = "Something went wrong, please try again."
)

// OutcomeKind classifies the result of a submit attempt.
type OutcomeKind int

// Outcome kinds.
const (
	OutcomePending OutcomeKind = iota
	OutcomeSuccess
	OutcomeFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "pending"
	}
}

// Outcome is the result of the most recent submit attempt. Pending carries
// no message.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// Pending returns the outcome shown before any submit, and after a mode switch.
func Pending() Outcome { return Outcome{Kind: OutcomePending} }

// Success returns a successful outcome with msg.
func Success(msg string) Outcome { return Outcome{Kind: OutcomeSuccess, Message: msg} }

// Failure returns a failed outcome with msg.
func Failure(msg string) Outcome { return Outcome{Kind: OutcomeFailure, Message: msg} }

// IsSuccess reports whether the outcome is a Success.
func (o Outcome) IsSuccess() bool { return o.Kind == OutcomeSuccess }

// IsFailure reports whether the outcome is a Failure.
func (o Outcome) IsFailure() bool { return o.Kind == OutcomeFailure }

// IsPending reports whether no outcome has been produced yet.
func (o Outcome) IsPending() bool { return o.Kind == OutcomePending }
