// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/holomush/holologin/pkg/errutil"
)

const tracerName = "github.com/holomush/holologin/internal/auth"

// Engine signs accounts in and up against a CredentialStore.
type Engine struct {
	store          CredentialStore
	codec          PasswordCodec
	logger         *slog.Logger
	tracer         trace.Tracer
	maxInputLength int
}

// NewEngine creates an Engine with a no-op logger.
// Returns an error if any required dependency is nil.
func NewEngine(store CredentialStore, codec PasswordCodec) (*Engine, error) {
	return NewEngineWithLogger(store, codec, slog.New(slog.DiscardHandler))
}

// NewEngineWithLogger creates an Engine with the provided logger.
// Returns an error if any required dependency is nil.
func NewEngineWithLogger(store CredentialStore, codec PasswordCodec, logger *slog.Logger) (*Engine, error) {
	if store == nil {
		return nil, oops.Errorf("credential store is required")
	}
	if codec == nil {
		return nil, oops.Errorf("password codec is required")
	}
	if logger == nil {
		return nil, oops.Errorf("logger is required")
	}
	return &Engine{
		store:          store,
		codec:          codec,
		logger:         logger,
		tracer:         otel.Tracer(tracerName),
		maxInputLength: DefaultMaxInputLength,
	}, nil
}

// WithMaxInputLength sets the buffer size L used to validate new accounts.
func (e *Engine) WithMaxInputLength(n int) *Engine {
	if n > 1 {
		e.maxInputLength = n
	}
	return e
}

// SignIn checks username and password against the store.
// Unknown usernames and wrong passwords produce the same Failure.
func (e *Engine) SignIn(ctx context.Context, username, password string) Outcome {
	ctx, span := e.tracer.Start(ctx, "auth.SignIn")
	defer span.End()

	if username == "" || password == "" {
		RecordAttempt(OperationSignIn, ResultInvalid)
		return Failure(MsgFillAllFields)
	}

	stored, found, err := e.store.Lookup(ctx, username)
	if err != nil {
		e.storeFailed(span, "sign-in lookup failed", err)
		RecordAttempt(OperationSignIn, ResultError)
		return Failure(MsgStoreError)
	}

	target := stored
	if !found {
		target = e.codec.Decoy()
	}

	valid, verifyErr := e.codec.Verify(password, target)
	if verifyErr != nil {
		// A stored value the codec cannot read never authenticates.
		e.logger.WarnContext(ctx, "stored password unreadable",
			"event", "sign_in_verify_failed",
			"code", errutil.Code(verifyErr),
			"error", verifyErr.Error(),
		)
		valid = false
	}

	if !found || !valid {
		e.logger.InfoContext(ctx, "sign-in denied", "event", "sign_in_denied", "account_exists", found)
		span.SetAttributes(attribute.String("auth.result", ResultDenied))
		RecordAttempt(OperationSignIn, ResultDenied)
		return Failure(MsgInvalidCredentials)
	}

	e.logger.InfoContext(ctx, "sign-in succeeded", "event", "sign_in_succeeded", "username", username)
	span.SetAttributes(attribute.String("auth.result", ResultSuccess))
	RecordAttempt(OperationSignIn, ResultSuccess)
	return Success(MsgLoginSuccessful)
}

// SignUp creates an account unless the username is taken. A Success outcome
// tells the caller to clear its input buffers.
func (e *Engine) SignUp(ctx context.Context, username, password string) Outcome {
	ctx, span := e.tracer.Start(ctx, "auth.SignUp")
	defer span.End()

	if username == "" || password == "" {
		RecordAttempt(OperationSignUp, ResultInvalid)
		return Failure(MsgFillAllFields)
	}

	account, err := NewAccount(username, password, e.maxInputLength)
	if err != nil {
		e.logger.InfoContext(ctx, "sign-up rejected", "event", "sign_up_invalid", "error", err.Error())
		RecordAttempt(OperationSignUp, ResultInvalid)
		return Failure(MsgInvalidAccount)
	}

	encoded, err := e.codec.Encode(account.Password)
	if err != nil {
		errutil.LogError(e.logger, "encode password failed", err, "event", "sign_up_encode_failed")
		span.SetStatus(codes.Error, "encode password")
		RecordAttempt(OperationSignUp, ResultError)
		// The store was never touched.
		return Failure(MsgInternalError)
	}

	err = e.store.InsertIfAbsent(ctx, account.Username, encoded)
	switch {
	case err == nil:
		e.logger.InfoContext(ctx, "account created", "event", "sign_up_succeeded", "username", account.Username)
		span.SetAttributes(attribute.String("auth.result", ResultSuccess))
		RecordAttempt(OperationSignUp, ResultSuccess)
		return Success(MsgSignupSuccessful)
	case errors.Is(err, ErrAlreadyExists):
		e.logger.InfoContext(ctx, "username taken", "event", "sign_up_exists", "username", account.Username)
		span.SetAttributes(attribute.String("auth.result", ResultExists))
		RecordAttempt(OperationSignUp, ResultExists)
		return Failure(MsgUsernameTaken)
	default:
		e.storeFailed(span, "sign-up insert failed", err)
		RecordAttempt(OperationSignUp, ResultError)
		return Failure(MsgStoreError)
	}
}

func (e *Engine) storeFailed(span trace.Span, msg string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	errutil.LogError(e.logger, msg, err, "event", "store_failed")
}
