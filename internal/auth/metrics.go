// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import "github.com/prometheus/client_golang/prometheus"

// Operation labels for attempt metrics.
const (
	OperationSignIn = "sign_in"
	OperationSignUp = "sign_up"
)

// Result labels for attempt metrics.
const (
	ResultSuccess = "success"
	ResultDenied  = "denied"
	ResultExists  = "exists"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Attempts counts submit attempts handled by the engine.
// Use RegisterMetrics to register this with a Prometheus registry.
var Attempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "holologin_auth_attempts_total",
		Help: "Total number of sign-in and sign-up attempts",
	},
	[]string{"operation", "result"},
)

// RegisterMetrics registers auth package metrics with the given Prometheus registry.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Attempts)
}

// RecordAttempt increments the attempt counter.
func RecordAttempt(operation, result string) {
	Attempts.WithLabelValues(operation, result).Inc()
}
