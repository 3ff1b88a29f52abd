// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Hiraku.

It provides a rich error type that bridges the gap between low-level transport
failures and the human-readable notifications the presentation layer shows.

Architecture:

  - AppError: A struct containing a machine-readable ErrorCode and user-friendly messages.
  - Taxonomy: VALIDATION_ERROR (field-scoped, never reaches the network),
    TRANSPORT_ERROR (network/HTTP failure), SERVICE_ERROR (service answered success:false).
  - No error is fatal: every AppError surfaces as a notification and the client
    returns to an interactive state.

Every error that leaves the client core should be wrapped as an [AppError] to ensure
consistent presentation.
*/
package apperr

import (
	"errors"
)

// AppError is the canonical error type for the Hiraku client core.
//
// It carries a machine-readable code, a message safe to show the user, and an
// optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for local logging only and is never rendered to the user
// to avoid leaking transport internals (raw status lines, dial errors).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "TRANSPORT_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description safe to show the user.
	Message string `json:"error"`
	// Cause is the underlying error, used for local logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR results.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the form field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the user-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Constructors

// ValidationError creates a field-scoped validation failure.
//
// Validation errors are produced before submission and guarantee the API
// client is never invoked with invalid form data.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: msg,
		Details: details,
	}
}

// Transport creates an [AppError] for a network or HTTP-level failure.
//
// The message is the operation's fallback string (e.g. "Login failed"); the
// raw transport error is preserved as the cause for logging.
func Transport(msg string, cause error) *AppError {
	return &AppError{
		Code:    "TRANSPORT_ERROR",
		Message: msg,
		Cause:   cause,
	}
}

// Service creates an [AppError] for a request the service answered with
// success:false. The message is the service-provided error string when the
// operation propagates it, otherwise the operation's fallback.
func Service(msg string) *AppError {
	return &AppError{
		Code:    "SERVICE_ERROR",
		Message: msg,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// Message returns the user-safe message for any error. Non-AppError values
// fall back to their plain Error() string.
func Message(err error) string {
	if ae := As(err); ae != nil {
		return ae.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
