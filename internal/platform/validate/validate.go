// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively by the form layer — never by the API
// client or the controllers. It guarantees that no network request is issued
// while any required field is empty or any pattern/length rule fails.
//
// Each rule carries its own user-facing message. Rules for the same field
// are evaluated in chain order and only the first failure is recorded, so a
// missing email reports "Email is required" rather than both the required
// and the format message.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/hiraku/internal/platform/apperr"
)

// emailRegex matches local-part@domain.tld with a TLD of at least two
// letters, case-insensitively.
var emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every submission attempt.
type Validator struct {
	errs   []apperr.FieldError
	failed map[string]bool
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value, message string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, message)
	}
	return v
}

// MinLen fails if the Unicode character count is below min. A value of
// exactly min characters passes.
func (v *Validator) MinLen(field, value string, min int, message string) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, message)
	}
	return v
}

// Email fails if the value does not match the email pattern.
func (v *Validator) Email(field, value, message string) *Validator {
	if !emailRegex.MatchString(value) {
		v.add(field, message)
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("password", password != confirm, "Passwords do not match")
func (v *Validator) Custom(field string, failedRule bool, message string) *Validator {
	if failedRule {
		v.add(field, message)
	}
	return v
}

// Err returns an [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Fields returns the per-field failure messages keyed by field name.
// Each field's error is independent and does not block other fields.
func (v *Validator) Fields() map[string]string {
	fields := make(map[string]string, len(v.errs))
	for _, fe := range v.errs {
		fields[fe.Field] = fe.Message
	}
	return fields
}

// add records a failure unless the field has already failed an earlier rule.
func (v *Validator) add(field, message string) {
	if v.failed[field] {
		return
	}
	if v.failed == nil {
		v.failed = make(map[string]bool)
	}
	v.failed[field] = true
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
