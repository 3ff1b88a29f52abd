// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hiraku/internal/platform/apperr"
	"github.com/taibuivan/hiraku/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "firstName", "Hiraku", false},
		{"empty_string", "firstName", "", true},
		{"whitespace_only", "firstName", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value, "First name is required")

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
				assert.Equal(t, "First name is required", ae.Details[0].Message)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format rule: local-part@domain.tld with
a TLD of at least two letters, case-insensitive.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"valid_short_domain", "a@b.co", true},
		{"valid_uppercase", "TEST@EXAMPLE.COM", true},
		{"valid_plus_tag", "user+tag@mail.example.org", true},
		{"single_letter_tld", "a@b.c", false},
		{"missing_tld", "a@b", false},
		{"no_at_sign", "abc", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email, "Invalid email address")

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
				assert.Equal(t, "Invalid email address", v.Fields()["email"])
			}
		})
	}
}

/*
TestValidator_MinLen verifies the boundary behavior of the length rule:
one character short fails, exactly min characters passes.
*/
func TestValidator_MinLen(t *testing.T) {
	const message = "Password must be at least 8 characters"

	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"seven_chars", "1234567", true},
		{"exactly_eight", "12345678", false},
		{"nine_chars", "123456789", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MinLen("password", tt.value, 8, message)

			if tt.hasError {
				require.True(t, v.HasErrors())
				assert.Equal(t, message, v.Fields()["password"])
			} else {
				assert.False(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_FirstRuleWins ensures only the first failing rule per field is
reported: an empty email yields the required message, not the format one.
*/
func TestValidator_FirstRuleWins(t *testing.T) {
	v := &validate.Validator{}
	v.Required("email", "", "Email is required").
		Email("email", "", "Invalid email address")

	fields := v.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "Email is required", fields["email"])
}

/*
TestValidator_IndependentFields tests that one field's failure does not block
other fields from being validated.
*/
func TestValidator_IndependentFields(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("firstName", "", "First name is required").
		Required("lastName", "", "Last name is required").
		Required("email", "bad", "Email is required").
		Email("email", "bad", "Invalid email address").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Three distinct fields should each carry exactly one error.
	assert.Len(t, ae.Details, 3)
	fields := v.Fields()
	assert.Equal(t, "First name is required", fields["firstName"])
	assert.Equal(t, "Last name is required", fields["lastName"])
	assert.Equal(t, "Invalid email address", fields["email"])
}

/*
TestValidator_Chain tests the fluent API (chaining multiple passing rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("firstName", "Tai", "First name is required").
		Required("email", "tai@hiraku.dev", "Email is required").
		Email("email", "tai@hiraku.dev", "Invalid email address").
		MinLen("password", "longenough", 8, "Password must be at least 8 characters").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}
