// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"github.com/taibuivan/hiraku/internal/platform/validate"
)

// # Submission Forms

// RegistrationForm holds the editable field state of the register tab.
//
// Only firstName, lastName, email, and password carry validation rules; the
// remaining fields are accepted as free-form optional strings.
type RegistrationForm struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Phone       string
	DateOfBirth string
	Gender      string
	Address     Address
}

// Validate runs the per-field rules for a registration submission.
//
// Returns nil when every rule passes, otherwise a VALIDATION_ERROR carrying
// one message per failing field. Each field's error is independent and does
// not block other fields from being validated.
func (form *RegistrationForm) Validate() error {
	v := &validate.Validator{}
	v.Required(FieldFirstName, form.FirstName, "First name is required").
		Required(FieldLastName, form.LastName, "Last name is required").
		Required(FieldEmail, form.Email, "Email is required").
		Email(FieldEmail, form.Email, "Invalid email address").
		Required(FieldPassword, form.Password, "Password is required").
		MinLen(FieldPassword, form.Password, 8, "Password must be at least 8 characters")
	return v.Err()
}

// Credentials assembles the wire payload. The optional Address block is only
// attached when at least one of its fields is set.
func (form *RegistrationForm) Credentials() Credentials {
	credentials := Credentials{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Password:    form.Password,
		Phone:       form.Phone,
		DateOfBirth: form.DateOfBirth,
		Gender:      form.Gender,
	}
	if form.Address != (Address{}) {
		address := form.Address
		credentials.Address = &address
	}
	return credentials
}

// Clear resets every field. Called after a successful submission only —
// failed submissions keep the fields so the user can retry.
func (form *RegistrationForm) Clear() {
	*form = RegistrationForm{}
}

// LoginForm holds the editable field state of the login tab.
type LoginForm struct {
	Email    string
	Password string
}

// Validate runs the per-field rules for a login submission. The password is
// required only — no minimum length applies on login.
func (form *LoginForm) Validate() error {
	v := &validate.Validator{}
	v.Required(FieldEmail, form.Email, "Email is required").
		Email(FieldEmail, form.Email, "Invalid email address").
		Required(FieldPassword, form.Password, "Password is required")
	return v.Err()
}

// Credentials assembles the wire payload.
func (form *LoginForm) Credentials() LoginCredentials {
	return LoginCredentials{Email: form.Email, Password: form.Password}
}

// Clear resets both fields after a successful submission.
func (form *LoginForm) Clear() {
	*form = LoginForm{}
}
