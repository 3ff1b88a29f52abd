// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the client core for the remote authentication service.

It defines the domain entities (User, TokenPair), the API contract against the
remote service, the submission forms with their validation rules, and the flow
controller that orchestrates the register/login screen.

# Architecture

This layer is the "Truth" of the client. Entities defined here mirror the wire
format of the auth service exactly; presentation layers render them and never
reshape them.
*/
package auth

// # Domain Entities

// Address is the optional postal address block attached to a user profile.
// Every field may be absent and must render conditionally.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// User represents the identity record returned by the auth service.
//
// ID and Email are always present on any User the service returns; all
// demographic and address fields are optional.
type User struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Role            string   `json:"role"`
	IsEmailVerified bool     `json:"isEmailVerified"`
	IsPhoneVerified bool     `json:"isPhoneVerified"`
	IsActive        bool     `json:"isActive"`
	Phone           string   `json:"phone,omitempty"`
	DateOfBirth     string   `json:"dateOfBirth,omitempty"` // YYYY-MM-DD free-form, unvalidated
	Gender          string   `json:"gender,omitempty"`
	Address         *Address `json:"address,omitempty"`
}

// FullName returns the display name composed from the two name fields.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// TokenPair couples the bearer access token with the opaque refresh token.
//
// # Ownership
//
// A TokenPair is held exclusively by the active session. It is never
// persisted to disk and is destroyed when the session ends.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"` // opaque, UUID-shaped
}

// Credentials is the full registration payload. Optional fields marked
// omitempty are passed through to the service unchanged when present.
type Credentials struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Phone       string   `json:"phone,omitempty"`
	DateOfBirth string   `json:"dateOfBirth,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Address     *Address `json:"address,omitempty"`
}

// LoginCredentials is the login payload. Both fields are required.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Result is the uniform success outcome of a register or login call: the
// created/authenticated user together with its freshly minted token pair.
// Failures are carried as [apperr.AppError] values instead.
type Result struct {
	User   *User
	Tokens TokenPair
}

// # Field Identifiers

// Form field names for validation and error mapping in the auth domain.
// They match the JSON field names of the wire format.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPassword  = "password"
)
