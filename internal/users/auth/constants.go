// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Service Endpoints

const (
	PathRegister     = "/api/v1/auth/register"
	PathLogin        = "/api/v1/auth/login"
	PathProfile      = "/api/v1/auth/me"
	PathLogout       = "/api/v1/auth/logout"
	PathRefreshToken = "/api/v1/auth/refresh-token"
	PathHealth       = "/health"
)

// # Fallback Failure Messages

// Per-operation fallback strings used when the service does not provide (or
// the operation does not propagate) an error detail.
const (
	// MsgRegistrationFailed and MsgLoginFailed are used only when the error
	// body carries no "error" field; otherwise the service detail wins.
	MsgRegistrationFailed = "Registration failed"
	MsgLoginFailed        = "Login failed"
	MsgProfileFailed      = "Failed to get profile"

	// MsgLogoutFailed is surfaced on ANY logout failure, whatever the
	// underlying cause. The service detail is deliberately not propagated
	// for this operation.
	MsgLogoutFailed = "Logout failed"

	// MsgRefreshFailed and MsgServiceUnavailable are likewise fixed.
	MsgRefreshFailed      = "Token refresh failed"
	MsgServiceUnavailable = "Service unavailable"
)
