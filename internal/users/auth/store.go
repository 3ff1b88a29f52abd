// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
)

// # Remote Service Access

// API defines the client contract against the remote auth service.
//
// Every operation is a single attempt — no retries, no backoff — and every
// failure is normalized to an [apperr.AppError] whose message follows the
// per-operation rules documented on each method.
type API interface {

	/*
		Register creates a new account with the full registration payload,
		including any present optional fields (nested Address passed through
		unchanged).

		Parameters:
		  - context: context.Context
		  - credentials: Credentials

		Returns:
		  - *Result: The created user and its token pair
		  - error: Service error detail when present, else "Registration failed"
	*/
	Register(context context.Context, credentials Credentials) (*Result, error)

	/*
		Login authenticates with email and password.

		Parameters:
		  - context: context.Context
		  - credentials: LoginCredentials

		Returns:
		  - *Result: The authenticated user and its token pair
		  - error: Service error detail when present, else "Login failed"
	*/
	Login(context context.Context, credentials LoginCredentials) (*Result, error)

	/*
		GetProfile fetches the current user using a bearer access token.

		Parameters:
		  - context: context.Context
		  - accessToken: string

		Returns:
		  - *User: The full profile, replacing any previously held User
		  - error: Service error detail when present, else "Failed to get profile"
	*/
	GetProfile(context context.Context, accessToken string) (*User, error)

	/*
		Logout invalidates the session behind the refresh token. Best-effort:
		any failure yields the fixed message "Logout failed" regardless of
		the underlying cause.

		Parameters:
		  - context: context.Context
		  - refreshToken: string

		Returns:
		  - error: Always "Logout failed" on failure
	*/
	Logout(context context.Context, refreshToken string) error

	/*
		RefreshToken exchanges a refresh token for a new access token.
		Nothing invokes this automatically — the manual-only contract is
		deliberate.

		Parameters:
		  - context: context.Context
		  - refreshToken: string

		Returns:
		  - string: The new access token
		  - error: Always "Token refresh failed" on failure
	*/
	RefreshToken(context context.Context, refreshToken string) (string, error)

	/*
		HealthCheck probes service liveness.

		Parameters:
		  - context: context.Context

		Returns:
		  - error: Always "Service unavailable" on failure
	*/
	HealthCheck(context context.Context) error
}
