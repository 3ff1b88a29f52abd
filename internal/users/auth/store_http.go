// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"net/http"

	"github.com/taibuivan/hiraku/internal/platform/apperr"
	"github.com/taibuivan/hiraku/internal/platform/httpapi"
)

// HTTPStore implements the [API] contract over the JSON REST transport.
type HTTPStore struct {
	transport *httpapi.Client
}

// Compile-time check that HTTPStore satisfies the API contract.
var _ API = (*HTTPStore)(nil)

// NewHTTPStore constructs an [HTTPStore] on top of a configured transport.
func NewHTTPStore(transport *httpapi.Client) *HTTPStore {
	return &HTTPStore{transport: transport}
}

// authPayload is the data block of a successful register or login response.
type authPayload struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// profilePayload is the data block of a successful profile fetch.
type profilePayload struct {
	User *User `json:"user"`
}

// refreshPayload is the data block of a successful token refresh.
type refreshPayload struct {
	AccessToken string `json:"accessToken"`
}

/*
Register issues the account creation request.

The full registration payload is sent as-is: optional fields and the nested
Address are passed through unchanged. Failures carry the service-provided
error detail when present, else "Registration failed".
*/
func (store *HTTPStore) Register(context context.Context, credentials Credentials) (*Result, error) {
	envelope, err := store.transport.Post(context, PathRegister, credentials)
	if failure := normalize(envelope, err, MsgRegistrationFailed, true); failure != nil {
		return nil, failure
	}
	return decodeResult(envelope, MsgRegistrationFailed)
}

/*
Login issues the authentication request. Same contract as Register with the
fallback message "Login failed".
*/
func (store *HTTPStore) Login(context context.Context, credentials LoginCredentials) (*Result, error) {
	envelope, err := store.transport.Post(context, PathLogin, credentials)
	if failure := normalize(envelope, err, MsgLoginFailed, true); failure != nil {
		return nil, failure
	}
	return decodeResult(envelope, MsgLoginFailed)
}

/*
GetProfile fetches the current user with the access token as a bearer
credential. A successful fetch fully replaces the held User — no merging
across partial fetches.
*/
func (store *HTTPStore) GetProfile(context context.Context, accessToken string) (*User, error) {
	envelope, err := store.transport.Do(context, http.MethodGet, PathProfile, nil, accessToken)
	if failure := normalize(envelope, err, MsgProfileFailed, true); failure != nil {
		return nil, failure
	}

	payload := profilePayload{}
	if err := envelope.DecodeData(&payload); err != nil || payload.User == nil {
		return nil, apperr.Transport(MsgProfileFailed, err)
	}
	return payload.User, nil
}

/*
Logout invalidates the refresh token server-side. Best-effort: every failure
surfaces the fixed "Logout failed" message — the service error detail is
intentionally NOT propagated for this operation.
*/
func (store *HTTPStore) Logout(context context.Context, refreshToken string) error {
	envelope, err := store.transport.Post(context, PathLogout, map[string]string{
		"refreshToken": refreshToken,
	})
	return normalize(envelope, err, MsgLogoutFailed, false)
}

/*
RefreshToken exchanges the refresh token for a fresh access token. Failures
surface the fixed "Token refresh failed" message.
*/
func (store *HTTPStore) RefreshToken(context context.Context, refreshToken string) (string, error) {
	envelope, err := store.transport.Post(context, PathRefreshToken, map[string]string{
		"refreshToken": refreshToken,
	})
	if failure := normalize(envelope, err, MsgRefreshFailed, false); failure != nil {
		return "", failure
	}

	payload := refreshPayload{}
	if err := envelope.DecodeData(&payload); err != nil || payload.AccessToken == "" {
		return "", apperr.Transport(MsgRefreshFailed, err)
	}
	return payload.AccessToken, nil
}

/*
HealthCheck probes the service liveness endpoint. Failures surface the fixed
"Service unavailable" message.
*/
func (store *HTTPStore) HealthCheck(context context.Context) error {
	envelope, err := store.transport.Get(context, PathHealth)
	return normalize(envelope, err, MsgServiceUnavailable, false)
}

// # Failure Normalization

// normalize converts a transport outcome into the uniform error shape.
//
// Rules (applied in order):
//  1. The service never answered (network failure, undecodable body)
//     → TRANSPORT_ERROR with the operation fallback message.
//  2. The service answered success:true → no error.
//  3. The service answered success:false with an "error" field AND the
//     operation propagates detail → SERVICE_ERROR with that string verbatim.
//  4. Otherwise → SERVICE_ERROR with the operation fallback message.
func normalize(envelope *httpapi.Envelope, err error, fallback string, propagateDetail bool) error {
	if err != nil {
		return apperr.Transport(fallback, err)
	}
	if envelope.Success {
		return nil
	}
	if propagateDetail && envelope.Error != "" {
		return apperr.Service(envelope.Error)
	}
	return apperr.Service(fallback)
}

// decodeResult extracts the {user, accessToken, refreshToken} block shared by
// register and login responses.
func decodeResult(envelope *httpapi.Envelope, fallback string) (*Result, error) {
	payload := authPayload{}
	if err := envelope.DecodeData(&payload); err != nil || payload.User == nil {
		return nil, apperr.Transport(fallback, err)
	}
	return &Result{
		User: payload.User,
		Tokens: TokenPair{
			AccessToken:  payload.AccessToken,
			RefreshToken: payload.RefreshToken,
		},
	}, nil
}
