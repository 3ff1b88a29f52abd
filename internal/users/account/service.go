// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/hiraku/internal/platform/apperr"
	"github.com/taibuivan/hiraku/internal/platform/sec"
	"github.com/taibuivan/hiraku/internal/users/auth"
)

// # Profile View Controller

// Controller drives the profile view for the lifetime of one session.
//
// # Concurrency
//
// API operations against the session (refresh, logout, token refresh) are
// serialized by a dedicated mutex: a refresh can never race a logout over
// the same TokenPair. Results that arrive after the session closed are
// dropped by the session holder itself.
type Controller struct {
	api       auth.API
	notifier  auth.Notifier
	navigator auth.Navigator
	log       *slog.Logger

	// ops serializes network operations against the one held session.
	ops     sync.Mutex
	session *Session
}

// NewController constructs the profile controller around the User and
// TokenPair handed over from the auth flow.
func NewController(api auth.API, notifier auth.Notifier, navigator auth.Navigator, user *auth.User, tokens auth.TokenPair, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		api:       api,
		notifier:  notifier,
		navigator: navigator,
		log:       log,
		session:   NewSession(user, tokens),
	}
}

// User returns the currently displayed user (stale-but-available on refresh
// failure), or nil once the session has ended.
func (controller *Controller) User() *auth.User {
	return controller.session.User()
}

// Tokens returns the held token pair for display.
func (controller *Controller) Tokens() auth.TokenPair {
	return controller.session.Tokens()
}

// Ended reports whether the session has been torn down.
func (controller *Controller) Ended() bool {
	return controller.session.Closed()
}

// AccessTokenInfo decodes the held access token's claims for display
// (subject, expiry countdown). Advisory only — the decode is unverified.
func (controller *Controller) AccessTokenInfo() (*sec.TokenInfo, error) {
	return sec.Inspect(controller.session.Tokens().AccessToken)
}

/*
Refresh re-fetches the profile with the held access token.

Description: On success the held User is replaced wholesale and a success
notification is raised. On failure the held User is left unchanged
(stale-but-available) and an error notification is raised. A result that
resolves after the session has closed is dropped silently.

Parameters:
  - context: context.Context

Returns:
  - bool: false when the session had already ended (no call issued).
*/
func (controller *Controller) Refresh(context context.Context) bool {
	controller.ops.Lock()
	defer controller.ops.Unlock()

	if controller.session.Closed() {
		return false
	}
	accessToken := controller.session.Tokens().AccessToken

	user, err := controller.api.GetProfile(context, accessToken)
	if err != nil {
		// Failures arriving after close are dropped the same way successes
		// are: a torn-down view raises no notifications at all.
		if controller.session.Closed() {
			controller.log.Debug("profile_refresh_result_dropped_after_close")
			return true
		}
		controller.log.Debug("profile_refresh_failed", slog.String("error", apperr.Message(err)))
		controller.notifier.Error("Error", apperr.Message(err))
		return true
	}

	// The session rejects the replacement if it closed while the request
	// was in flight — a late result must not resurrect a torn-down view.
	if !controller.session.ReplaceUser(user) {
		controller.log.Debug("profile_refresh_result_dropped_after_close")
		return true
	}

	controller.notifier.Success("Profile Updated!", "Your profile information has been refreshed.")
	return true
}

/*
Logout ends the session.

Description: Invalidates the refresh token server-side (best-effort — any
failure surfaces the fixed "Logout failed" message), then ALWAYS destroys the
local session and navigates back to the auth flow. Ending the local session
even when the server call fails is deliberate: the user asked to leave, and
the held tokens must not outlive that intent.

Parameters:
  - context: context.Context

Returns:
  - bool: false when the session had already ended (no call issued).
*/
func (controller *Controller) Logout(context context.Context) bool {
	controller.ops.Lock()
	defer controller.ops.Unlock()

	if controller.session.Closed() {
		return false
	}
	refreshToken := controller.session.Tokens().RefreshToken

	err := controller.api.Logout(context, refreshToken)

	controller.session.Close()

	if err != nil {
		controller.notifier.Error("Error", apperr.Message(err))
	} else {
		controller.notifier.Success("Logged Out", "You have been successfully logged out.")
	}

	controller.navigator.NavigateBack()
	return true
}

/*
RefreshAccessToken manually exchanges the held refresh token for a new access
token. Nothing triggers this automatically — there is no expiry detection and
no retry-on-401; the manual contract is deliberate.

Parameters:
  - context: context.Context

Returns:
  - bool: false when the session had already ended (no call issued).
*/
func (controller *Controller) RefreshAccessToken(context context.Context) bool {
	controller.ops.Lock()
	defer controller.ops.Unlock()

	if controller.session.Closed() {
		return false
	}
	refreshToken := controller.session.Tokens().RefreshToken

	accessToken, err := controller.api.RefreshToken(context, refreshToken)
	if err != nil {
		if controller.session.Closed() {
			controller.log.Debug("token_refresh_result_dropped_after_close")
			return true
		}
		controller.notifier.Error("Error", apperr.Message(err))
		return true
	}

	if !controller.session.SetAccessToken(accessToken) {
		controller.log.Debug("token_refresh_result_dropped_after_close")
		return true
	}

	controller.notifier.Success("Token Refreshed", "A new access token has been issued.")
	return true
}

// Teardown ends the session without a server round trip — the navigate-away
// path. Pending results are dropped by the session holder.
func (controller *Controller) Teardown() {
	controller.session.Close()
}
