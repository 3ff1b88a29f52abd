// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account implements the authenticated side of the client: the session
holder pairing a User with its TokenPair, and the profile view controller.

# Architecture

A session is created exactly once, from the values handed over at the
Auth → Profile transition, and destroyed when the profile view ends (logout
or teardown). Nothing is persisted; ending the session discards both tokens.
*/
package account

import (
	"sync"

	"github.com/taibuivan/hiraku/internal/users/auth"
)

// # Session Holder

// Session is the in-memory pairing of the current User and its TokenPair.
//
// # Ownership
//
// The session is owned exclusively by the active profile view. Once closed
// it never reopens: every mutation on a closed session is rejected, which is
// how results arriving after logout/teardown are ignored.
type Session struct {
	mu     sync.Mutex
	user   *auth.User
	tokens auth.TokenPair
	closed bool
}

// NewSession creates a live session from the Auth → Profile hand-off.
func NewSession(user *auth.User, tokens auth.TokenPair) *Session {
	return &Session{user: user, tokens: tokens}
}

// User returns the currently held user, or nil after close.
func (session *Session) User() *auth.User {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.user
}

// Tokens returns the held token pair. Zero after close.
func (session *Session) Tokens() auth.TokenPair {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.tokens
}

// Closed reports whether the session has ended.
func (session *Session) Closed() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.closed
}

// ReplaceUser swaps the held user wholesale — a profile fetch fully replaces
// the previous value, no merging. It reports false when the session has
// already closed, in which case the stale result is dropped.
func (session *Session) ReplaceUser(user *auth.User) bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return false
	}
	session.user = user
	return true
}

// SetAccessToken installs a freshly minted access token, keeping the refresh
// token untouched. It reports false when the session has already closed.
func (session *Session) SetAccessToken(accessToken string) bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return false
	}
	session.tokens.AccessToken = accessToken
	return true
}

// Close ends the session and destroys the held credentials. Idempotent.
func (session *Session) Close() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.closed = true
	session.user = nil
	session.tokens = auth.TokenPair{}
}
