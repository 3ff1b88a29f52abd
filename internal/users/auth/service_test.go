// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hiraku/internal/platform/apperr"
	"github.com/taibuivan/hiraku/internal/users/auth"
)

// # Test Doubles

// fakeAPI implements [auth.API] with per-operation hooks and call counters.
type fakeAPI struct {
	mu            sync.Mutex
	registerCalls int
	loginCalls    int

	registerFn func(auth.Credentials) (*auth.Result, error)
	loginFn    func(auth.LoginCredentials) (*auth.Result, error)
}

func (api *fakeAPI) Register(_ context.Context, credentials auth.Credentials) (*auth.Result, error) {
	api.mu.Lock()
	api.registerCalls++
	fn := api.registerFn
	api.mu.Unlock()
	if fn == nil {
		return &auth.Result{User: &auth.User{}}, nil
	}
	return fn(credentials)
}

func (api *fakeAPI) Login(_ context.Context, credentials auth.LoginCredentials) (*auth.Result, error) {
	api.mu.Lock()
	api.loginCalls++
	fn := api.loginFn
	api.mu.Unlock()
	if fn == nil {
		return &auth.Result{User: &auth.User{}}, nil
	}
	return fn(credentials)
}

func (api *fakeAPI) GetProfile(context.Context, string) (*auth.User, error) { return nil, nil }
func (api *fakeAPI) Logout(context.Context, string) error                   { return nil }
func (api *fakeAPI) RefreshToken(context.Context, string) (string, error)   { return "", nil }
func (api *fakeAPI) HealthCheck(context.Context) error                      { return nil }

// notification is one recorded toast.
type notification struct {
	kind    string
	title   string
	message string
}

// recordingNotifier implements [auth.Notifier] and records every toast.
type recordingNotifier struct {
	mu     sync.Mutex
	toasts []notification
}

func (notifier *recordingNotifier) Success(title, message string) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.toasts = append(notifier.toasts, notification{"success", title, message})
}

func (notifier *recordingNotifier) Error(title, message string) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.toasts = append(notifier.toasts, notification{"error", title, message})
}

func (notifier *recordingNotifier) last() notification {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.toasts) == 0 {
		return notification{}
	}
	return notifier.toasts[len(notifier.toasts)-1]
}

// recordingNavigator implements [auth.Navigator] and records transitions.
type recordingNavigator struct {
	mu        sync.Mutex
	user      *auth.User
	tokens    auth.TokenPair
	toProfile int
	back      int
}

func (navigator *recordingNavigator) NavigateToProfile(user *auth.User, tokens auth.TokenPair) {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	navigator.user = user
	navigator.tokens = tokens
	navigator.toProfile++
}

func (navigator *recordingNavigator) NavigateBack() {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	navigator.back++
}

func newFlowFixture(api *fakeAPI) (*auth.Controller, *recordingNotifier, *recordingNavigator) {
	notifier := &recordingNotifier{}
	navigator := &recordingNavigator{}
	return auth.NewController(api, notifier, navigator, nil), notifier, navigator
}

// # Tests

func TestController_Defaults(t *testing.T) {
	flow, _, _ := newFlowFixture(&fakeAPI{})

	assert.Equal(t, auth.StateIdle, flow.State())
	assert.Equal(t, auth.TabRegister, flow.ActiveTab())
}

/*
TestController_ValidationBlocksSubmission: when any required field is empty
the API client is never invoked, the state stays Idle, and the blocked fields
carry field-scoped messages.
*/
func TestController_ValidationBlocksSubmission(t *testing.T) {
	api := &fakeAPI{}
	flow, notifier, navigator := newFlowFixture(api)

	ok := flow.Submit(context.Background())

	assert.False(t, ok)
	assert.Equal(t, 0, api.registerCalls, "API must not be invoked on validation failure")
	assert.Equal(t, auth.StateIdle, flow.State())
	assert.Empty(t, notifier.toasts)
	assert.Zero(t, navigator.toProfile)

	fields := flow.FieldErrors()
	assert.Equal(t, "First name is required", fields[auth.FieldFirstName])
	assert.Equal(t, "Last name is required", fields[auth.FieldLastName])
	assert.Equal(t, "Email is required", fields[auth.FieldEmail])
	assert.Equal(t, "Password is required", fields[auth.FieldPassword])
}

/*
TestController_RegisterSuccess: a passing submission reaches Succeeded, clears
the form, raises the success toast, and hands the exact User and TokenPair to
the navigator.
*/
func TestController_RegisterSuccess(t *testing.T) {
	registered := &auth.User{ID: "u-1", Email: "tai@hiraku.dev", FirstName: "Tai"}
	tokens := auth.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}
	api := &fakeAPI{
		registerFn: func(credentials auth.Credentials) (*auth.Result, error) {
			assert.Equal(t, "tai@hiraku.dev", credentials.Email)
			return &auth.Result{User: registered, Tokens: tokens}, nil
		},
	}
	flow, notifier, navigator := newFlowFixture(api)

	form := flow.RegisterForm()
	form.FirstName = "Tai"
	form.LastName = "Bui"
	form.Email = "tai@hiraku.dev"
	form.Password = "longenough"

	require.True(t, flow.Submit(context.Background()))

	assert.Equal(t, auth.StateSucceeded, flow.State())
	assert.Equal(t, auth.RegistrationForm{}, *flow.RegisterForm(), "form clears on success")
	assert.Equal(t, notification{"success", "Success!", "Account created successfully!"}, notifier.last())

	require.Equal(t, 1, navigator.toProfile)
	assert.Same(t, registered, navigator.user)
	assert.Equal(t, tokens, navigator.tokens)
}

func TestController_LoginSuccess(t *testing.T) {
	api := &fakeAPI{
		loginFn: func(credentials auth.LoginCredentials) (*auth.Result, error) {
			return &auth.Result{User: &auth.User{ID: "u-2"}, Tokens: auth.TokenPair{AccessToken: "a"}}, nil
		},
	}
	flow, notifier, navigator := newFlowFixture(api)
	require.True(t, flow.SelectTab(auth.TabLogin))

	form := flow.LoginForm()
	form.Email = "tai@hiraku.dev"
	form.Password = "pw"

	require.True(t, flow.Submit(context.Background()))

	assert.Equal(t, 1, api.loginCalls)
	assert.Equal(t, 0, api.registerCalls)
	assert.Equal(t, auth.LoginForm{}, *flow.LoginForm())
	assert.Equal(t, notification{"success", "Success!", "Welcome back!"}, notifier.last())
	assert.Equal(t, 1, navigator.toProfile)
}

/*
TestController_FailureKeepsFields: an API failure reaches Failed, raises an
error toast with the resolved message, and retains the field values for retry.
*/
func TestController_FailureKeepsFields(t *testing.T) {
	api := &fakeAPI{
		registerFn: func(auth.Credentials) (*auth.Result, error) {
			return nil, apperr.Service("Email already in use")
		},
	}
	flow, notifier, navigator := newFlowFixture(api)

	form := flow.RegisterForm()
	form.FirstName = "Tai"
	form.LastName = "Bui"
	form.Email = "tai@hiraku.dev"
	form.Password = "longenough"

	require.True(t, flow.Submit(context.Background()))

	assert.Equal(t, auth.StateFailed, flow.State())
	assert.Equal(t, notification{"error", "Error", "Email already in use"}, notifier.last())
	assert.Equal(t, "tai@hiraku.dev", flow.RegisterForm().Email, "fields retained after failure")
	assert.Zero(t, navigator.toProfile)
}

/*
TestController_FailedStateResetsOnRetry: Failed transitions back through Idle
on the next submission attempt, with no explicit reset call.
*/
func TestController_FailedStateResetsOnRetry(t *testing.T) {
	failing := true
	api := &fakeAPI{
		registerFn: func(auth.Credentials) (*auth.Result, error) {
			if failing {
				return nil, apperr.Service("Email already in use")
			}
			return &auth.Result{User: &auth.User{}}, nil
		},
	}
	flow, _, _ := newFlowFixture(api)

	form := flow.RegisterForm()
	form.FirstName = "Tai"
	form.LastName = "Bui"
	form.Email = "tai@hiraku.dev"
	form.Password = "longenough"

	require.True(t, flow.Submit(context.Background()))
	require.Equal(t, auth.StateFailed, flow.State())

	failing = false
	require.True(t, flow.Submit(context.Background()))
	assert.Equal(t, auth.StateSucceeded, flow.State())
	assert.Equal(t, 2, api.registerCalls)
}

/*
TestController_SingleInFlightSubmission: with a submission blocked mid-flight,
a second Submit is a no-op and tab switching is rejected; both recover once
the first submission resolves.
*/
func TestController_SingleInFlightSubmission(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAPI{
		registerFn: func(auth.Credentials) (*auth.Result, error) {
			close(entered)
			<-release
			return &auth.Result{User: &auth.User{}}, nil
		},
	}
	flow, _, navigator := newFlowFixture(api)

	form := flow.RegisterForm()
	form.FirstName = "Tai"
	form.LastName = "Bui"
	form.Email = "tai@hiraku.dev"
	form.Password = "longenough"

	firstDone := make(chan bool, 1)
	go func() { firstDone <- flow.Submit(context.Background()) }()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("submission never reached the API")
	}

	assert.Equal(t, auth.StateSubmitting, flow.State())
	assert.False(t, flow.Submit(context.Background()), "second submit while submitting is a no-op")
	assert.False(t, flow.SelectTab(auth.TabLogin), "tab switch is disabled while submitting")
	assert.Equal(t, auth.TabRegister, flow.ActiveTab())

	close(release)
	assert.True(t, <-firstDone)
	assert.Equal(t, 1, api.registerCalls, "exactly one API call issued")
	assert.Equal(t, 1, navigator.toProfile)

	assert.True(t, flow.SelectTab(auth.TabLogin), "tab switch re-enabled after resolution")
}

func TestController_SelectTab_RejectsUnknown(t *testing.T) {
	flow, _, _ := newFlowFixture(&fakeAPI{})

	assert.False(t, flow.SelectTab(auth.Tab("settings")))
	assert.Equal(t, auth.TabRegister, flow.ActiveTab())

	assert.True(t, flow.SelectTab(auth.TabLogin))
	assert.Equal(t, auth.TabLogin, flow.ActiveTab())
}

/*
TestController_TabsKeepIndependentState: editing and failing on one tab leaves
the other tab's fields untouched.
*/
func TestController_TabsKeepIndependentState(t *testing.T) {
	flow, _, _ := newFlowFixture(&fakeAPI{})

	flow.RegisterForm().Email = "register@hiraku.dev"
	require.True(t, flow.SelectTab(auth.TabLogin))
	flow.LoginForm().Email = "login@hiraku.dev"

	// Blocked login submission must not disturb the register tab.
	assert.False(t, flow.Submit(context.Background()))
	assert.Equal(t, "register@hiraku.dev", flow.RegisterForm().Email)
	assert.Equal(t, "login@hiraku.dev", flow.LoginForm().Email)
}
