// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/hiraku/internal/platform/apperr"
)

// # Presentation Contracts

// Notifier is the toast/notification sink consumed by the controllers.
//
// Implementations render a two-line notification (title + message); the
// controllers never format presentation text beyond these two strings.
type Notifier interface {
	// Success raises a success-kind notification.
	Success(title, message string)

	// Error raises an error-kind notification.
	Error(title, message string)
}

// Navigator is the navigation sink consumed by the controllers.
type Navigator interface {
	// NavigateToProfile transitions Auth → Profile, handing over the User
	// and TokenPair returned by a successful register or login.
	NavigateToProfile(user *User, tokens TokenPair)

	// NavigateBack transitions Profile → Auth, ending the session.
	NavigateBack()
}

// # Screen State Machine

// State is the submission lifecycle of the auth screen.
type State string

const (
	// StateIdle is the initial, interactive state.
	StateIdle State = "idle"
	// StateSubmitting marks exactly one in-flight submission. It acts as a
	// mutual-exclusion flag: submit and tab controls are disabled while set.
	StateSubmitting State = "submitting"
	// StateSucceeded follows a successful API resolution.
	StateSucceeded State = "succeeded"
	// StateFailed follows a failed API resolution. Fields are retained.
	StateFailed State = "failed"
)

// Tab selects which form is active. Orthogonal to the submission state.
type Tab string

const (
	TabRegister Tab = "register"
	TabLogin    Tab = "login"
)

// # Flow Controller

// Controller orchestrates the auth screen: tab selection, the submission
// lifecycle, and the hand-off to the profile view on success.
//
// # Concurrency
//
// State transitions are guarded so that only one submission is in flight at
// a time; a second Submit while submitting is a no-op, and tab switching is
// disabled during submission. Form field edits follow the single event-loop
// model of the UI and are not separately locked.
type Controller struct {
	api       API
	notifier  Notifier
	navigator Navigator
	log       *slog.Logger

	mu          sync.Mutex
	state       State
	tab         Tab
	fieldErrors map[string]string

	registerForm RegistrationForm
	loginForm    LoginForm
}

// NewController constructs a flow controller in the Idle state with the
// register tab active (the original screen's default).
func NewController(api API, notifier Notifier, navigator Navigator, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		api:       api,
		notifier:  notifier,
		navigator: navigator,
		log:       log,
		state:     StateIdle,
		tab:       TabRegister,
	}
}

// State returns the current submission state.
func (controller *Controller) State() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// ActiveTab returns the currently selected tab.
func (controller *Controller) ActiveTab() Tab {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.tab
}

// SelectTab switches between the register and login forms.
//
// Switching is rejected while a submission is in flight so an in-flight
// request can never be orphaned by a tab change.
func (controller *Controller) SelectTab(tab Tab) bool {
	if tab != TabRegister && tab != TabLogin {
		return false
	}

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.state == StateSubmitting {
		return false
	}
	controller.tab = tab
	return true
}

// RegisterForm exposes the register tab's field state for editing.
func (controller *Controller) RegisterForm() *RegistrationForm {
	return &controller.registerForm
}

// LoginForm exposes the login tab's field state for editing.
func (controller *Controller) LoginForm() *LoginForm {
	return &controller.loginForm
}

// FieldErrors returns the per-field messages of the last blocked submission.
// Empty when the last submission passed validation.
func (controller *Controller) FieldErrors() map[string]string {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	errs := make(map[string]string, len(controller.fieldErrors))
	for field, message := range controller.fieldErrors {
		errs[field] = message
	}
	return errs
}

/*
Submit runs the submission lifecycle for the active tab.

Description: Validates the active form, and only if every rule passes issues
the API call. On success the form is cleared, a success notification is
raised, and control navigates to the profile view carrying the returned User
and TokenPair. On failure an error notification is raised and the fields are
retained for retry.

Parameters:
  - context: context.Context

Returns:
  - bool: false when the submission was blocked (already submitting, or
    validation failed) — the API client was not invoked in that case.
*/
func (controller *Controller) Submit(context context.Context) bool {

	controller.mu.Lock()

	// Mutual exclusion: the Submitting state disables the submit control.
	if controller.state == StateSubmitting {
		controller.mu.Unlock()
		return false
	}

	// Failed|Succeeded reset to Idle implicitly on the next attempt.
	controller.state = StateIdle
	controller.fieldErrors = nil

	// Gate on validation. The API client is never invoked while any
	// required field is empty or any pattern/length rule fails.
	tab := controller.tab
	var validationErr error
	switch tab {
	case TabLogin:
		validationErr = controller.loginForm.Validate()
	default:
		validationErr = controller.registerForm.Validate()
	}

	if validationErr != nil {
		if ae := apperr.As(validationErr); ae != nil {
			fields := make(map[string]string, len(ae.Details))
			for _, detail := range ae.Details {
				fields[detail.Field] = detail.Message
			}
			controller.fieldErrors = fields
		}
		controller.mu.Unlock()
		controller.log.Debug("submission_blocked_by_validation", slog.String("tab", string(tab)))
		return false
	}

	controller.state = StateSubmitting
	registerCredentials := controller.registerForm.Credentials()
	loginCredentials := controller.loginForm.Credentials()
	controller.mu.Unlock()

	// Single attempt against the remote service.
	var result *Result
	var err error
	if tab == TabLogin {
		result, err = controller.api.Login(context, loginCredentials)
	} else {
		result, err = controller.api.Register(context, registerCredentials)
	}

	controller.mu.Lock()
	if err != nil {
		controller.state = StateFailed
		controller.mu.Unlock()

		message := apperr.Message(err)
		controller.log.Debug("submission_failed", slog.String("tab", string(tab)), slog.String("error", message))
		controller.notifier.Error("Error", message)
		return true
	}

	controller.state = StateSucceeded
	if tab == TabLogin {
		controller.loginForm.Clear()
	} else {
		controller.registerForm.Clear()
	}
	controller.mu.Unlock()

	if tab == TabRegister {
		controller.notifier.Success("Success!", "Account created successfully!")
	} else {
		controller.notifier.Success("Success!", "Welcome back!")
	}
	controller.navigator.NavigateToProfile(result.User, result.Tokens)
	return true
}
