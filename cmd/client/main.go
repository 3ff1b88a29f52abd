// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command client is the terminal front end for exercising a remote auth
// service: registration, login, profile viewing, logout.
//
// # Startup Sequence
//
//  1. Load .env (best-effort) and initialize the structured logger.
//  2. Load configuration from environment variables.
//  3. Build the HTTP transport and the auth API client.
//  4. Probe service health.
//  5. Run the auth screen ⇄ profile screen loop.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/taibuivan/hiraku/internal/platform/apperr"
	"github.com/taibuivan/hiraku/internal/platform/config"
	"github.com/taibuivan/hiraku/internal/platform/httpapi"
	"github.com/taibuivan/hiraku/internal/term"
	"github.com/taibuivan/hiraku/internal/users/account"
	"github.com/taibuivan/hiraku/internal/users/auth"
)

// registerFieldOrder fixes the rendering order of field-scoped errors.
var registerFieldOrder = []string{auth.FieldFirstName, auth.FieldLastName, auth.FieldEmail, auth.FieldPassword}

func main() {
	// ── 1. Environment & Logger ───────────────────────────────────────────
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if os.Getenv("DEBUG") == "true" {
		level = slog.LevelDebug
	}
	// Logs go to stderr so the interactive UI on stdout stays clean.
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "hiraku"))
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	// ── 3. Transport & API Client ─────────────────────────────────────────
	transport := httpapi.NewClient(cfg.BaseURL(), cfg.HTTPTimeout, log)
	api := auth.NewHTTPStore(transport)

	toaster := term.NewToaster(os.Stdout)
	prompter := term.NewPrompter(os.Stdin, os.Stdout)

	fmt.Printf("Hiraku auth client — service at %s\n", transport.BaseURL())

	// ── 4. Health Probe ───────────────────────────────────────────────────
	if err := api.HealthCheck(context.Background()); err != nil {
		toaster.Error("Error", apperr.Message(err))
	} else {
		fmt.Println("Service is reachable.")
	}

	// ── 5. Screen Loop ────────────────────────────────────────────────────
	navigator := &screenNavigator{}
	for {
		flow := auth.NewController(api, toaster, navigator, log)
		if !runAuthScreen(flow, navigator, prompter) {
			return
		}

		profile := account.NewController(api, toaster, navigator, navigator.user, navigator.tokens, log)
		runProfileScreen(profile, navigator, prompter)
	}
}

// # Navigation Sink

// screenNavigator implements [auth.Navigator] for the single-threaded
// terminal loop: transitions are recorded and consumed by the loop itself.
type screenNavigator struct {
	user      *auth.User
	tokens    auth.TokenPair
	toProfile bool
	back      bool
}

func (navigator *screenNavigator) NavigateToProfile(user *auth.User, tokens auth.TokenPair) {
	navigator.user = user
	navigator.tokens = tokens
	navigator.toProfile = true
}

func (navigator *screenNavigator) NavigateBack() {
	navigator.back = true
}

func (navigator *screenNavigator) reset() {
	*navigator = screenNavigator{}
}

// # Auth Screen

// runAuthScreen drives the register/login tabs until a submission succeeds
// (true) or the user quits (false).
func runAuthScreen(flow *auth.Controller, navigator *screenNavigator, prompter *term.Prompter) bool {
	navigator.reset()

	for {
		fmt.Printf("\n[auth] active tab: %s\n", flow.ActiveTab())
		choice, ok := prompter.Ask("(r)egister tab / (l)ogin tab / (s)ubmit / (q)uit")
		if !ok {
			return false
		}

		switch choice {
		case "r":
			if !flow.SelectTab(auth.TabRegister) {
				fmt.Println("  Cannot switch tabs while a submission is in flight.")
			}
		case "l":
			if !flow.SelectTab(auth.TabLogin) {
				fmt.Println("  Cannot switch tabs while a submission is in flight.")
			}
		case "s":
			fillActiveForm(flow, prompter)
			if !flow.Submit(context.Background()) {
				term.RenderFieldErrors(os.Stdout, flow.FieldErrors(), registerFieldOrder)
				continue
			}
			if navigator.toProfile {
				return true
			}
		case "q":
			return false
		}
	}
}

// fillActiveForm prompts for the active tab's fields. A stream that ends
// mid-fill leaves the remaining fields empty; validation blocks the
// submission and the menu prompt then observes the EOF.
func fillActiveForm(flow *auth.Controller, prompter *term.Prompter) {
	ask := func(label string) string {
		value, _ := prompter.Ask(label)
		return value
	}
	optional := func(label string) string {
		value, _ := prompter.AskOptional(label)
		return value
	}

	if flow.ActiveTab() == auth.TabLogin {
		form := flow.LoginForm()
		form.Email = ask("Email")
		form.Password = ask("Password")
		return
	}

	form := flow.RegisterForm()
	form.FirstName = ask("First Name")
	form.LastName = ask("Last Name")
	form.Email = ask("Email")
	form.Password = ask("Password")
	form.Phone = optional("Phone")
	form.DateOfBirth = optional("Date of Birth YYYY-MM-DD")
	form.Gender = optional("Gender")
	form.Address.Street = optional("Street")
	form.Address.City = optional("City")
	form.Address.State = optional("State")
	form.Address.Country = optional("Country")
	form.Address.ZipCode = optional("ZIP Code")
}

// # Profile Screen

// runProfileScreen drives the profile view until logout or teardown.
func runProfileScreen(profile *account.Controller, navigator *screenNavigator, prompter *term.Prompter) {
	navigator.reset()

	for {
		tokenInfo, _ := profile.AccessTokenInfo()
		term.RenderProfile(os.Stdout, profile.User(), profile.Tokens(), tokenInfo)

		choice, ok := prompter.Ask("(r)efresh profile / (t)oken refresh / (l)ogout / (b)ack")
		if !ok {
			profile.Teardown()
			return
		}

		switch choice {
		case "r":
			profile.Refresh(context.Background())
		case "t":
			profile.RefreshAccessToken(context.Background())
		case "l":
			profile.Logout(context.Background())
		case "b":
			profile.Teardown()
			return
		}

		if navigator.back {
			return
		}
	}
}

// must logs a structured fatal error and terminates the process if err is
// non-nil. Startup wiring only — after startup, errors are surfaced as
// notifications and never terminate the client.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
