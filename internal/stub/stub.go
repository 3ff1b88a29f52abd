// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package stub implements the remote auth service's REST contract in memory.

It exists so the client can be exercised end-to-end — manually via
cmd/authstub, and from the test suite via httptest — without the real
microservice. It is a disposable fixture: nothing is persisted, every restart
starts empty.

# Endpoints

  - POST /api/v1/auth/register      {success, message, data:{user, accessToken, refreshToken}}
  - POST /api/v1/auth/login         same envelope
  - GET  /api/v1/auth/me            bearer access token, data:{user}
  - POST /api/v1/auth/logout        {success, message}
  - POST /api/v1/auth/refresh-token data:{accessToken}
  - GET  /health                    {success, message}

Error bodies are {success:false, error} with the HTTP status carrying the
failure class (400/401/409/429).
*/
package stub

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/taibuivan/hiraku/internal/platform/sec"
	"github.com/taibuivan/hiraku/internal/users/auth"
)

// # Configuration

// Config tunes the fixture. Zero values fall back to [DefaultConfig].
type Config struct {
	// TokenSecret signs HS256 access tokens.
	TokenSecret string
	// AccessTokenTTL is the access token lifetime.
	AccessTokenTTL time.Duration
	// LoginRate and LoginBurst bound login attempts per client IP.
	LoginRate  rate.Limit
	LoginBurst int
}

// DefaultConfig returns the settings used by cmd/authstub.
func DefaultConfig() Config {
	return Config{
		TokenSecret:    "hiraku-stub-secret",
		AccessTokenTTL: 15 * time.Minute,
		LoginRate:      rate.Every(time.Second),
		LoginBurst:     10,
	}
}

// # Server

// record pairs a stored user with its password hash. The hash never leaves
// the fixture.
type record struct {
	user         auth.User
	passwordHash []byte
}

// Server is the in-memory auth service.
//
// # Concurrency
//
// All maps are guarded by one mutex; handler work outside the critical
// sections (hashing, signing) runs unlocked.
type Server struct {
	tokens   *sec.TokenService
	ttl      time.Duration
	log      *slog.Logger
	limiters *ipLimiters

	mu       sync.Mutex
	users    map[string]*record // keyed by lowercase email
	sessions map[string]string  // refresh token → user ID
}

// New constructs a [Server] with the given configuration.
func New(cfg Config, log *slog.Logger) *Server {
	defaults := DefaultConfig()
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = defaults.TokenSecret
	}
	if cfg.AccessTokenTTL == 0 {
		cfg.AccessTokenTTL = defaults.AccessTokenTTL
	}
	if cfg.LoginRate == 0 {
		cfg.LoginRate = defaults.LoginRate
	}
	if cfg.LoginBurst == 0 {
		cfg.LoginBurst = defaults.LoginBurst
	}
	if log == nil {
		log = slog.Default()
	}

	return &Server{
		tokens:   sec.NewTokenService(cfg.TokenSecret, "hiraku-stub"),
		ttl:      cfg.AccessTokenTTL,
		log:      log,
		limiters: newIPLimiters(cfg.LoginRate, cfg.LoginBurst),
		users:    make(map[string]*record),
		sessions: make(map[string]string),
	}
}

// Router returns the chi router exposing the full REST contract.
func (server *Server) Router() chi.Router {
	router := chi.NewRouter()

	router.Get("/health", server.health)
	router.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", server.register)
		r.With(server.limiters.middleware).Post("/login", server.login)
		r.Get("/me", server.me)
		r.Post("/logout", server.logout)
		r.Post("/refresh-token", server.refreshToken)
	})

	return router
}

// # Handlers

func (server *Server) register(writer http.ResponseWriter, request *http.Request) {
	var input auth.Credentials
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		writeError(writer, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if input.FirstName == "" || input.LastName == "" || input.Email == "" || len(input.Password) < 8 {
		writeError(writer, http.StatusBadRequest, "Validation failed: firstName, lastName, email and a password of at least 8 characters are required")
		return
	}

	// MinCost keeps the fixture fast; this hash protects nothing real.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.MinCost)
	if err != nil {
		writeError(writer, http.StatusInternalServerError, "Failed to process password")
		return
	}

	key := strings.ToLower(input.Email)
	user := auth.User{
		ID:          uuid.NewString(),
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Role:        "user",
		IsActive:    true,
		Phone:       input.Phone,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		Address:     input.Address,
	}

	server.mu.Lock()
	if _, exists := server.users[key]; exists {
		server.mu.Unlock()
		writeError(writer, http.StatusConflict, "Email already in use")
		return
	}
	server.users[key] = &record{user: user, passwordHash: passwordHash}
	server.mu.Unlock()

	result, err := server.issueTokens(user)
	if err != nil {
		writeError(writer, http.StatusInternalServerError, "Failed to issue tokens")
		return
	}

	server.log.Info("stub_user_registered", slog.String("email", user.Email))
	writeSuccess(writer, http.StatusCreated, "User registered successfully", result)
}

func (server *Server) login(writer http.ResponseWriter, request *http.Request) {
	var input auth.LoginCredentials
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		writeError(writer, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	server.mu.Lock()
	stored, exists := server.users[strings.ToLower(input.Email)]
	server.mu.Unlock()

	// Generic message for both unknown email and wrong password to prevent
	// account enumeration.
	if !exists || bcrypt.CompareHashAndPassword(stored.passwordHash, []byte(input.Password)) != nil {
		writeError(writer, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	result, err := server.issueTokens(stored.user)
	if err != nil {
		writeError(writer, http.StatusInternalServerError, "Failed to issue tokens")
		return
	}

	writeSuccess(writer, http.StatusOK, "Login successful", result)
}

func (server *Server) me(writer http.ResponseWriter, request *http.Request) {
	accessToken := bearerToken(request)
	if accessToken == "" {
		writeError(writer, http.StatusUnauthorized, "Missing access token")
		return
	}

	claims, err := server.tokens.VerifyToken(accessToken)
	if err != nil {
		writeError(writer, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	server.mu.Lock()
	stored, exists := server.users[strings.ToLower(claims.Email)]
	server.mu.Unlock()
	if !exists {
		writeError(writer, http.StatusUnauthorized, "User no longer exists")
		return
	}

	writeSuccess(writer, http.StatusOK, "", map[string]interface{}{
		"user": stored.user,
	})
}

func (server *Server) logout(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil || input.RefreshToken == "" {
		writeError(writer, http.StatusBadRequest, "Refresh token is required")
		return
	}

	// Idempotent: revoking an unknown token is still a successful logout.
	server.mu.Lock()
	delete(server.sessions, input.RefreshToken)
	server.mu.Unlock()

	writeSuccess(writer, http.StatusOK, "Logged out successfully", nil)
}

func (server *Server) refreshToken(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil || input.RefreshToken == "" {
		writeError(writer, http.StatusBadRequest, "Refresh token is required")
		return
	}

	server.mu.Lock()
	userID, exists := server.sessions[input.RefreshToken]
	var stored *record
	if exists {
		for _, candidate := range server.users {
			if candidate.user.ID == userID {
				stored = candidate
				break
			}
		}
	}
	server.mu.Unlock()

	if stored == nil {
		writeError(writer, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	accessToken, err := server.tokens.GenerateAccessToken(stored.user.ID, stored.user.Email, stored.user.Role, server.ttl)
	if err != nil {
		writeError(writer, http.StatusInternalServerError, "Failed to issue tokens")
		return
	}

	writeSuccess(writer, http.StatusOK, "", map[string]interface{}{
		"accessToken": accessToken,
	})
}

func (server *Server) health(writer http.ResponseWriter, _ *http.Request) {
	writeSuccess(writer, http.StatusOK, "Service is healthy", nil)
}

// # Helpers

// issueTokens mints an access/refresh pair and records the refresh session.
func (server *Server) issueTokens(user auth.User) (map[string]interface{}, error) {
	accessToken, err := server.tokens.GenerateAccessToken(user.ID, user.Email, user.Role, server.ttl)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.NewString()
	server.mu.Lock()
	server.sessions[refreshToken] = user.ID
	server.mu.Unlock()

	return map[string]interface{}{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, nil
}

// bearerToken extracts the credential from an "Authorization: Bearer" header.
func bearerToken(request *http.Request) string {
	header := request.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// writeSuccess emits the service's success envelope.
func writeSuccess(writer http.ResponseWriter, statusCode int, message string, data interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)

	envelope := map[string]interface{}{"success": true}
	if message != "" {
		envelope["message"] = message
	}
	if data != nil {
		envelope["data"] = data
	}
	_ = json.NewEncoder(writer).Encode(envelope)
}

// writeError emits the service's error envelope.
func writeError(writer http.ResponseWriter, statusCode int, message string) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
