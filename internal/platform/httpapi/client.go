// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package httpapi provides the JSON-over-HTTP transport used by the client core.

It centralizes request shaping (JSON encoding, bearer credentials, request
correlation IDs) and response envelope decoding so that the domain stores only
deal with typed payloads and normalized failures.

# Architecture

  - Client: A thin wrapper over [http.Client] bound to one base URL.
  - Envelope: The service's uniform {success, message, data, error} JSON shape.
  - Single attempt: No retries, no backoff, no per-call timeout override —
    the transport default applies to every operation.

Transport-level failures (dial errors, timeouts, unreadable bodies) are
returned as plain errors; anything the service actually answered — success or
not — is returned as an [Envelope] for the caller to normalize.
*/
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// # Wire Envelope

// Envelope is the uniform response shape of the remote auth service.
//
// 2xx bodies carry {success:true, message?, data}; error bodies carry
// {success:false, error, message?}.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	// StatusCode is the HTTP status the envelope arrived with. Not part of
	// the wire format.
	StatusCode int `json:"-"`
}

// DecodeData unmarshals the envelope's data block into target.
func (e *Envelope) DecodeData(target interface{}) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("httpapi: response envelope has no data block")
	}
	if err := json.Unmarshal(e.Data, target); err != nil {
		return fmt.Errorf("httpapi: failed to decode data block: %w", err)
	}
	return nil
}

// # Client

// Client issues JSON requests against a single service base URL.
//
// # Concurrency
//
// Client is immutable after construction and safe for concurrent use. The
// serialization of operations against one session is the responsibility of
// the session owner, not the transport.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient constructs a [Client] for the given base URL.
//
// The timeout is the transport default for every call issued through this
// client; there is no per-operation override.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// BaseURL returns the configured service base URL.
func (client *Client) BaseURL() string { return client.baseURL }

/*
Do issues a single JSON request and decodes the response envelope.

Parameters:
  - ctx: context.Context (cancellation propagates to the transport)
  - method: HTTP verb
  - path: service path, e.g. "/api/v1/auth/login"
  - body: request payload, JSON-encoded when non-nil
  - bearer: access token attached as "Authorization: Bearer <token>" when non-empty

Returns:
  - *Envelope: whatever the service answered, success or failure
  - error: transport-level failures only (the service never responded, or
    responded with something that is not a JSON envelope)
*/
func (client *Client) Do(ctx context.Context, method, path string, body interface{}, bearer string) (*Envelope, error) {

	// Encode the payload. Optional fields marked omitempty are passed
	// through unchanged; absent ones never reach the wire.
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("httpapi: failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("httpapi: failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-ID", requestID)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		request.Header.Set("Authorization", "Bearer "+bearer)
	}

	startedAt := time.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		client.log.Debug("api_call_transport_error",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("httpapi: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("httpapi: failed to read response body: %w", err)
	}

	client.log.Debug("api_call_completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", response.StatusCode),
		slog.Duration("elapsed", time.Since(startedAt)),
	)

	envelope := &Envelope{StatusCode: response.StatusCode}
	if err := json.Unmarshal(raw, envelope); err != nil {
		// Not a service envelope (e.g. an HTML error page from a proxy).
		// That is a transport failure, not a service answer.
		return nil, fmt.Errorf("httpapi: %s %s: status %d with undecodable body", method, path, response.StatusCode)
	}

	// A non-2xx answer is never a success, whatever the body claims.
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		envelope.Success = false
	}

	return envelope, nil
}

// Get is shorthand for an unauthenticated GET request.
func (client *Client) Get(ctx context.Context, path string) (*Envelope, error) {
	return client.Do(ctx, http.MethodGet, path, nil, "")
}

// Post is shorthand for an unauthenticated POST request.
func (client *Client) Post(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return client.Do(ctx, http.MethodPost, path, body, "")
}
