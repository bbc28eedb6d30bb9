// Package authclient issues login requests to the authentication
// service and classifies the outcome. One call, one attempt - retries
// and resubmission belong to the caller.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/instamd/portal-auth/internal/errors"
	"github.com/instamd/portal-auth/session"
	"github.com/rs/zerolog/log"
)

// LoginPath is the authentication endpoint on the service
const LoginPath = "/api/login"

// DefaultFailureMessage is shown when the service declines a login
// without providing its own message.
const DefaultFailureMessage = "Invalid email or password"

// CredentialError is a login declined by the authentication service.
// Message carries the service-provided text for banner display. The
// 400-class "missing fields" response is deliberately indistinguishable
// from a 401 here, matching the portal's observed behaviour.
type CredentialError struct {
	Message string
}

func (e *CredentialError) Error() string {
	return e.Message
}

func (e *CredentialError) Unwrap() error {
	return apperrors.ErrInvalidCredentials
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool             `json:"success"`
	Token   string           `json:"token,omitempty"`
	User    *session.Profile `json:"user,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// Client talks to the authentication service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (primarily for
// tests).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the service at baseURL. No client-side
// timeout is configured; an unreachable service surfaces whenever the
// transport reports failure.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Authenticate sends the credentials and yields either a session or a
// classified failure:
//
//   - transport failure: wraps apperrors.ErrServiceUnreachable
//   - service declined the login: *CredentialError with the service message
//   - unusable success payload: wraps apperrors.ErrMalformedResponse
//
// The secret is consumed here and never logged or echoed.
func (c *Client) Authenticate(ctx context.Context, identifier, secret string) (*session.Session, error) {
	body, err := json.Marshal(loginRequest{Username: identifier, Password: secret})
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LoginPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Err(err).Str("url", c.baseURL+LoginPath).Msg("authentication service unreachable")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Err(err).Int("status", resp.StatusCode).Msg("undecodable authentication response")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	if resp.StatusCode != http.StatusOK || !payload.Success {
		message := payload.Error
		if message == "" {
			message = DefaultFailureMessage
		}
		return nil, &CredentialError{Message: message}
	}

	if payload.Token == "" || payload.User == nil {
		return nil, fmt.Errorf("%w: success payload missing token or user", apperrors.ErrMalformedResponse)
	}

	return &session.Session{Token: payload.Token, User: *payload.User}, nil
}
