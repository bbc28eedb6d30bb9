package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/instamd/portal-auth/directory"
	"github.com/instamd/portal-auth/internal/config"
	"github.com/instamd/portal-auth/server"
	"github.com/instamd/portal-auth/token"
	"github.com/stretchr/testify/require"
)

type loginResponseBody struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Error   string `json:"error"`
	User    *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
}

func newTestServer(t *testing.T) (*server.Server, *token.Creator) {
	t.Helper()
	users, err := directory.NewSeededRepo()
	require.NoError(t, err)
	tokens := token.NewCreator(token.NewHMACSigner("test-secret"), 24*time.Hour)
	return server.New(config.New(), users, tokens), tokens
}

func postLogin(t *testing.T, srv http.Handler, body string) (*httptest.ResponseRecorder, loginResponseBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, server.RouteAPILogin, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var parsed loginResponseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	return rec, parsed
}

func TestLoginHandler(t *testing.T) {
	srv, tokens := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec, body := postLogin(t, srv, `{"username":"test@example.com","password":"password123"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, body.Success)
		require.NotEmpty(t, body.Token)
		require.NotNil(t, body.User)
		require.Equal(t, "1", body.User.ID)
		require.Equal(t, "test@example.com", body.User.Email)
		require.Equal(t, "Test User", body.User.Name)
		require.Equal(t, "patient", body.User.Role)

		// The issued token verifies and carries the identity claims
		claims, err := tokens.Parse(body.Token)
		require.NoError(t, err)
		require.Equal(t, "1", claims["userId"])
		require.Equal(t, "patient", claims["role"])
	})

	t.Run("email matching is case-insensitive", func(t *testing.T) {
		rec, body := postLogin(t, srv, `{"username":"TEST@EXAMPLE.COM","password":"password123"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, body.Success)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, body := postLogin(t, srv, `{"username":"test@example.com","password":"wrongpass"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, body.Success)
		require.Equal(t, "Invalid email or password", body.Error)
		require.Empty(t, body.Token)
	})

	t.Run("unknown user gets the same response", func(t *testing.T) {
		rec, body := postLogin(t, srv, `{"username":"nobody@example.com","password":"password123"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid email or password", body.Error)
	})

	t.Run("missing username", func(t *testing.T) {
		rec, body := postLogin(t, srv, `{"password":"password123"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Username and password are required", body.Error)
	})

	t.Run("missing password", func(t *testing.T) {
		rec, body := postLogin(t, srv, `{"username":"test@example.com"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Username and password are required", body.Error)
	})

	t.Run("undecodable body", func(t *testing.T) {
		rec, body := postLogin(t, srv, `{not json`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "An unexpected error occurred", body.Error)
	})

	t.Run("password matching is exact", func(t *testing.T) {
		rec, _ := postLogin(t, srv, `{"username":"test@example.com","password":"PASSWORD123"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, server.RouteHealth, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}
