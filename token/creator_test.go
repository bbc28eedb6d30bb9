package token_test

import (
	"testing"
	"time"

	"github.com/instamd/portal-auth/directory"
	"github.com/instamd/portal-auth/token"
	"github.com/stretchr/testify/require"
)

func testUser() *directory.User {
	return &directory.User{
		ID:    "1",
		Email: "test@example.com",
		Name:  "Test User",
		Role:  directory.RolePatient,
	}
}

func TestCreator_CreateAccessToken(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	token.NowTimeFunc = func() time.Time { return now }
	defer func() { token.NowTimeFunc = time.Now }()

	creator := token.NewCreator(token.NewHMACSigner("test-secret"), 24*time.Hour)

	signed, err := creator.CreateAccessToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := creator.Parse(signed)
	require.NoError(t, err)

	require.Equal(t, "1", claims["userId"])
	require.Equal(t, "test@example.com", claims["email"])
	require.Equal(t, "Test User", claims["name"])
	require.Equal(t, "patient", claims["role"])
	require.EqualValues(t, now.Unix(), claims["iat"])
	require.EqualValues(t, now.Add(24*time.Hour).Unix(), claims["exp"])
	require.NotEmpty(t, claims["jti"])
}

func TestCreator_Parse(t *testing.T) {
	creator := token.NewCreator(token.NewHMACSigner("test-secret"), 24*time.Hour)

	t.Run("rejects wrong secret", func(t *testing.T) {
		signed, err := creator.CreateAccessToken(testUser())
		require.NoError(t, err)

		other := token.NewCreator(token.NewHMACSigner("other-secret"), 24*time.Hour)
		_, err = other.Parse(signed)
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := creator.Parse("not-a-token")
		require.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		token.NowTimeFunc = func() time.Time { return now }
		defer func() { token.NowTimeFunc = time.Now }()

		signed, err := creator.CreateAccessToken(testUser())
		require.NoError(t, err)

		token.NowTimeFunc = func() time.Time { return now.Add(25 * time.Hour) }
		_, err = creator.Parse(signed)
		require.Error(t, err)
	})

	t.Run("nil user rejected at creation", func(t *testing.T) {
		_, err := creator.CreateAccessToken(nil)
		require.Error(t, err)
	})
}
