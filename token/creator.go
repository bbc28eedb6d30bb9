package token

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/instamd/portal-auth/directory"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Creator handles access token creation for the authentication service.
// Issued tokens are opaque to the portal client, which only stores and
// forwards them.
type Creator struct {
	signer Signer
	expiry time.Duration
}

// NewCreator creates a token creator with the given signer and validity window
func NewCreator(signer Signer, expiry time.Duration) *Creator {
	return &Creator{
		signer: signer,
		expiry: expiry,
	}
}

// CreateAccessToken creates a signed token encoding the user's identity claims
func (c *Creator) CreateAccessToken(user *directory.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user is required")
	}

	claims := jwtlib.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   string(user.Role),
		"iat":    int64(NowTimeFunc().Unix()),
		"exp":    int64(NowTimeFunc().Add(c.expiry).Unix()),
		"jti":    uuid.New().String(),
	}

	return c.signer.Sign(claims)
}

// Parse verifies a token's signature and returns its claims. The portal
// client never calls this; it exists for diagnostics and tests.
func (c *Creator) Parse(tokenString string) (jwtlib.MapClaims, error) {
	token, err := jwtlib.Parse(tokenString, c.signer.GetVerificationKey,
		jwtlib.WithValidMethods([]string{c.signer.GetSigningMethod().Alg()}),
		jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
