package config

import "time"

type TokenConfig interface {
	GetTokenSecret() string
	GetTokenExpiry() time.Duration
}

type Token struct{}

var _ TokenConfig = Token{}

func (Token) GetTokenSecret() string {
	return GetEnv("TOKEN_SECRET", "your-secret-key-change-in-production")
}

// GetTokenExpiry is the validity window encoded into issued tokens.
func (Token) GetTokenExpiry() time.Duration {
	expiry, err := time.ParseDuration(GetEnv("TOKEN_EXPIRY", "24h"))
	if err != nil {
		return 24 * time.Hour
	}
	return expiry
}
