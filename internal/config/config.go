package config

import "github.com/joho/godotenv"

type Config interface {
	EnvConfig
	CorsConfig
	TokenConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetDataFolder() string
	GetServerURL() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Token
}

func New() Config {
	// Optional .env in the working directory, real env vars win
	_ = godotenv.Load()
	return mainConfig{}
}
