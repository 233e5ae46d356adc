package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort         string
	AppMode         string
	JWTSecret       string
	TokenTTLHours   int
	BcryptCost      int
	CORSAllowOrigin string
}

// ErrMissingSecret is returned when JWT_SECRET is unset or empty. The secret
// has no default in any mode; a known fallback string would defeat token
// signing entirely.
var ErrMissingSecret = errors.New("JWT_SECRET must be set")

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		AppMode:         getEnv("APP_MODE", "debug"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenTTLHours:   getEnvAsInt("TOKEN_TTL_HOURS", 24),
		BcryptCost:      getEnvAsInt("BCRYPT_COST", 10),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
