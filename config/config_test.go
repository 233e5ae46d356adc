package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the duration of the test, including any
// value inherited from the host environment.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	unsetenv(t, "JWT_SECRET")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoadConfig_EmptySecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	for _, key := range []string{"APP_PORT", "APP_MODE", "TOKEN_TTL_HOURS", "BCRYPT_COST", "CORS_ALLOW_ORIGIN"} {
		unsetenv(t, key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "debug", cfg.AppMode)
	assert.Equal(t, "k", cfg.JWTSecret)
	assert.Equal(t, 24, cfg.TokenTTLHours)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "another-secret")
	t.Setenv("APP_PORT", "9999")
	t.Setenv("APP_MODE", "release")
	t.Setenv("TOKEN_TTL_HOURS", "48")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.AppPort)
	assert.Equal(t, "release", cfg.AppMode)
	assert.Equal(t, "another-secret", cfg.JWTSecret)
	assert.Equal(t, 48, cfg.TokenTTLHours)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "https://example.com", cfg.CORSAllowOrigin)
}

func TestLoadConfig_BadIntFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("TOKEN_TTL_HOURS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.TokenTTLHours)
}
