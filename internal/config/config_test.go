package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		JWTSecret:      "a-reasonably-long-development-secret",
		JWTExpiryHours: 168,
		Port:           "8480",
		DBPassword:     "password",
		Env:            "development",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("Valid Development Config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("Missing Port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing JWT Secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Non-Positive Expiry", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTExpiryHours = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production Rejects Default Secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		cfg.DBPassword = strings.Repeat("x", 20)
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production Rejects Short Secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		cfg.DBPassword = strings.Repeat("x", 20)
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production Rejects Weak DB Password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = strings.Repeat("s", 40)
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production Accepts Strong Settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = strings.Repeat("s", 40)
		cfg.DBPassword = strings.Repeat("x", 20)
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}

func TestIsProduction(t *testing.T) {
	t.Parallel()
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: ""}).IsProduction())
}
