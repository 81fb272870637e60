package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "/data/motorcheck.db", cfg.DBPath)
	assert.Equal(t, "/data/photos", cfg.PhotoPath)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Equal(t, "", cfg.JWTSecret)
	assert.Equal(t, 12, cfg.JWTExpiryHrs)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("JWT_SECRET", "shhh")
	t.Setenv("JWT_EXPIRY_HOURS", "48")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "shhh", cfg.JWTSecret)
	assert.Equal(t, 48, cfg.JWTExpiryHrs)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")

	cfg := Load()
	assert.Equal(t, 12, cfg.JWTExpiryHrs)
}
