package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_DSN", "ADMIN_PASSWORD", "JWT_SECRET", "APP_ENV", "SEED_ON_START"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultAdminPassword, cfg.AdminPassword)
	assert.Equal(t, cfg.AdminPassword, cfg.JWTSecret)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.SeedOnStart)
	assert.Contains(t, cfg.DatabaseDSN, "workwithme")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("JWT_SECRET", "signing-key")
	t.Setenv("SEED_ON_START", "true")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
	assert.Equal(t, "signing-key", cfg.JWTSecret)
	assert.True(t, cfg.SeedOnStart)
}

func TestParseBoolInvalid(t *testing.T) {
	t.Setenv("SEED_ON_START", "banana")
	assert.True(t, ParseBool("SEED_ON_START", true))
	assert.False(t, ParseBool("SEED_ON_START", false))
}
