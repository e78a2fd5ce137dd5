package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.App.HTTPPort)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 10, cfg.App.ShutdownTimeoutSeconds)
	assert.Equal(t, 3600, cfg.Auth.ExpirationSeconds)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "employee_service", cfg.DB.Name)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "5001")
	t.Setenv("JWT_EXPIRATION_SECONDS", "120")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.App.HTTPPort)
	assert.Equal(t, 120, cfg.Auth.ExpirationSeconds)
	assert.True(t, cfg.Redis.Enabled)
}

func TestValidate_RequiresSecret(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{HTTPPort: "4000"},
		Auth: AuthConfig{ExpirationSeconds: 3600},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestValidate_RejectsShortSecret(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{HTTPPort: "4000"},
		Auth: AuthConfig{JWTSecret: "too-short", ExpirationSeconds: 3600},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestValidate_RejectsNonPositiveExpiration(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{HTTPPort: "4000"},
		Auth: AuthConfig{JWTSecret: strings.Repeat("s", 32), ExpirationSeconds: 0},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_EXPIRATION_SECONDS")
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{HTTPPort: "4000"},
		Auth: AuthConfig{JWTSecret: strings.Repeat("s", 32), ExpirationSeconds: 3600},
	}

	assert.NoError(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "svc",
		Password: "pw",
		Name:     "employees",
		SSLMode:  "disable",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "dbname=employees")
}
