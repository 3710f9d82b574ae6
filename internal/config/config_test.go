package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SKYFOLIO_DATABASE_DSN", "postgres://localhost:5432/skyfolio")
	t.Setenv("SKYFOLIO_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("SKYFOLIO_HTTP_PORT", "9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/skyfolio", cfg.Database.DSN)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "9090", cfg.HTTP.Port)

	// Defaults apply where env is unset.
	assert.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
}

func TestLoad_RequiresDSN(t *testing.T) {
	t.Setenv("SKYFOLIO_AUTH_JWT_SECRET", "s3cret")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.dsn")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("SKYFOLIO_DATABASE_DSN", "postgres://localhost/db")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}
