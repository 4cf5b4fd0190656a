package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "vitrina.db", cfg.DatabasePath)
	assert.Equal(t, []byte("test-secret"), cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.AuthRateLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("DATABASE_PATH", "/data/crm.db")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("REFRESH_TOKEN_TTL", "72h")
	t.Setenv("AUTH_RATE_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/data/crm.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 72*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 3, cfg.AuthRateLimit)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_BadValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ACCESS_TOKEN_TTL", "soon")
	t.Setenv("AUTH_RATE_LIMIT", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 10, cfg.AuthRateLimit)
}

func TestConfig_CheckDatabase(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		wantOK bool
	}{
		{name: "valid path", path: "vitrina.db", wantOK: true},
		{name: "empty path", path: "", wantOK: false},
		{name: "placeholder path", path: "your-database.db", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{DatabasePath: tt.path}
			ok, message := cfg.CheckDatabase()
			assert.Equal(t, tt.wantOK, ok)
			assert.NotEmpty(t, message)
		})
	}
}
