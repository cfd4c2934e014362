package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"JWT_SECRET_KEY", "SERVER_PORT", "ORGANIZER_PASSWORD_HASH", "PHASE_TRANSITION_DELAY",
		"DRAW_SEED", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
		"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "secret", cfg.JWTSecretKey)
	assert.Equal(t, 2*time.Second, cfg.PhaseTransitionDelay)
	assert.Nil(t, cfg.DrawSeed)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.R2.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PHASE_TRANSITION_DELAY", "500ms")
	t.Setenv("DRAW_SEED", "1234")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 500*time.Millisecond, cfg.PhaseTransitionDelay)
	require.NotNil(t, cfg.DrawSeed)
	assert.Equal(t, int64(1234), *cfg.DrawSeed)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing jwt secret", env: map[string]string{}},
		{name: "port out of range", env: map[string]string{"JWT_SECRET_KEY": "s", "SERVER_PORT": "70000"}},
		{name: "port not a number", env: map[string]string{"JWT_SECRET_KEY": "s", "SERVER_PORT": "http"}},
		{name: "bad delay", env: map[string]string{"JWT_SECRET_KEY": "s", "PHASE_TRANSITION_DELAY": "soon"}},
		{name: "negative delay", env: map[string]string{"JWT_SECRET_KEY": "s", "PHASE_TRANSITION_DELAY": "-1s"}},
		{name: "bad seed", env: map[string]string{"JWT_SECRET_KEY": "s", "DRAW_SEED": "abc"}},
		{name: "bad log level", env: map[string]string{"JWT_SECRET_KEY": "s", "LOG_LEVEL": "loud"}},
		{name: "partial r2", env: map[string]string{"JWT_SECRET_KEY": "s", "R2_BUCKET_NAME": "reports"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadFullR2(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "reports")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.R2.Enabled())
	assert.Equal(t, "reports", cfg.R2.BucketName)
}
