package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty numeric and boolean values fall back to their defaults.
	for _, k := range []string{"ACCESS_TOKEN_EXPIRE_MINUTES", "REFRESH_TOKEN_EXPIRE_DAYS", "LOGIN_RATE_LIMIT_PER_MINUTE", "SEED_DEMO_USERS", "TRUST_PROXY_HEADERS"} {
		t.Setenv(k, "")
	}
	t.Setenv("BASIC_AUTH_USERNAME", "admin")
	t.Setenv("API_PORT", "8080")
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", defaultJWTSecret)
	t.Setenv("JWT_ALGORITHM", "hs256")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "admin", cfg.BasicAuthUsername)
	assert.Equal(t, 20, cfg.LoginRateLimitPerMinute)
	assert.True(t, cfg.SeedDemoUsers)
	assert.False(t, cfg.TrustProxyHeaders)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("REFRESH_TOKEN_EXPIRE_DAYS", "1")
	t.Setenv("SEED_DEMO_USERS", "false")
	t.Setenv("TRUST_PROXY_HEADERS", "true")
	t.Setenv("LOGIN_RATE_LIMIT_BURST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.APIPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []byte("prod-secret"), cfg.JWTKey)
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
	assert.False(t, cfg.SeedDemoUsers)
	assert.True(t, cfg.TrustProxyHeaders)
	assert.Equal(t, 5, cfg.LoginRateLimitBurst, "unparsable ints fall back to the default")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"API_PORT": "http"}},
		{"empty secret", map[string]string{"JWT_SECRET": ""}},
		{"rsa algorithm", map[string]string{"JWT_ALGORITHM": "RS256"}},
		{"zero access ttl", map[string]string{"ACCESS_TOKEN_EXPIRE_MINUTES": "0"}},
		{"default secret in production", map[string]string{"APP_ENV": "production", "JWT_SECRET": defaultJWTSecret}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("API_PORT", "8080")
			t.Setenv("APP_ENV", "development")
			t.Setenv("JWT_SECRET", "test-secret")
			t.Setenv("JWT_ALGORITHM", "HS256")
			t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
