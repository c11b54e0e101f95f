package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_CONNECTION", "postgres://localhost/goalfund")
	t.Setenv("RATE_LIMIT_WRITES", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := Load()

	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/goalfund", cfg.DBConnection)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
	assert.Equal(t, 5, cfg.RateLimitWrites)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.False(t, cfg.RateLimitEnabled)
	assert.False(t, cfg.TrustProxyHeaders)

	t.Setenv("TRUST_PROXY_HEADERS", "true")
	assert.True(t, Load().TrustProxyHeaders)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "nope")
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_DURATION", "soon")

	assert.Equal(t, 7, envInt("TEST_INT", 7))
	assert.True(t, envBool("TEST_BOOL", true))
	assert.Equal(t, time.Second, envDuration("TEST_DURATION", time.Second))
	assert.Equal(t, "fallback", envString("TEST_UNSET_STRING", "fallback"))

	t.Setenv("TEST_INT", "12")
	assert.Equal(t, 12, envInt("TEST_INT", 7))
}
