package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "memory", cfg.RateLimit.Backend)
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("EVENTS_ENABLED", "true")
	t.Setenv("SERVER_WRITE_TIMEOUT", "3s")
	t.Setenv("ENV", "test")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute, "invalid ints fall back to the default")
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Server.IsTest())
}
