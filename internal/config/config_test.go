package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/network")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/network", cfg.DBDSN)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/network")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SITE_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("KAFKA_TOPIC", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "http://localhost:3000", cfg.SiteURL)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "job-alert-emails", cfg.KafkaTopic)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DSN", "postgres://localhost:5432/network")
	t.Setenv("JWT_SECRET", "")

	_, err = Load()
	assert.Error(t, err)
}
