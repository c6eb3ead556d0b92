package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haukuraj/sqlverk/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SQLVERK_DATABASE_HOST", "localhost")
	t.Setenv("SQLVERK_DATABASE_PORT", "5432")
	t.Setenv("SQLVERK_DATABASE_USER", "sportsdb")
	t.Setenv("SQLVERK_DATABASE_PASSWORD", "s3cret")
	t.Setenv("SQLVERK_DATABASE_NAME", "sportsresults")
	t.Setenv("SQLVERK_DATABASE_SSLMODE", "disable")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "sportsdb", cfg.Database.User)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "sportsresults", cfg.Database.Name)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, []string{"editor", "theone"}, cfg.Gateway.WriterRoles)
}

func TestLoadWriterRolesFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SQLVERK_GATEWAY_WRITERROLES", "editor,theone,scorekeeper")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"editor", "theone", "scorekeeper"}, cfg.Gateway.WriterRoles)
}

func TestLoadEnvOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SQLVERK_PRIMARY_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SQLVERK_DATABASE_HOST", "")

	_, err := config.Load()
	assert.Error(t, err)
}
