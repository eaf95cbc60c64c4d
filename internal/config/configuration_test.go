package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfiguration_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mscategory.yaml")
	content := `
server:
  port: 9090
  log:
    level: debug
    format: json
  health:
    schedule: "@every 30s"
database:
  driver: sqlite
  path: /tmp/categories.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfiguration(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogConfig.Level)
	assert.Equal(t, "json", cfg.Server.LogConfig.Format)
	assert.Equal(t, "stdout", cfg.Server.LogConfig.Output)
	assert.Equal(t, "@every 30s", cfg.Server.HealthConfig.Schedule)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/categories.db", cfg.Database.Path)
}

func TestLoadConfiguration_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Server.RequestConfig.SizeLimit)
	assert.Equal(t, "info", cfg.Server.LogConfig.Level)
	assert.Equal(t, "@every 1m", cfg.Server.HealthConfig.Schedule)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [port"), 0o600))

	_, err := LoadConfiguration(path)

	assert.Error(t, err)
}

func TestLoadDatabaseEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "categories")
	t.Setenv("DB_TZ", "UTC")
	unsetenv(t, "DB_SSLMODE")

	env, err := LoadDatabaseEnvironment(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	assert.Equal(t,
		"host=localhost user=postgres password=secret dbname=categories port=5432 sslmode=disable TimeZone=UTC",
		env.DSN())
}

func TestLoadDatabaseEnvironment_MissingVariable(t *testing.T) {
	unsetenv(t, "DB_HOST")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "categories")
	t.Setenv("DB_TZ", "UTC")

	_, err := LoadDatabaseEnvironment(filepath.Join(t.TempDir(), "absent.env"))

	assert.Error(t, err)
}
