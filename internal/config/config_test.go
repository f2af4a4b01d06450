package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORE_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "9090"
store_driver: minio
timezone: Asia/Jakarta
database:
  host: file-host
  max_open_conns: 3
minio:
  endpoint: minio:9000
  bucket: employees
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("MINIO_BUCKET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreDriverMinIO, cfg.StoreDriver)
	assert.Equal(t, "file-host", cfg.Database.Host)
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
	// Defaults survive for keys the file does not mention.
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "minio:9000", cfg.MinIO.Endpoint)
	assert.Equal(t, "from-env", cfg.MinIO.Bucket)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		assert.ErrorContains(t, err, "config: read file")
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0o600))
		t.Setenv("CONFIG_FILE", path)
		_, err := Load()
		assert.ErrorContains(t, err, "config: parse yaml")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := Load()
		assert.ErrorContains(t, err, `unsupported store driver "mongo"`)
	})

	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("APP_TIMEZONE", "Nowhere/Void")
		_, err := Load()
		assert.ErrorContains(t, err, "timezone")
	})
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
