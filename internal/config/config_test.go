package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "missing")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8095, cfg.Server.Port)
	assert.Equal(t, 10000, cfg.Batch.MaxCount)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./data/devid.db", cfg.Database.FilePath)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "./data/exports", cfg.Storage.Local.BasePath)
	assert.Equal(t, "devid/", cfg.Storage.S3.Prefix)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFrom_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9000
batch:
  max_count: 250
storage:
  driver: s3
  s3:
    bucket: devid-exports
    use_path_style: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "devid.yaml"), []byte(yaml), 0o644))

	t.Setenv("DEVID_LOG_LEVEL", "debug")
	t.Setenv("PORT", "9100")

	cfg, err := LoadFrom(dir, "devid")
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 250, cfg.Batch.MaxCount)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, "devid-exports", cfg.Storage.S3.Bucket)
	assert.True(t, cfg.Storage.S3.UsePathStyle)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_DatabaseEnv(t *testing.T) {
	t.Setenv("DEVID_DATABASE_DRIVER", "postgres")
	t.Setenv("DEVID_DATABASE_HOST", "db.internal")
	t.Setenv("DEVID_DATABASE_USER", "svc")
	t.Setenv("DEVID_DATABASE_PORT", "6543")
	t.Setenv("DB_NAME", "ledger")
	t.Setenv("DEVID_STORAGE_S3_BUCKET", "exports")
	t.Setenv("DEVID_STORAGE_S3_ENDPOINT", "http://minio:9000")

	cfg, err := LoadFrom(t.TempDir(), "missing")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "svc", cfg.Database.User)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "ledger", cfg.Database.DBName)
	assert.Equal(t, "exports", cfg.Storage.S3.Bucket)
	assert.Equal(t, "http://minio:9000", cfg.Storage.S3.Endpoint)
}
