package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSettings(t, "MONGODB_URI: mongodb://localhost:27017\nBASE_DIR: /data/in\nSAVE_DIR: /data/out\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "bussepricing", cfg.Database)
	assert.Equal(t, filepath.Join("/data/in", "specialpricing.csv"), cfg.ContractPath())
	assert.Equal(t, filepath.Join("/data/in", "sales.for.period.csv"), cfg.SalesPath())
	assert.Equal(t, "/data/out", cfg.SaveDir)
}

func TestLoadDefaults(t *testing.T) {
	path := writeSettings(t, "MONGODB_URI: mongodb://localhost:27017\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.BaseDir)
	assert.NotEmpty(t, cfg.SaveDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingURI(t *testing.T) {
	path := writeSettings(t, "BASE_DIR: /data/in\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGODB_URI")
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := Load(path)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{path}, notFound.Candidates)
}
