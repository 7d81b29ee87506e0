package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.False(t, cfg.MockAPI)
	assert.Empty(t, cfg.Session.File)
}

func TestLoad_YamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: https://api.mapadengue.example
  timeout: 5s
  key: file-key
session:
  file: /var/lib/mapadengue/session.db
server:
  port: 9000
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.mapadengue.example", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "file-key", cfg.API.Key)
	assert.Equal(t, "/var/lib/mapadengue/session.db", cfg.Session.File)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: https://file.example
`), 0o600))

	t.Setenv("MAPADENGUE_API_BASE_URL", "https://env.example")
	t.Setenv("MAPADENGUE_MOCK_API", "true")
	t.Setenv("MAPADENGUE_API_KEY", "env-key")
	t.Setenv("MAPADENGUE_SESSION_FILE", "/tmp/session.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.API.BaseURL)
	assert.True(t, cfg.MockAPI)
	assert.Equal(t, "env-key", cfg.API.Key)
	assert.Equal(t, "/tmp/session.db", cfg.Session.File)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
