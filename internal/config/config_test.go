package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "64K", cfg.Server.BodyLimit)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.NotEmpty(t, cfg.Identity.UserID)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: ":9090"
identity:
  user_id: file_user_02021998
  email: file@tokensort.dev
  roll_number: FILE001
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "file_user_02021998", cfg.Identity.UserID)
	assert.Equal(t, "file@tokensort.dev", cfg.Identity.Email)
	assert.Equal(t, "FILE001", cfg.Identity.RollNumber)
	// untouched sections keep their defaults
	assert.Equal(t, "64K", cfg.Server.BodyLimit)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TOKENSORT_SERVER__PORT", ":7070")
	t.Setenv("TOKENSORT_LOG__LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}
