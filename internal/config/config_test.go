package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8002", cfg.Address())
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "EMP001", cfg.Assistant.DefaultEmployeeID)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartoffice.yaml")
	content := `
server:
  port: 9090
database:
  path: ./data/chat.db
cors:
  allow_origins:
    - https://intranet.techcorp.com
log:
  level: debug
  format: console
assistant:
  default_employee_id: EMP003
metrics:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "./data/chat.db", cfg.Database.Path)
	assert.Equal(t, []string{"https://intranet.techcorp.com"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "EMP003", cfg.Assistant.DefaultEmployeeID)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SMARTOFFICE_SERVER_PORT", "7000")
	t.Setenv("SMARTOFFICE_ASSISTANT_DEFAULT_EMPLOYEE_ID", "EMP002")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "EMP002", cfg.Assistant.DefaultEmployeeID)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 70000\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
