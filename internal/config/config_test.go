package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(1), cfg.Engine.ToleranceMW)
	assert.Equal(t, 1, cfg.Engine.Workers)
	assert.Equal(t, 937, cfg.Engine.ExpectedRows)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CAPACIDAD_ENGINE_WORKERS", "4")
	t.Setenv("CAPACIDAD_LOGGING_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Untouched settings keep their defaults.
	assert.Equal(t, int64(1), cfg.Engine.ToleranceMW)
	assert.Equal(t, 937, cfg.Engine.ExpectedRows)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capacidad.yml")
	body := "engine:\n  tolerance_mw: 5\n  workers: 2\n  expected_rows: 900\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("CAPACIDAD_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Engine.ToleranceMW)
	assert.Equal(t, 2, cfg.Engine.Workers)
	assert.Equal(t, 900, cfg.Engine.ExpectedRows)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capacidad.yml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  workers: 2\n"), 0o644))
	t.Setenv("CAPACIDAD_CONFIG_FILE", path)
	t.Setenv("CAPACIDAD_ENGINE_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Engine.Workers)
}

func TestLoadMissingFileFails(t *testing.T) {
	t.Setenv("CAPACIDAD_CONFIG_FILE", filepath.Join(t.TempDir(), "no-such.yml"))
	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidValuesFail(t *testing.T) {
	t.Setenv("CAPACIDAD_ENGINE_WORKERS", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidateRejectsBadLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"
	require.Error(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("suppressed")
	assert.Empty(t, buf.String())

	logger.Warn("emitted")
	assert.Contains(t, buf.String(), `"emitted"`)
	assert.Contains(t, buf.String(), `"WARN"`)
}
