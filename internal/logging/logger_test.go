package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"pantry/internal/config"
)

func TestNewReleaseWritesFile(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	path := filepath.Join(t.TempDir(), "logs", "pantry.log")

	logger, err := New(&config.Config{LogFile: path, OTELServiceName: "pantry"})
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"hello"`)
	require.Contains(t, string(data), `"service":"pantry"`)
}

func TestNewDevelopment(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	logger, err := New(&config.Config{})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewLevel(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	path := filepath.Join(t.TempDir(), "pantry.log")

	logger, err := New(&config.Config{LogFile: path, LogLevel: "warn"})
	require.NoError(t, err)
	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "quiet")
	require.Contains(t, string(data), "loud")

	_, err = New(&config.Config{LogLevel: "shouty"})
	require.Error(t, err)
}
