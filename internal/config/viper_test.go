package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(old)
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CAMT_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("CAMT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CAMT_TEST_MISSING_KEY", "fallback"))
}

func TestConfigureLogging_LevelFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	t.Setenv("LOG_LEVEL", "")
	logger = ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestInitializeConfig_Defaults(t *testing.T) {
	// Run from a temp dir so a developer's config.yaml is not picked up.
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "camt-import.db", config.Database.Path)
	assert.Equal(t, "", config.Import.Directory)
	assert.False(t, config.Import.DeleteAfterImport)
}

func TestInitializeConfig_EnvironmentOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CAMT_IMPORT_DIRECTORY", "/var/spool/camt")
	t.Setenv("CAMT_IMPORT_DELETE_AFTER_IMPORT", "true")
	t.Setenv("CAMT_LOG_LEVEL", "debug")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "/var/spool/camt", config.Import.Directory)
	assert.True(t, config.Import.DeleteAfterImport)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestInitializeConfig_RejectsUnknownLogLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CAMT_LOG_LEVEL", "verbose")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
