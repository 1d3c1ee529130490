package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-logger/internal/logger"
	"workout-logger/internal/storage"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(env(nil))
	require.NoError(t, err)

	assert.Equal(t, storage.BackendPreferences, cfg.Store)
	assert.Equal(t, "workouts", cfg.StorageKey)
	assert.Equal(t, logger.InfoLevel, cfg.Level())
	assert.False(t, cfg.JSONLogs)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg, err := load(env(map[string]string{
		"LOG_LEVEL":           "warn",
		"WORKOUT_JSON_LOGS":   "true",
		"WORKOUT_STORE":       "FILE",
		"WORKOUT_DATA_DIR":    dir,
		"WORKOUT_STORAGE_KEY": "lifts",
	}))
	require.NoError(t, err)

	assert.Equal(t, logger.WarnLevel, cfg.Level())
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, storage.BackendFile, cfg.Store)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "lifts", cfg.StorageKey)
}

func TestLoad_DebugFlag(t *testing.T) {
	cfg, err := load(env(map[string]string{"DEBUG": "1"}))
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, cfg.Level())

	cfg, err = load(env(map[string]string{"DEBUG": "1", "LOG_LEVEL": "error"}))
	require.NoError(t, err)
	assert.Equal(t, logger.ErrorLevel, cfg.Level())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store: memory
storage_key: from-file
window_width: 800
window_height: 900
log_level: debug
`), 0o644))

	cfg, err := load(env(map[string]string{
		"WORKOUT_CONFIG":      path,
		"WORKOUT_STORAGE_KEY": "from-env",
	}))
	require.NoError(t, err)

	assert.Equal(t, storage.BackendMemory, cfg.Store)
	assert.Equal(t, "from-env", cfg.StorageKey)
	assert.Equal(t, float32(800), cfg.WindowWidth)
	assert.Equal(t, logger.DebugLevel, cfg.Level())
}

func TestLoad_Errors(t *testing.T) {
	_, err := load(env(map[string]string{"WORKOUT_STORE": "redis"}))
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)

	_, err = load(env(map[string]string{"WORKOUT_CONFIG": filepath.Join(t.TempDir(), "missing.yaml")}))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("store: [unclosed"), 0o644))
	_, err = load(env(map[string]string{"WORKOUT_CONFIG": bad}))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty-key.yaml")
	require.NoError(t, os.WriteFile(empty, []byte(`storage_key: "  "`), 0o644))
	_, err = load(env(map[string]string{"WORKOUT_CONFIG": empty}))
	assert.Error(t, err)
}
