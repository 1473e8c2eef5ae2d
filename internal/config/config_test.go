package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, ":8370", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "file", cfg.Storage)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "light", cfg.DefaultTheme)
	assert.Equal(t, 5, cfg.UndoWindowSeconds)
	assert.Equal(t, 60, cfg.DayCheckIntervalSeconds)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routine_config.yml")
	body := "addr: \":9000\"\nstorage: sqlite\ndefault_locale: ru\nundo_window_seconds: 8\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, "ru", cfg.DefaultLocale)
	assert.Equal(t, 8, cfg.UndoWindowSeconds)
	// Untouched fields still get defaults.
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routine_config.yml")
	require.NoError(t, os.WriteFile(path, []byte("storage: file\n"), 0o644))
	t.Setenv("ROUTINE_STORAGE", "sqlite")
	t.Setenv("ROUTINE_UNDO_WINDOW_SECONDS", "12")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, 12, cfg.UndoWindowSeconds)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routine_config.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [broken\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
