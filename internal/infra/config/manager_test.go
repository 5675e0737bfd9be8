package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/spawn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetProjectConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		projectDir := t.TempDir()
		content := "[log]\nlevel = \"debug\"\n"
		require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte(content), 0o644))

		info := NewManagerWithGlobalDir(projectDir, "").GetProjectConfigInfo()

		assert.Equal(t, domain.ProjectConfigPath(projectDir), info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		projectDir := t.TempDir()

		info := NewManagerWithGlobalDir(projectDir, "").GetProjectConfigInfo()

		assert.Equal(t, domain.ProjectConfigPath(projectDir), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("no global dir", func(t *testing.T) {
		info := NewManagerWithGlobalDir(t.TempDir(), "").GetGlobalConfigInfo()
		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})

	t.Run("existing file", func(t *testing.T) {
		globalDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte("x"), 0o644))

		info := NewManagerWithGlobalDir("", globalDir).GetGlobalConfigInfo()
		assert.True(t, info.Exists)
		assert.Equal(t, "x", info.Content)
	})
}

func TestManager_InitProjectConfig(t *testing.T) {
	projectDir := t.TempDir()
	manager := NewManagerWithGlobalDir(projectDir, "")

	path, err := manager.InitProjectConfig(false)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectConfigPath(projectDir), path)

	// The written template must load cleanly
	cfg, err := NewLoaderWithGlobalDir(projectDir, "").Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, "info", cfg.Log.Level)

	_, err = manager.InitProjectConfig(false)
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	_, err = manager.InitProjectConfig(true)
	assert.NoError(t, err)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates directory and file", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "spawn")
		manager := NewManagerWithGlobalDir("", globalDir)

		path, err := manager.InitGlobalConfig(false)
		require.NoError(t, err)
		assert.FileExists(t, path)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("no global dir", func(t *testing.T) {
		_, err := NewManagerWithGlobalDir("", "").InitGlobalConfig(false)
		assert.ErrorIs(t, err, domain.ErrNoGlobalConfigDir)
	})
}
