package cli

import (
	"testing"

	"github.com/runoshun/spawn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShowCommand(t *testing.T) {
	t.Run("shows sources and effective config", func(t *testing.T) {
		e := newTestEnv()
		e.manager.GlobalConfigInfo.Exists = true
		e.loader.Config.Presets["sleeper"] = domain.Preset{Command: "sleep", Args: []string{"30"}}

		out, _, err := e.run(t, "config", "show")

		require.NoError(t, err)
		assert.Contains(t, out, "[Loaded from]")
		assert.Contains(t, out, "- /home/test/.config/spawn/config.toml\n")
		assert.Contains(t, out, "- /work/.spawn.toml (not found)")
		assert.Contains(t, out, "[Effective Config]")
		assert.Contains(t, out, "[presets.sleeper]")
		assert.Regexp(t, `command = ['"]sleep['"]`, out)
	})

	t.Run("ignore project", func(t *testing.T) {
		e := newTestEnv()

		out, _, err := e.run(t, "config", "show", "--ignore-project")

		require.NoError(t, err)
		assert.NotContains(t, out, ".spawn.toml")
		assert.True(t, e.loader.LastOptions.IgnoreProject)
	})
}

func TestConfigInitCommand(t *testing.T) {
	t.Run("project", func(t *testing.T) {
		e := newTestEnv()

		out, _, err := e.run(t, "config", "init")

		require.NoError(t, err)
		assert.Contains(t, out, "Created config file: /work/.spawn.toml")
		assert.True(t, e.manager.InitProjectCalled)
	})

	t.Run("global force", func(t *testing.T) {
		e := newTestEnv()

		_, _, err := e.run(t, "config", "init", "--global", "--force")

		require.NoError(t, err)
		assert.True(t, e.manager.InitGlobalCalled)
		assert.True(t, e.manager.LastForce)
	})

	t.Run("exists", func(t *testing.T) {
		e := newTestEnv()
		e.manager.InitProjectErr = domain.ErrConfigExists

		_, _, err := e.run(t, "config", "init")

		require.ErrorIs(t, err, domain.ErrConfigExists)
	})
}

func TestPresetListCommand(t *testing.T) {
	t.Run("lists presets", func(t *testing.T) {
		e := newTestEnv()
		e.loader.Config.Presets["build"] = domain.Preset{Command: "make", Args: []string{"all"}, Description: "build it"}

		out, _, err := e.run(t, "preset", "list")

		require.NoError(t, err)
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "build")
		assert.Contains(t, out, "make all")
		assert.Contains(t, out, "build it")
	})

	t.Run("empty", func(t *testing.T) {
		e := newTestEnv()

		out, _, err := e.run(t, "preset", "ls")

		require.NoError(t, err)
		assert.Contains(t, out, "No presets configured.")
	})
}
