package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Process Commands:")
	assert.Contains(t, out.String(), "run")
	assert.Contains(t, out.String(), "history")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	e := newTestEnv()
	e.loader.Config.Warnings = []string{"unknown key: colour"}

	_, stderr, err := e.run(t, "preset", "list")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key: colour")
}

func TestNewRootCommand_LogsConfigDiagnostics(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		e := newTestEnv()
		e.loader.Config.Warnings = []string{"unknown section: colour"}

		_, _, err := e.run(t, "preset", "list")

		require.NoError(t, err)
		assert.Contains(t, e.diag.String(), "config loaded")
		assert.Contains(t, e.diag.String(), "warnings=1")
		assert.Contains(t, e.diag.String(), "state_dir=/state")
	})

	t.Run("load error", func(t *testing.T) {
		e := newTestEnv()
		e.loader.LoadErr = errors.New("parse .spawn.toml: bad")

		_, _, err := e.run(t, "history")

		require.NoError(t, err)
		assert.Contains(t, e.diag.String(), "config not loaded")
		assert.Contains(t, e.diag.String(), "parse .spawn.toml: bad")
	})
}
