// Package cli provides the command-line interface for spawn.
package cli

import (
	"fmt"

	"github.com/runoshun/spawn/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupProcess = "process"
	groupSetup   = "setup"
)

// NewRootCommand creates the root command for spawn.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "spawn",
		Short: "Start programs with a literal argument vector",
		Long: `spawn starts a program with exactly the arguments given, without a shell.

The child inherits the terminal's standard streams, environment and working
directory. spawn returns as soon as the process has been created unless
--wait is given. Launches are recorded so they can be listed later.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "init" {
				return nil
			}

			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the commands that need the config
				c.Logger.Debug("config not loaded", "command", cmd.Name(), "error", err)
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			c.Logger.Debug("config loaded",
				"command", cmd.Name(),
				"presets", len(cfg.Presets),
				"warnings", len(cfg.Warnings),
				"state_dir", c.Config.StateDir,
			)
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupProcess, Title: "Process Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupProcess

	psCmd := newPsCommand(c)
	psCmd.GroupID = groupProcess

	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupProcess

	presetCmd := newPresetCommand(c)
	presetCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		runCmd,
		psCmd,
		historyCmd,
		presetCmd,
		configCmd,
	)

	return root
}
