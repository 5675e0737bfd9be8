package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/runoshun/spawn/internal/app"
	"github.com/runoshun/spawn/internal/domain"
	"github.com/spf13/cobra"
)

// newPresetCommand creates the preset command.
func newPresetCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage launch presets",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newPresetListCommand(c))

	return cmd
}

// newPresetListCommand creates the preset list subcommand.
func newPresetListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured presets",
		Long: `List presets from the merged configuration.

Presets are defined in [presets.<name>] sections:

  [presets.sleeper]
  command = "sleep"
  args = ["30"]
  description = "sleep for a while"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListPresetsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Presets) == 0 {
				_, _ = fmt.Fprintln(w, "No presets configured.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()

			_, _ = fmt.Fprintln(tw, "NAME\tCOMMAND\tDESCRIPTION")
			for _, p := range out.Presets {
				desc := "-"
				if p.Preset.Description != "" {
					desc = p.Preset.Description
				}
				rec := domain.LaunchRecord{Argv: domain.NewCommand(p.Preset.Command, p.Preset.Args).Argv()}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, rec.CommandLine(), desc)
			}
			return nil
		},
	}
}
