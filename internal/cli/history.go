package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/runoshun/spawn/internal/app"
	"github.com/runoshun/spawn/internal/usecase"
	"github.com/spf13/cobra"
)

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Limit int
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded launches",
		Long: `Display recorded launches, newest first.

Output columns:
  PID, STARTED, PRESET, COMMAND, STATE

STATE is checked at display time: running, gone, or unknown when the
process cannot be inspected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListHistoryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListHistoryInput{
				Limit: opts.Limit,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintln(w, "No launches recorded.")
				return nil
			}
			printHistory(w, out.Entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Show at most N entries (0 = all)")

	cmd.AddCommand(newHistoryClearCommand(c))

	return cmd
}

// newHistoryClearCommand creates the history clear subcommand.
func newHistoryClearCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded launches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.ClearHistoryUseCase().Execute(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

// printHistory prints history entries as an aligned table.
// STATE is the last column so styling does not disturb alignment.
func printHistory(w io.Writer, entries []usecase.HistoryEntry) {
	styles := newListStyles(w)
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "PID\tSTARTED\tPRESET\tCOMMAND\tSTATE")
	for _, e := range entries {
		preset := "-"
		if e.Record.Preset != "" {
			preset = e.Record.Preset
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			e.Record.PID,
			e.Record.StartedAt.Local().Format(time.DateTime),
			preset,
			e.Record.CommandLine(),
			styles.state(e.State),
		)
	}
}
