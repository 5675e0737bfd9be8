package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/runoshun/spawn/internal/app"
	"github.com/runoshun/spawn/internal/domain"
	"github.com/runoshun/spawn/internal/usecase"
	"github.com/spf13/cobra"
)

// newPsCommand creates the ps command.
func newPsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "ps",
		Short: "List recorded processes that are still running",
		Long: `Display recorded launches whose process is still alive.

Output columns:
  PID, ELAPSED, PRESET, COMMAND

Only launches recorded in the history are considered. Liveness is checked
by process id alone, so a recorded pid that the system has since reused for
an unrelated process is also listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListRunningUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintln(w, newListStyles(w).Muted.Render("No running processes."))
				return nil
			}
			printRunning(w, out.Entries, c.Clock)
			return nil
		},
	}
}

// printRunning prints running entries as an aligned table.
func printRunning(w io.Writer, entries []usecase.HistoryEntry, clock domain.Clock) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "PID\tELAPSED\tPRESET\tCOMMAND")
	for _, e := range entries {
		preset := "-"
		if e.Record.Preset != "" {
			preset = e.Record.Preset
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			e.Record.PID,
			formatDuration(clock.Now().Sub(e.Record.StartedAt)),
			preset,
			e.Record.CommandLine(),
		)
	}
}

// formatDuration formats a duration in a human-readable short format.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}
