package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/spawn/internal/app"
	"github.com/runoshun/spawn/internal/domain"
	"github.com/runoshun/spawn/internal/usecase"
	"github.com/spf13/cobra"
)

// ExitCodeError reports that a waited process did not exit successfully.
// main exits with Code without printing anything else.
type ExitCodeError struct {
	Status *domain.ExitStatus
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("pid %d: %s", e.Status.Pid, e.Status.State)
}

// Code returns the exit code to propagate.
// A process killed by a signal maps to 128+signal when known, otherwise 1.
func (e *ExitCodeError) Code() int {
	if e.Status.Exited && e.Status.Code > 0 {
		return e.Status.Code
	}
	if e.Status.Signal > 0 {
		return 128 + e.Status.Signal
	}
	return 1
}

// newRunCommand creates the run command for launching a process.
func newRunCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Preset string
		Wait   bool
	}

	cmd := &cobra.Command{
		Use:   "run [flags] [--] <command> [args...]",
		Short: "Start a program",
		Long: `Start a program with the given arguments.

The arguments are passed to the program exactly as given. No shell is
involved, so quotes, globs, variables and operators such as ';' or '|'
reach the program literally.

With --preset, the command and leading arguments come from the named preset
in the configuration; any arguments given are appended after them.

The process id is printed to stderr so the child's stdout stays clean.

Examples:
  # Start a long-running program and return immediately
  spawn run sleep 30

  # Arguments are not interpreted
  spawn run -- echo '$HOME' 'a;b'

  # Run a preset and wait, exiting with the child's exit code
  spawn run --preset build --wait`,
		Args: func(_ *cobra.Command, args []string) error {
			if opts.Preset == "" && len(args) == 0 {
				return errors.New("requires a command or --preset")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stderr := cmd.ErrOrStderr()
			in := usecase.SpawnProcessInput{
				Preset: opts.Preset,
				Wait:   opts.Wait,
				Started: func(pid int, argv []string) {
					_, _ = fmt.Fprintf(stderr, "Started pid %d: %s\n", pid, strings.Join(argv, " "))
				},
			}
			if opts.Preset == "" {
				in.Command = args[0]
				in.Args = args[1:]
			} else {
				in.Args = args
			}

			uc := c.SpawnProcessUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			if out.Exit != nil {
				c.Logger.Debug("process exited",
					"pid", out.PID,
					"state", out.Exit.State,
					"duration", out.Exit.Duration,
				)
			}
			if out.Exit != nil && !out.Exit.Success() {
				return &ExitCodeError{Status: out.Exit}
			}
			return nil
		},
	}

	// Everything after the command belongs to the child.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "Run a preset from the configuration")
	cmd.Flags().BoolVarP(&opts.Wait, "wait", "w", false, "Wait for the process and exit with its exit code")

	return cmd
}
