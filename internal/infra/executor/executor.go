// Package executor launches OS processes.
package executor

import (
	"errors"
	"os"
	"os/exec"
	"slices"
	"time"

	"github.com/runoshun/spawn/internal/domain"
)

// Spawn starts command with args and returns as soon as the process exists.
//
// The argument vector is command followed by args, passed to the OS as is:
// no shell is involved. The child inherits the caller's standard streams,
// environment and working directory. A failure to create the process is
// returned unchanged and no process is left behind.
func Spawn(command string, args []string) (*Process, error) {
	// #nosec G204 - argv is handed to the OS literally, never to a shell
	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Process{cmd: cmd, started: time.Now()}, nil
}

// SpawnValues converts command and args to text and calls Spawn.
// A value without a textual form fails with domain.ErrNotTextual before
// anything is started.
func SpawnValues(command any, args ...any) (*Process, error) {
	argv, err := domain.Argv(command, args...)
	if err != nil {
		return nil, err
	}
	return Spawn(argv[0], argv[1:])
}

// Process is a handle to a started process. It is owned by the caller.
type Process struct {
	cmd     *exec.Cmd
	started time.Time
}

var _ domain.Process = (*Process)(nil)

// Pid returns the OS process id.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Argv returns a copy of the argument vector.
func (p *Process) Argv() []string {
	return slices.Clone(p.cmd.Args)
}

// Wait blocks until the process exits. A non-zero exit is reported in the
// status, not as an error.
func (p *Process) Wait() (*domain.ExitStatus, error) {
	if err := p.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
	}
	state := p.cmd.ProcessState
	return &domain.ExitStatus{
		State:    state.String(),
		Duration: time.Since(p.started),
		Pid:      state.Pid(),
		Code:     state.ExitCode(),
		Signal:   termSignal(state),
		Exited:   state.Exited(),
	}, nil
}

// Signal sends sig to the process.
func (p *Process) Signal(sig os.Signal) error {
	return p.cmd.Process.Signal(sig)
}

// Kill terminates the process immediately.
func (p *Process) Kill() error {
	return p.cmd.Process.Kill()
}

// Release gives up the handle. The process keeps running; it can no longer
// be waited on through this handle.
func (p *Process) Release() error {
	return p.cmd.Process.Release()
}

// Client implements domain.Launcher with Spawn.
type Client struct{}

// NewClient creates a new launcher client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.Launcher interface.
var _ domain.Launcher = (*Client)(nil)

// Spawn implements domain.Launcher.
func (c *Client) Spawn(program string, args []string) (domain.Process, error) {
	p, err := Spawn(program, args)
	if err != nil {
		return nil, err
	}
	return p, nil
}
