// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/spawn/internal/domain"
)

// SpawnProcessInput contains the parameters for launching a process.
// Fields are ordered to minimize memory padding.
type SpawnProcessInput struct {
	Started func(pid int, argv []string) // Called once the process exists, before any wait
	Preset  string                       // Preset name (optional, exclusive with Command)
	Command string                       // Program to run when no preset is given
	Args    []string                     // Arguments, appended after preset args
	Wait    bool                         // Wait for the process to exit
}

// SpawnProcessOutput contains the result of launching a process.
type SpawnProcessOutput struct {
	Exit *domain.ExitStatus // Set only when waiting
	Argv []string
	PID  int
}

// SpawnProcess is the use case for launching a process, optionally through a preset.
type SpawnProcess struct {
	launcher domain.Launcher
	configs  domain.ConfigLoader
	history  domain.HistoryRepository
	clock    domain.Clock
	logger   domain.Logger
}

// NewSpawnProcess creates a new SpawnProcess use case.
func NewSpawnProcess(
	launcher domain.Launcher,
	configs domain.ConfigLoader,
	history domain.HistoryRepository,
	clock domain.Clock,
	logger domain.Logger,
) *SpawnProcess {
	return &SpawnProcess{
		launcher: launcher,
		configs:  configs,
		history:  history,
		clock:    clock,
		logger:   logger,
	}
}

// Execute launches the process.
// A launch failure is returned exactly as the launcher reported it.
func (uc *SpawnProcess) Execute(_ context.Context, in SpawnProcessInput) (*SpawnProcessOutput, error) {
	if in.Preset != "" && in.Command != "" {
		return nil, errors.New("cannot use both a preset and a command")
	}

	cfg, err := uc.configs.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	program := in.Command
	var args []string
	if in.Preset != "" {
		preset, err := cfg.Preset(in.Preset)
		if err != nil {
			return nil, err
		}
		program = preset.Command
		args = append(args, preset.Args...)
	}
	args = append(args, in.Args...)

	if strings.TrimSpace(program) == "" {
		return nil, domain.ErrEmptyCommand
	}

	cmd := domain.NewCommand(program, args)
	started := uc.clock.Now()
	proc, err := uc.launcher.Spawn(cmd.Program, cmd.Args)
	if err != nil {
		uc.logger.Error(in.Preset, "spawn", fmt.Sprintf("launch %q failed: %v", program, err))
		return nil, err
	}

	rec := domain.LaunchRecord{
		StartedAt: started,
		Preset:    in.Preset,
		Argv:      proc.Argv(),
		PID:       proc.Pid(),
	}
	uc.logger.Info(in.Preset, "spawn", fmt.Sprintf("started pid %d: %s", rec.PID, rec.CommandLine()))

	if cfg.HistoryEnabled() {
		if err := uc.history.Append(rec, cfg.HistoryLimit()); err != nil {
			uc.logger.Warn(in.Preset, "history", fmt.Sprintf("record pid %d: %v", rec.PID, err))
		}
	}

	if in.Started != nil {
		in.Started(rec.PID, rec.Argv)
	}

	out := &SpawnProcessOutput{
		Argv: rec.Argv,
		PID:  rec.PID,
	}

	if !in.Wait {
		if err := proc.Release(); err != nil {
			uc.logger.Debug(in.Preset, "spawn", fmt.Sprintf("release pid %d: %v", rec.PID, err))
		}
		return out, nil
	}

	status, err := proc.Wait()
	if err != nil {
		return nil, fmt.Errorf("wait for pid %d: %w", rec.PID, err)
	}
	uc.logger.Info(in.Preset, "spawn", fmt.Sprintf("pid %d finished: %s", rec.PID, status.State))
	out.Exit = status
	return out, nil
}
