package domain

import (
	"os"
	"time"
)

// Launcher starts OS processes.
type Launcher interface {
	// Spawn starts program with args and returns without waiting for it.
	Spawn(program string, args []string) (Process, error)
}

// Process is a caller-owned handle to a started OS process.
type Process interface {
	// Pid returns the OS process identifier.
	Pid() int

	// Argv returns the argument vector the process was started with.
	Argv() []string

	// Wait blocks until the process exits and reaps it.
	Wait() (*ExitStatus, error)

	// Signal sends sig to the process.
	Signal(sig os.Signal) error

	// Kill forcibly terminates the process.
	Kill() error

	// Release gives up the handle without waiting.
	Release() error
}

// ExitStatus describes how a waited process ended.
// Fields are ordered to minimize memory padding.
type ExitStatus struct {
	State    string        // OS description, e.g. "exit status 1" or "signal: killed"
	Duration time.Duration // Wall time between start and reap
	Pid      int
	Code     int  // Exit code, -1 when terminated by a signal
	Signal   int  // Terminating signal number, 0 when none or unknown
	Exited   bool // True when the process called exit
}

// Success reports whether the process exited with code 0.
func (s *ExitStatus) Success() bool {
	return s.Exited && s.Code == 0
}

// LivenessProbe reports whether a process id is still alive.
type LivenessProbe interface {
	State(pid int) ProcessState
}

// HistoryRepository persists launch records.
type HistoryRepository interface {
	// List returns records, newest first.
	List() ([]LaunchRecord, error)

	// Append adds a record and keeps at most limit records.
	Append(rec LaunchRecord, limit int) error

	// Clear removes all records.
	Clear() error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (global + project).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects config sources to skip.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetProjectConfigInfo() ConfigInfo
	InitGlobalConfig(force bool) (string, error)
	InitProjectConfig(force bool) (string, error)
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger writes operational log lines.
// scope is a preset name or "" for the global log only.
type Logger interface {
	Info(scope, category, msg string)
	Debug(scope, category, msg string)
	Warn(scope, category, msg string)
	Error(scope, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
