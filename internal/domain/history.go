package domain

import (
	"strconv"
	"strings"
	"time"
)

// LaunchRecord is one entry in the launch history.
// Fields are ordered to minimize memory padding.
type LaunchRecord struct {
	StartedAt time.Time `yaml:"started_at"`
	Preset    string    `yaml:"preset,omitempty"`
	Argv      []string  `yaml:"argv"`
	PID       int       `yaml:"pid"`
}

// CommandLine renders the argument vector for display.
// Arguments containing whitespace or quotes are quoted; this is never executed.
func (r LaunchRecord) CommandLine() string {
	parts := make([]string, len(r.Argv))
	for i, a := range r.Argv {
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			parts[i] = strconv.Quote(a)
			continue
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}

// ProcessState is the observed liveness of a recorded process.
type ProcessState string

// Process states.
const (
	ProcessRunning ProcessState = "running"
	ProcessGone    ProcessState = "gone"
	ProcessUnknown ProcessState = "unknown"
)
