// Package procstat probes whether recorded processes are still alive.
package procstat

import "github.com/runoshun/spawn/internal/domain"

// Probe implements domain.LivenessProbe.
type Probe struct{}

// NewProbe creates a new liveness probe.
func NewProbe() *Probe {
	return &Probe{}
}

// Ensure Probe implements domain.LivenessProbe interface.
var _ domain.LivenessProbe = (*Probe)(nil)

// State reports the liveness of pid.
func (p *Probe) State(pid int) domain.ProcessState {
	if pid <= 0 {
		return domain.ProcessUnknown
	}
	return probe(pid)
}
