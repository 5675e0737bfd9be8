//go:build unix

package procstat

import (
	"errors"

	"github.com/runoshun/spawn/internal/domain"
	"golang.org/x/sys/unix"
)

// probe sends signal 0, which checks existence and permission only.
func probe(pid int) domain.ProcessState {
	err := unix.Kill(pid, 0)
	switch {
	case err == nil:
		return domain.ProcessRunning
	case errors.Is(err, unix.EPERM):
		// exists, owned by someone else
		return domain.ProcessRunning
	case errors.Is(err, unix.ESRCH):
		return domain.ProcessGone
	default:
		return domain.ProcessUnknown
	}
}
