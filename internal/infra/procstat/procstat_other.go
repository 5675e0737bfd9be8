//go:build !unix

package procstat

import "github.com/runoshun/spawn/internal/domain"

func probe(int) domain.ProcessState {
	return domain.ProcessUnknown
}
