//go:build unix

package procstat

import (
	"os"
	"os/exec"
	"testing"

	"github.com/runoshun/spawn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_State(t *testing.T) {
	probe := NewProbe()

	t.Run("own process is running", func(t *testing.T) {
		assert.Equal(t, domain.ProcessRunning, probe.State(os.Getpid()))
	})

	t.Run("non-positive pid is unknown", func(t *testing.T) {
		assert.Equal(t, domain.ProcessUnknown, probe.State(0))
		assert.Equal(t, domain.ProcessUnknown, probe.State(-1))
	})

	t.Run("reaped child is gone", func(t *testing.T) {
		cmd := exec.Command("true")
		require.NoError(t, cmd.Run())
		assert.Equal(t, domain.ProcessGone, probe.State(cmd.ProcessState.Pid()))
	})
}
