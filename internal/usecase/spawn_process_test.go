package usecase_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/runoshun/spawn/internal/domain"
	"github.com/runoshun/spawn/internal/testutil"
	"github.com/runoshun/spawn/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnFixture struct {
	launcher *testutil.MockLauncher
	loader   *testutil.MockConfigLoader
	history  *testutil.MockHistoryRepository
	logger   *testutil.MockLogger
	uc       *usecase.SpawnProcess
}

func newSpawnFixture() *spawnFixture {
	f := &spawnFixture{
		launcher: testutil.NewMockLauncher(),
		loader:   testutil.NewMockConfigLoader(),
		history:  testutil.NewMockHistoryRepository(),
		logger:   testutil.NewMockLogger(),
	}
	clock := &testutil.MockClock{NowTime: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	f.uc = usecase.NewSpawnProcess(f.launcher, f.loader, f.history, clock, f.logger)
	return f
}

func TestSpawnProcess_Execute(t *testing.T) {
	t.Run("launches command without waiting", func(t *testing.T) {
		f := newSpawnFixture()

		out, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{
			Command: "sleep",
			Args:    []string{"30"},
		})

		require.NoError(t, err)
		assert.Equal(t, 1000, out.PID)
		assert.Equal(t, []string{"sleep", "30"}, out.Argv)
		assert.Nil(t, out.Exit)
		require.Len(t, f.launcher.Processes, 1)
		assert.True(t, f.launcher.Processes[0].Released)
		assert.False(t, f.launcher.Processes[0].WaitCalled)
	})

	t.Run("records launch in history", func(t *testing.T) {
		f := newSpawnFixture()

		_, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{
			Command: "echo",
			Args:    []string{"hi"},
		})

		require.NoError(t, err)
		require.Len(t, f.history.Records, 1)
		rec := f.history.Records[0]
		assert.Equal(t, 1000, rec.PID)
		assert.Equal(t, []string{"echo", "hi"}, rec.Argv)
		assert.Empty(t, rec.Preset)
		assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), rec.StartedAt)
		assert.Equal(t, domain.DefaultHistoryLimit, f.history.LastLimit)
	})

	t.Run("resolves preset and appends extra args", func(t *testing.T) {
		f := newSpawnFixture()
		f.loader.Config.Presets = map[string]domain.Preset{
			"sleeper": {Command: "sleep", Args: []string{"5"}},
		}

		out, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{
			Preset: "sleeper",
			Args:   []string{"10"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"sleep", "5", "10"}, out.Argv)
		assert.Equal(t, "sleeper", f.history.Records[0].Preset)
		assert.Contains(t, f.logger.Entries[0], "[sleeper] [spawn] started pid 1000")
	})

	t.Run("unknown preset", func(t *testing.T) {
		f := newSpawnFixture()

		_, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{Preset: "nope"})

		require.ErrorIs(t, err, domain.ErrPresetNotFound)
		assert.Empty(t, f.launcher.Calls)
	})

	t.Run("preset and command together", func(t *testing.T) {
		f := newSpawnFixture()

		_, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{
			Preset:  "a",
			Command: "b",
		})

		require.Error(t, err)
		assert.Empty(t, f.launcher.Calls)
	})

	t.Run("empty command", func(t *testing.T) {
		f := newSpawnFixture()

		_, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{Command: "  "})

		require.ErrorIs(t, err, domain.ErrEmptyCommand)
		assert.Empty(t, f.launcher.Calls)
	})

	t.Run("config load error", func(t *testing.T) {
		f := newSpawnFixture()
		f.loader.LoadErr = errors.New("bad toml")

		_, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{Command: "true"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load config")
	})

	t.Run("launch error is returned unchanged", func(t *testing.T) {
		f := newSpawnFixture()
		launchErr := &exec.Error{Name: "missing", Err: exec.ErrNotFound}
		f.launcher.SpawnErr = launchErr

		out, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{Command: "missing"})

		assert.Nil(t, out)
		assert.Same(t, launchErr, err)
		assert.Empty(t, f.history.Records)
		require.Len(t, f.logger.Entries, 1)
		assert.Contains(t, f.logger.Entries[0], "ERROR")
	})

	t.Run("history failure does not fail launch", func(t *testing.T) {
		f := newSpawnFixture()
		f.history.AppendErr = errors.New("disk full")

		out, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{Command: "true"})

		require.NoError(t, err)
		assert.Equal(t, 1000, out.PID)
		assert.Contains(t, f.logger.Entries[len(f.logger.Entries)-1], "WARN")
	})

	t.Run("history disabled", func(t *testing.T) {
		f := newSpawnFixture()
		disabled := false
		f.loader.Config.History.Enabled = &disabled

		_, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{Command: "true"})

		require.NoError(t, err)
		assert.Empty(t, f.history.Records)
	})

	t.Run("waits and returns exit status", func(t *testing.T) {
		f := newSpawnFixture()
		f.launcher.Exit = &domain.ExitStatus{Pid: 1000, Code: 3, Exited: true, State: "exit status 3"}

		out, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{
			Command: "sh",
			Args:    []string{"-c", "exit 3"},
			Wait:    true,
		})

		require.NoError(t, err)
		require.NotNil(t, out.Exit)
		assert.Equal(t, 3, out.Exit.Code)
		assert.True(t, f.launcher.Processes[0].WaitCalled)
		assert.False(t, f.launcher.Processes[0].Released)
	})

	t.Run("reports start before waiting", func(t *testing.T) {
		f := newSpawnFixture()
		var gotPID int
		var gotArgv []string
		waitedBeforeStart := true

		_, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{
			Command: "sleep",
			Args:    []string{"30"},
			Wait:    true,
			Started: func(pid int, argv []string) {
				gotPID = pid
				gotArgv = argv
				waitedBeforeStart = f.launcher.Processes[0].WaitCalled
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1000, gotPID)
		assert.Equal(t, []string{"sleep", "30"}, gotArgv)
		assert.False(t, waitedBeforeStart)
		assert.True(t, f.launcher.Processes[0].WaitCalled)
	})

	t.Run("start hook not called on launch error", func(t *testing.T) {
		f := newSpawnFixture()
		f.launcher.SpawnErr = errors.New("boom")
		called := false

		_, err := f.uc.Execute(context.Background(), usecase.SpawnProcessInput{
			Command: "x",
			Started: func(int, []string) { called = true },
		})

		require.Error(t, err)
		assert.False(t, called)
	})

	t.Run("wait error", func(t *testing.T) {
		f := newSpawnFixture()
		proc := &testutil.MockProcess{PID: 7, WaitErr: errors.New("no child")}
		l := &singleProcessLauncher{proc: proc}
		uc := usecase.NewSpawnProcess(l, f.loader, f.history, &testutil.MockClock{}, f.logger)

		_, err := uc.Execute(context.Background(), usecase.SpawnProcessInput{Command: "true", Wait: true})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "wait for pid 7")
	})
}

type singleProcessLauncher struct {
	proc domain.Process
}

func (l *singleProcessLauncher) Spawn(string, []string) (domain.Process, error) {
	return l.proc, nil
}
