package cli

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/runoshun/spawn/internal/app"
	"github.com/runoshun/spawn/internal/testutil"
)

type testEnv struct {
	launcher *testutil.MockLauncher
	history  *testutil.MockHistoryRepository
	probe    *testutil.MockLivenessProbe
	loader   *testutil.MockConfigLoader
	manager  *testutil.MockConfigManager
	logger   *testutil.MockLogger
	clock    *testutil.MockClock
	diag     *bytes.Buffer // diagnostics written through the container's slog logger
	c        *app.Container
}

func newTestEnv() *testEnv {
	e := &testEnv{
		launcher: testutil.NewMockLauncher(),
		history:  testutil.NewMockHistoryRepository(),
		probe:    testutil.NewMockLivenessProbe(),
		loader:   testutil.NewMockConfigLoader(),
		manager:  testutil.NewMockConfigManager(),
		logger:   testutil.NewMockLogger(),
		clock:    &testutil.MockClock{NowTime: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)},
		diag:     &bytes.Buffer{},
	}
	e.c = app.NewWithDeps(
		app.Config{WorkDir: "/work", StateDir: "/state"},
		e.launcher,
		e.history,
		e.probe,
		e.loader,
		e.manager,
		e.clock,
		e.logger,
		slog.New(slog.NewTextHandler(e.diag, &slog.HandlerOptions{Level: slog.LevelDebug})),
	)
	return e
}

// run executes the root command with args and returns stdout and stderr.
func (e *testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(e.c, "test-version")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
