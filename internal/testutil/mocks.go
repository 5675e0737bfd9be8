// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/runoshun/spawn/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockProcess is a test double for domain.Process.
// Fields are ordered to minimize memory padding.
type MockProcess struct {
	Exit       *domain.ExitStatus
	WaitErr    error
	ReleaseErr error
	Signals    []os.Signal
	ArgvValue  []string
	PID        int
	WaitCalled bool
	Released   bool
	Killed     bool
}

// Ensure MockProcess implements domain.Process interface.
var _ domain.Process = (*MockProcess)(nil)

// Pid returns the configured pid.
func (m *MockProcess) Pid() int {
	return m.PID
}

// Argv returns a copy of the configured argv.
func (m *MockProcess) Argv() []string {
	return slices.Clone(m.ArgvValue)
}

// Wait records the call and returns the configured status.
func (m *MockProcess) Wait() (*domain.ExitStatus, error) {
	m.WaitCalled = true
	if m.WaitErr != nil {
		return nil, m.WaitErr
	}
	if m.Exit != nil {
		return m.Exit, nil
	}
	return &domain.ExitStatus{Pid: m.PID, Exited: true, State: "exit status 0"}, nil
}

// Signal records sig.
func (m *MockProcess) Signal(sig os.Signal) error {
	m.Signals = append(m.Signals, sig)
	return nil
}

// Kill records the kill.
func (m *MockProcess) Kill() error {
	m.Killed = true
	return nil
}

// Release records the release.
func (m *MockProcess) Release() error {
	m.Released = true
	return m.ReleaseErr
}

// MockLauncher is a test double for domain.Launcher.
// Each Spawn call returns a new MockProcess with an increasing pid.
// Fields are ordered to minimize memory padding.
type MockLauncher struct {
	SpawnErr  error
	Exit      *domain.ExitStatus // Exit status given to spawned processes
	Processes []*MockProcess
	Calls     [][]string // argv of each call
	NextPID   int
	mu        sync.Mutex
}

// NewMockLauncher creates a new MockLauncher.
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{NextPID: 1000}
}

// Ensure MockLauncher implements domain.Launcher interface.
var _ domain.Launcher = (*MockLauncher)(nil)

// Spawn records the argv and returns a MockProcess or SpawnErr.
func (m *MockLauncher) Spawn(program string, args []string) (domain.Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	argv := append([]string{program}, args...)
	m.Calls = append(m.Calls, argv)
	if m.SpawnErr != nil {
		return nil, m.SpawnErr
	}

	p := &MockProcess{PID: m.NextPID, ArgvValue: argv, Exit: m.Exit}
	m.NextPID++
	m.Processes = append(m.Processes, p)
	return p, nil
}

// MockHistoryRepository is a test double for domain.HistoryRepository.
// Fields are ordered to minimize memory padding.
type MockHistoryRepository struct {
	ListErr    error
	AppendErr  error
	ClearErr   error
	Records    []domain.LaunchRecord
	LastLimit  int
	ClearCalls int
}

// NewMockHistoryRepository creates a new MockHistoryRepository.
func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{}
}

// Ensure MockHistoryRepository implements domain.HistoryRepository interface.
var _ domain.HistoryRepository = (*MockHistoryRepository)(nil)

// List returns the stored records.
func (m *MockHistoryRepository) List() ([]domain.LaunchRecord, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Records, nil
}

// Append prepends rec, honoring limit.
func (m *MockHistoryRepository) Append(rec domain.LaunchRecord, limit int) error {
	m.LastLimit = limit
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Records = append([]domain.LaunchRecord{rec}, m.Records...)
	if limit > 0 && len(m.Records) > limit {
		m.Records = m.Records[:limit]
	}
	return nil
}

// Clear removes all records.
func (m *MockHistoryRepository) Clear() error {
	m.ClearCalls++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Records = nil
	return nil
}

// MockLivenessProbe is a test double for domain.LivenessProbe.
// Pids not in States are reported as gone.
type MockLivenessProbe struct {
	States map[int]domain.ProcessState
}

// NewMockLivenessProbe creates a new MockLivenessProbe.
func NewMockLivenessProbe() *MockLivenessProbe {
	return &MockLivenessProbe{States: make(map[int]domain.ProcessState)}
}

// Ensure MockLivenessProbe implements domain.LivenessProbe interface.
var _ domain.LivenessProbe = (*MockLivenessProbe)(nil)

// State returns the configured state.
func (m *MockLivenessProbe) State(pid int) domain.ProcessState {
	if s, ok := m.States[pid]; ok {
		return s
	}
	return domain.ProcessGone
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
	LastOptions  domain.LoadConfigOptions
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// LoadWithOptions records opts and returns the configured config.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOptions = opts
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
	LastForce         bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ProjectConfigInfo: domain.ConfigInfo{
			Path: "/work/.spawn.toml",
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path: "/home/test/.config/spawn/config.toml",
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig(force bool) (string, error) {
	m.InitProjectCalled = true
	m.LastForce = force
	if m.InitProjectErr != nil {
		return "", m.InitProjectErr
	}
	return m.ProjectConfigInfo.Path, nil
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(force bool) (string, error) {
	m.InitGlobalCalled = true
	m.LastForce = force
	if m.InitGlobalErr != nil {
		return "", m.InitGlobalErr
	}
	return m.GlobalConfigInfo.Path, nil
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []string
	mu      sync.Mutex
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, scope, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, fmt.Sprintf("%s [%s] [%s] %s", level, scope, category, msg))
}

// Info records an info entry.
func (m *MockLogger) Info(scope, category, msg string) { m.add("INFO", scope, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(scope, category, msg string) { m.add("DEBUG", scope, category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(scope, category, msg string) { m.add("WARN", scope, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(scope, category, msg string) { m.add("ERROR", scope, category, msg) }
