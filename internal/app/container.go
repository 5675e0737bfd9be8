// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/spawn/internal/domain"
	"github.com/runoshun/spawn/internal/infra/config"
	"github.com/runoshun/spawn/internal/infra/executor"
	"github.com/runoshun/spawn/internal/infra/history"
	"github.com/runoshun/spawn/internal/infra/logging"
	"github.com/runoshun/spawn/internal/infra/procstat"
	"github.com/runoshun/spawn/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir     string // Directory the project config is read from
	StateDir    string // Directory for logs and history
	HistoryPath string // Path to history.yaml
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Launcher      domain.Launcher
	History       domain.HistoryRepository
	Probe         domain.LivenessProbe
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Log           domain.Logger

	// Pointer fields
	Logger *slog.Logger

	// closer releases the file logger, nil in tests
	closer io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	configManager := config.NewManager(dir)

	// A broken config file must not prevent listing or init; commands that
	// need it load it again and report the error.
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
	}

	stateDir := config.ResolveStateDir(appConfig)
	level := logging.ParseLevel(appConfig.Log.Level)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	logger.Debug("container initialized", "workdir", dir, "state_dir", stateDir)

	fileLogger := logging.New(stateDir, level)
	historyStore := history.NewStore(stateDir)

	return &Container{
		Launcher:      executor.NewClient(),
		History:       historyStore,
		Probe:         procstat.NewProbe(),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Log:           fileLogger,
		Logger:        logger,
		closer:        fileLogger,
		Config: Config{
			WorkDir:     dir,
			StateDir:    stateDir,
			HistoryPath: historyStore.Path(),
		},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	launcher domain.Launcher,
	historyRepo domain.HistoryRepository,
	probe domain.LivenessProbe,
	configLoader domain.ConfigLoader,
	configManager domain.ConfigManager,
	clock domain.Clock,
	log domain.Logger,
	logger *slog.Logger,
) *Container {
	return &Container{
		Launcher:      launcher,
		History:       historyRepo,
		Probe:         probe,
		Clock:         clock,
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Log:           log,
		Logger:        logger,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// SpawnProcessUseCase returns a new SpawnProcess use case.
func (c *Container) SpawnProcessUseCase() *usecase.SpawnProcess {
	return usecase.NewSpawnProcess(c.Launcher, c.ConfigLoader, c.History, c.Clock, c.Log)
}

// ListHistoryUseCase returns a new ListHistory use case.
func (c *Container) ListHistoryUseCase() *usecase.ListHistory {
	return usecase.NewListHistory(c.History, c.Probe)
}

// ListRunningUseCase returns a new ListRunning use case.
func (c *Container) ListRunningUseCase() *usecase.ListRunning {
	return usecase.NewListRunning(c.History, c.Probe)
}

// ClearHistoryUseCase returns a new ClearHistory use case.
func (c *Container) ClearHistoryUseCase() *usecase.ClearHistory {
	return usecase.NewClearHistory(c.History, c.Log)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ListPresetsUseCase returns a new ListPresets use case.
func (c *Container) ListPresetsUseCase() *usecase.ListPresets {
	return usecase.NewListPresets(c.ConfigLoader)
}
