// Package logging provides file-based logging for spawn.
// It writes to a global log file (<state>/logs/spawn.log) and, for launches
// made through a preset, to a per-preset file (<state>/logs/preset-<name>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/spawn/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled lines to log files under the state directory.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile *os.File
	scopeFiles map[string]*os.File
	now        func() time.Time
	stateDir   string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a new Logger that writes under stateDir.
// If stateDir is empty, logging is disabled.
func New(stateDir string, level slog.Level) *Logger {
	return &Logger{
		stateDir:   stateDir,
		level:      level,
		scopeFiles: make(map[string]*os.File),
		now:        time.Now,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) ensureLogsDir() error {
	return os.MkdirAll(filepath.Join(l.stateDir, "logs"), 0o750)
}

// openFile opens path for appending. Caller holds l.mu.
func (l *Logger) openFile(path string) (*os.File, error) {
	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	//nolint:gosec // Log file readable by owner and group
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
}

// ensureGlobalFile opens or returns the global log file.
func (l *Logger) ensureGlobalFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.globalFile != nil {
		return l.globalFile, nil
	}
	f, err := l.openFile(domain.GlobalLogPath(l.stateDir))
	if err != nil {
		return nil, fmt.Errorf("open global log file: %w", err)
	}
	l.globalFile = f
	return f, nil
}

// ensureScopeFile opens or returns the log file for scope.
func (l *Logger) ensureScopeFile(scope string) (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.scopeFiles[scope]; ok {
		return f, nil
	}
	f, err := l.openFile(domain.ScopeLogPath(l.stateDir, scope))
	if err != nil {
		return nil, fmt.Errorf("open preset log file: %w", err)
	}
	l.scopeFiles[scope] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for scope, f := range l.scopeFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.scopeFiles, scope)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [sleeper] [category] message
func formatLog(t time.Time, level slog.Level, scope, category, msg string) string {
	if scope == "" {
		scope = "global"
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes to the global log, and to the scope log when scope is set.
func (l *Logger) log(level slog.Level, scope, category, msg string) {
	if l.stateDir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	entry := formatLog(l.now(), level, scope, category, msg)

	if gf, err := l.ensureGlobalFile(); err == nil {
		_, _ = io.WriteString(gf, entry)
	}
	if scope != "" {
		if sf, err := l.ensureScopeFile(scope); err == nil {
			_, _ = io.WriteString(sf, entry)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(scope, category, msg string) {
	l.log(slog.LevelInfo, scope, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(scope, category, msg string) {
	l.log(slog.LevelDebug, scope, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(scope, category, msg string) {
	l.log(slog.LevelWarn, scope, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(scope, category, msg string) {
	l.log(slog.LevelError, scope, category, msg)
}
