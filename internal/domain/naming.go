package domain

import (
	"path/filepath"
	"regexp"
)

// File names used by spawn.
const (
	AppName               = "spawn"
	ConfigFileName        = "config.toml"
	ProjectConfigFileName = ".spawn.toml"
	HistoryFileName       = "history.yaml"
)

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// ProjectConfigPath returns the project config path in dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// StateDir returns the state directory under stateHome.
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppName)
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", AppName+".log")
}

// scopeUnsafe matches characters not allowed in a log file name.
var scopeUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ScopeLogPath returns the path to the log file for a scope (a preset name).
// Characters outside [A-Za-z0-9._-] are replaced with "_".
func ScopeLogPath(stateDir, scope string) string {
	name := scopeUnsafe.ReplaceAllString(scope, "_")
	return filepath.Join(stateDir, "logs", "preset-"+name+".log")
}

// HistoryFilePath returns the path to the launch history file.
func HistoryFilePath(stateDir string) string {
	return filepath.Join(stateDir, HistoryFileName)
}
