package domain

import "errors"

// Domain errors.
var (
	ErrNotTextual        = errors.New("value has no textual form")
	ErrEmptyCommand      = errors.New("command cannot be empty")
	ErrPresetNotFound    = errors.New("preset not found")
	ErrConfigExists      = errors.New("config file already exists")
	ErrNoGlobalConfigDir = errors.New("global config directory not available")
	ErrHistoryCorrupted  = errors.New("history file is corrupted")
)
