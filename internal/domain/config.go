package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultHistoryLimit = 200
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Presets  map[string]Preset `toml:"presets,omitempty"` // Named commands from [presets.<name>]
	Warnings []string          `toml:"-"`
	Log      LogConfig         `toml:"log"`
	State    StateConfig       `toml:"state"`
	History  HistoryConfig     `toml:"history"`
}

// Preset is a named command with fixed leading arguments.
type Preset struct {
	Command     string   `toml:"command"`
	Description string   `toml:"description,omitempty"`
	Args        []string `toml:"args,omitempty"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// StateConfig holds settings from [state] section.
type StateConfig struct {
	Dir string `toml:"dir,omitempty"` // Directory for logs and history
}

// HistoryConfig holds settings from [history] section.
type HistoryConfig struct {
	Enabled *bool `toml:"enabled,omitempty"` // nil means enabled
	Limit   int   `toml:"limit,omitempty"`   // Max records kept
}

// NewDefaultConfig returns a Config populated with defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Presets: make(map[string]Preset),
		Log:     LogConfig{Level: DefaultLogLevel},
		History: HistoryConfig{Limit: DefaultHistoryLimit},
	}
}

// HistoryEnabled reports whether launches should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// HistoryLimit returns the configured record limit, falling back to the default.
func (c *Config) HistoryLimit() int {
	if c.History.Limit <= 0 {
		return DefaultHistoryLimit
	}
	return c.History.Limit
}

// Preset returns the named preset.
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return p, nil
}

// PresetNames returns preset names sorted alphabetically.
func (c *Config) PresetNames() []string {
	return sortedMapKeys(c.Presets)
}

type templateData struct {
	LogLevel     string
	HistoryLimit int
}

// RenderConfigTemplate renders the commented config file written by "config init".
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		LogLevel:     cfg.Log.Level,
		HistoryLimit: cfg.HistoryLimit(),
	}
	if data.LogLevel == "" {
		data.LogLevel = DefaultLogLevel
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}

// sortedMapKeys returns the keys of a map sorted alphabetically.
func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
