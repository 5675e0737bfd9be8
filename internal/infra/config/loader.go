// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/spawn/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .spawn.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/spawn)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// ResolveStateDir returns the configured state directory, or the XDG default.
// Returns "" when no home directory can be determined.
func ResolveStateDir(cfg *domain.Config) string {
	if cfg != nil && cfg.State.Dir != "" {
		return cfg.State.Dir
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// Load returns the merged configuration (global + project).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	if l.projectDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.ProjectConfigPath(l.projectDir))
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, project *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreProject {
		project, err = l.LoadProject()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}
	return base, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{
		Presets: make(map[string]domain.Preset),
	}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "state":
			for k, v := range m {
				switch k {
				case "dir":
					if s, ok := v.(string); ok {
						res.State.Dir = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [state]: %s", k))
				}
			}
		case "history":
			for k, v := range m {
				switch k {
				case "enabled":
					if b, ok := v.(bool); ok {
						res.History.Enabled = &b
					}
				case "limit":
					if n, ok := v.(int64); ok {
						res.History.Limit = int(n)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [history]: %s", k))
				}
			}
		case "presets":
			for name, def := range m {
				defMap, ok := def.(map[string]any)
				if !ok {
					warnings = append(warnings, fmt.Sprintf("preset %s must be a table", name))
					continue
				}
				preset, presetWarnings := parsePreset(name, defMap)
				res.Presets[name] = preset
				warnings = append(warnings, presetWarnings...)
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parsePreset parses a [presets.<name>] table.
// Non-string args are converted with domain.Text, so args = [30] works.
func parsePreset(name string, raw map[string]any) (domain.Preset, []string) {
	var p domain.Preset
	var warnings []string

	for k, v := range raw {
		switch k {
		case "command":
			if s, ok := v.(string); ok {
				p.Command = s
			}
		case "description":
			if s, ok := v.(string); ok {
				p.Description = s
			}
		case "args":
			list, ok := v.([]any)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("[presets.%s] args must be an array", name))
				continue
			}
			for i, item := range list {
				s, err := domain.Text(item)
				if err != nil {
					warnings = append(warnings, fmt.Sprintf("[presets.%s] args[%d]: %v", name, i, err))
					continue
				}
				p.Args = append(p.Args, s)
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [presets.%s]: %s", name, k))
		}
	}
	return p, warnings
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Log:      base.Log,
		State:    base.State,
		History:  base.History,
		Presets:  make(map[string]domain.Preset, len(base.Presets)),
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	for name, p := range base.Presets {
		result.Presets[name] = p
	}

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.State.Dir != "" {
		result.State.Dir = override.State.Dir
	}
	if override.History.Enabled != nil {
		enabled := *override.History.Enabled
		result.History.Enabled = &enabled
	}
	if override.History.Limit != 0 {
		result.History.Limit = override.History.Limit
	}

	// Merge presets: override individual fields, not the entire preset
	for name, op := range override.Presets {
		bp := result.Presets[name]
		if op.Command != "" {
			bp.Command = op.Command
		}
		if op.Description != "" {
			bp.Description = op.Description
		}
		if op.Args != nil {
			bp.Args = append([]string{}, op.Args...)
		}
		result.Presets[name] = bp
	}

	return result
}
