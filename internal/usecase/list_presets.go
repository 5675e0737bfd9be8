package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/spawn/internal/domain"
)

// PresetEntry is a named preset.
type PresetEntry struct {
	Name   string
	Preset domain.Preset
}

// ListPresetsOutput contains presets sorted by name.
type ListPresetsOutput struct {
	Presets []PresetEntry
}

// ListPresets is the use case for listing configured presets.
type ListPresets struct {
	configs domain.ConfigLoader
}

// NewListPresets creates a new ListPresets use case.
func NewListPresets(configs domain.ConfigLoader) *ListPresets {
	return &ListPresets{configs: configs}
}

// Execute returns all presets from the merged config.
func (uc *ListPresets) Execute(_ context.Context) (*ListPresetsOutput, error) {
	cfg, err := uc.configs.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	names := cfg.PresetNames()
	out := &ListPresetsOutput{Presets: make([]PresetEntry, 0, len(names))}
	for _, name := range names {
		out.Presets = append(out.Presets, PresetEntry{Name: name, Preset: cfg.Presets[name]})
	}
	return out, nil
}
