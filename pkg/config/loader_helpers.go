package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadAndMerge loads a YAML file and merges it into the config.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base. Keys present in raw win even when
// they hold zero values.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if fieldSet(raw, "log", "file") {
		base.Log.File = override.Log.File
	}

	if override.Terminal.Backend != "" {
		base.Terminal.Backend = override.Terminal.Backend
	}
	if override.Terminal.Width != 0 {
		base.Terminal.Width = override.Terminal.Width
	}
	if override.Terminal.Height != 0 {
		base.Terminal.Height = override.Terminal.Height
	}

	mergeString(&base.Theme.Border.UL, override.Theme.Border.UL)
	mergeString(&base.Theme.Border.UR, override.Theme.Border.UR)
	mergeString(&base.Theme.Border.LL, override.Theme.Border.LL)
	mergeString(&base.Theme.Border.LR, override.Theme.Border.LR)
	mergeString(&base.Theme.Border.Horizontal, override.Theme.Border.Horizontal)
	mergeString(&base.Theme.Border.Vertical, override.Theme.Border.Vertical)
	mergeString(&base.Theme.BoxAttrs, override.Theme.BoxAttrs)
	mergeString(&base.Theme.Highlight, override.Theme.Highlight)
	mergeString(&base.Theme.Filler, override.Theme.Filler)
	mergeString(&base.Theme.HiddenChar, override.Theme.HiddenChar)
	mergeString(&base.Theme.WeekStart, override.Theme.WeekStart)
	if fieldSet(raw, "theme", "day_names") {
		base.Theme.DayNames = append([]string{}, override.Theme.DayNames...)
	}
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// fieldSet reports whether the nested key exists in the raw YAML.
func fieldSet(raw map[string]any, path ...string) bool {
	if len(path) == 0 || raw == nil {
		return false
	}
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, ok := m[key]
		if !ok {
			return false
		}
		current = val
	}
	return true
}
