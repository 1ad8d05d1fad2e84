// Package config loads cdk settings from YAML files and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/odvcencio/cdk/pkg/cdk"
	"github.com/odvcencio/cdk/pkg/logging"
	"github.com/odvcencio/cdk/pkg/ui/backend"
)

// Config holds the settings shared by cdk programs.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Terminal TerminalConfig `yaml:"terminal"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// LogConfig selects where logs go. Logs never go to the terminal being
// drawn; an empty file discards them.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// TerminalConfig selects the backend. Width and height size the simulated
// screen and are ignored by tcell.
type TerminalConfig struct {
	Backend string `yaml:"backend"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// ThemeConfig overrides the widget defaults. Characters are single-rune
// strings, styles are attribute lists like "bold|reverse".
type ThemeConfig struct {
	Border     BorderConfig `yaml:"border"`
	BoxAttrs   string       `yaml:"box_attrs"`
	Highlight  string       `yaml:"highlight"`
	Filler     string       `yaml:"filler"`
	HiddenChar string       `yaml:"hidden_char"`
	WeekStart  string       `yaml:"week_start"`
	DayNames   []string     `yaml:"day_names"`
}

// BorderConfig overrides the box characters.
type BorderConfig struct {
	UL         string `yaml:"ul"`
	UR         string `yaml:"ur"`
	LL         string `yaml:"ll"`
	LR         string `yaml:"lr"`
	Horizontal string `yaml:"horizontal"`
	Vertical   string `yaml:"vertical"`
}

const (
	BackendTcell = "tcell"
	BackendSim   = "sim"
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Terminal: TerminalConfig{
			Backend: BackendTcell,
			Width:   80,
			Height:  24,
		},
	}
}

// Load loads configuration from default locations with proper precedence
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Load user config (~/.cdk/config.yaml)
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home != "" {
		userConfigPath := filepath.Join(home, ".cdk", "config.yaml")
		if err := loadAndMerge(cfg, userConfigPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading user config: %w", err)
		}
	}

	// Load project config (./.cdk/config.yaml)
	projectConfigPath := filepath.Join(".", ".cdk", "config.yaml")
	if err := loadAndMerge(cfg, projectConfigPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadAndMerge(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CDK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CDK_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("CDK_BACKEND"); v != "" {
		cfg.Terminal.Backend = strings.ToLower(strings.TrimSpace(v))
	}
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Terminal.Backend {
	case BackendTcell:
	case BackendSim:
		if c.Terminal.Width <= 0 || c.Terminal.Height <= 0 {
			return fmt.Errorf("invalid sim size %dx%d", c.Terminal.Width, c.Terminal.Height)
		}
	default:
		return fmt.Errorf("invalid backend: %s (valid: tcell, sim)", c.Terminal.Backend)
	}

	if _, err := c.Theme.Build(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// Build applies the overrides to cdk.DefaultTheme.
func (t ThemeConfig) Build() (cdk.Theme, error) {
	theme := cdk.DefaultTheme()

	runes := []struct {
		name  string
		value string
		dst   *rune
	}{
		{"border.ul", t.Border.UL, &theme.Border.UL},
		{"border.ur", t.Border.UR, &theme.Border.UR},
		{"border.ll", t.Border.LL, &theme.Border.LL},
		{"border.lr", t.Border.LR, &theme.Border.LR},
		{"border.horizontal", t.Border.Horizontal, &theme.Border.Horizontal},
		{"border.vertical", t.Border.Vertical, &theme.Border.Vertical},
		{"filler", t.Filler, &theme.Filler},
		{"hidden_char", t.HiddenChar, &theme.HiddenChar},
	}
	for _, r := range runes {
		if r.value == "" {
			continue
		}
		if utf8.RuneCountInString(r.value) != 1 {
			return theme, fmt.Errorf("%s must be a single character, got %q", r.name, r.value)
		}
		*r.dst, _ = utf8.DecodeRuneInString(r.value)
	}

	if t.BoxAttrs != "" {
		attrs, err := backend.ParseAttrs(t.BoxAttrs)
		if err != nil {
			return theme, fmt.Errorf("box_attrs: %w", err)
		}
		theme.BoxStyle = backend.DefaultStyle().WithAttrs(attrs)
	}
	if t.Highlight != "" {
		attrs, err := backend.ParseAttrs(t.Highlight)
		if err != nil {
			return theme, fmt.Errorf("highlight: %w", err)
		}
		theme.Highlight = backend.DefaultStyle().WithAttrs(attrs)
	}

	if t.WeekStart != "" {
		day, err := parseWeekday(t.WeekStart)
		if err != nil {
			return theme, err
		}
		theme.WeekStart = day
	}

	if len(t.DayNames) > 0 {
		if len(t.DayNames) != 7 {
			return theme, fmt.Errorf("day_names needs 7 entries, got %d", len(t.DayNames))
		}
		copy(theme.DayNames[:], t.DayNames)
	}
	return theme, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid week_start: %s", name)
}
