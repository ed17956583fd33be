// Package config provides unified configuration management for todolist.
// Configuration is loaded from multiple sources with the following precedence:
// embedded defaults → global file → env vars → local file → CLI flags
package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/todolist/internal/dirs"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// ThemeConfig holds the colors used by the TUI.
type ThemeConfig struct {
	Accent string `yaml:"accent"`
	Muted  string `yaml:"muted"`
	Done   string `yaml:"done"`
}

// Config holds all configuration settings for todolist.
// Fields ending in *Set track whether that field was explicitly set in config.
// This allows distinguishing explicit false/0 from "not set", so a local
// config can override the global one with zero values.
type Config struct {
	Title         string      `yaml:"title"`
	Placeholder   string      `yaml:"placeholder"`
	CharLimit     int         `yaml:"char_limit"`
	Mouse         bool        `yaml:"mouse"`
	HideHelp      bool        `yaml:"hide_help"`
	DoubleClickMS int         `yaml:"double_click_ms"`
	Theme         ThemeConfig `yaml:"theme"`

	CharLimitSet     bool `yaml:"-"`
	MouseSet         bool `yaml:"-"`
	HideHelpSet      bool `yaml:"-"`
	DoubleClickMSSet bool `yaml:"-"`

	configDir string
	localDir  string
	sources   []string // ordered list of sources that contributed to this config
}

// Sources returns the ordered list of sources that contributed to this config.
func (c *Config) Sources() []string {
	return c.sources
}

// LocalDir returns the local project config directory if one was detected.
func (c *Config) LocalDir() string {
	return c.localDir
}

// ConfigDir returns the global config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// DoubleClick returns the double-click window.
func (c *Config) DoubleClick() time.Duration {
	return time.Duration(c.DoubleClickMS) * time.Millisecond
}

// Load loads all configuration from the default locations.
// It auto-detects .todolist/ in the current working directory for local overrides.
func Load() (*Config, error) {
	var localDir string
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, ".todolist")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			localDir = candidate
		}
	}

	return LoadWithDirs(dirs.ConfigDir(), localDir)
}

// LoadWithDirs loads configuration with explicit global and local directories.
// Local config (.todolist/) overrides global config per-field.
// If localDir is empty, only global config is used.
func LoadWithDirs(globalDir, localDir string) (*Config, error) {
	if err := InstallDefaults(globalDir); err != nil {
		return nil, fmt.Errorf("install defaults: %w", err)
	}

	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	globalPath := filepath.Join(globalDir, "config.yaml")
	if globalCfg, err := loadFile(globalPath); err == nil {
		cfg.mergeFrom(globalCfg)
		cfg.sources = append(cfg.sources, globalPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	cfg.applyEnv()

	if localDir != "" {
		localPath := filepath.Join(localDir, "config.yaml")
		if localCfg, err := loadFile(localPath); err == nil {
			cfg.mergeFrom(localCfg)
			cfg.sources = append(cfg.sources, localPath)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load local config: %w", err)
		}
	}

	cfg.configDir = globalDir
	cfg.localDir = localDir

	return cfg, nil
}

// InstallDefaults creates the config directory and installs default config if not exists.
func InstallDefaults(configDir string) error {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		data, err := defaultsFS.ReadFile("defaults/config.yaml")
		if err != nil {
			return fmt.Errorf("read embedded config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0o600); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	}

	return nil
}

// Validate checks that numeric settings are in range.
func (c *Config) Validate() error {
	var errs []error
	if c.CharLimit < 0 {
		errs = append(errs, fmt.Errorf("char_limit must be >= 0, got %d", c.CharLimit))
	}
	if c.DoubleClickMS < 0 {
		errs = append(errs, fmt.Errorf("double_click_ms must be >= 0, got %d", c.DoubleClickMS))
	}
	return errors.Join(errs...)
}

func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	return parseConfigWithTracking(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// parseConfigWithTracking parses YAML config and tracks which fields were set.
func parseConfigWithTracking(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if _, ok := raw["char_limit"]; ok {
		cfg.CharLimitSet = true
	}
	if _, ok := raw["mouse"]; ok {
		cfg.MouseSet = true
	}
	if _, ok := raw["hide_help"]; ok {
		cfg.HideHelpSet = true
	}
	if _, ok := raw["double_click_ms"]; ok {
		cfg.DoubleClickMSSet = true
	}

	return cfg, nil
}

func parseBool(v string) (bool, bool) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// applyEnv applies environment variables to the config.
// Env vars sit between global and local config in precedence.
func (c *Config) applyEnv() {
	if v := os.Getenv("TODOLIST_TITLE"); v != "" {
		c.Title = v
		c.sources = append(c.sources, "env:TODOLIST_TITLE")
	}

	if v := os.Getenv("TODOLIST_PLACEHOLDER"); v != "" {
		c.Placeholder = v
		c.sources = append(c.sources, "env:TODOLIST_PLACEHOLDER")
	}

	if v := os.Getenv("TODOLIST_MOUSE"); v != "" {
		if b, ok := parseBool(v); ok {
			c.Mouse = b
			c.MouseSet = true
			c.sources = append(c.sources, "env:TODOLIST_MOUSE")
		}
	}

	if v := os.Getenv("TODOLIST_HIDE_HELP"); v != "" {
		if b, ok := parseBool(v); ok {
			c.HideHelp = b
			c.HideHelpSet = true
			c.sources = append(c.sources, "env:TODOLIST_HIDE_HELP")
		}
	}
}

// mergeFrom merges non-empty/set values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if src.Title != "" {
		c.Title = src.Title
	}
	if src.Placeholder != "" {
		c.Placeholder = src.Placeholder
	}
	if src.CharLimitSet {
		c.CharLimit = src.CharLimit
		c.CharLimitSet = true
	}
	if src.MouseSet {
		c.Mouse = src.Mouse
		c.MouseSet = true
	}
	if src.HideHelpSet {
		c.HideHelp = src.HideHelp
		c.HideHelpSet = true
	}
	if src.DoubleClickMSSet {
		c.DoubleClickMS = src.DoubleClickMS
		c.DoubleClickMSSet = true
	}

	if src.Theme.Accent != "" {
		c.Theme.Accent = src.Theme.Accent
	}
	if src.Theme.Muted != "" {
		c.Theme.Muted = src.Theme.Muted
	}
	if src.Theme.Done != "" {
		c.Theme.Done = src.Theme.Done
	}
}

// ApplyCLIFlags applies CLI flag overrides to the config.
// CLI flags have the highest precedence.
func (c *Config) ApplyCLIFlags(title string, noMouse bool) {
	if title != "" {
		c.Title = title
		c.sources = append(c.sources, "cli:title")
	}
	if noMouse {
		c.Mouse = false
		c.MouseSet = true
		c.sources = append(c.sources, "cli:no-mouse")
	}
}
