// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/chathistory"
)

// Config represents the parley configuration.
type Config struct {
	Window   WindowConfig    `toml:"window" json:"window"`
	History  HistoryConfig   `toml:"history" json:"history"`
	Channels []ChannelConfig `toml:"channels" json:"channels"`
	Seed     []SeedMessage   `toml:"seed" json:"seed"`
	Logging  LoggingConfig   `toml:"logging" json:"logging"`
}

// WindowConfig holds chat window settings.
type WindowConfig struct {
	Width          int  `toml:"width" json:"width"`
	Height         int  `toml:"height" json:"height"`
	MaxChatInput   int  `toml:"max_chat_input" json:"max_chat_input"`
	MaxMenuInput   int  `toml:"max_menu_input" json:"max_menu_input"`
	DefaultChannel int  `toml:"default_channel" json:"default_channel"`
	AltScreen      bool `toml:"alt_screen" json:"alt_screen"`
}

// HistoryConfig holds the initial prune policy.
type HistoryConfig struct {
	PruneEnabled bool `toml:"prune_enabled" json:"prune_enabled"`
	PruneLength  int  `toml:"prune_length" json:"prune_length"`
}

// ChannelConfig describes a channel registered at startup. Channels get IDs
// in the order they are listed.
type ChannelConfig struct {
	Name  string        `toml:"name" json:"name"`
	Color channel.Color `toml:"color" json:"color"`
}

// SeedMessage is a message placed in the history at startup.
type SeedMessage struct {
	Channel int    `toml:"channel" json:"channel"`
	Text    string `toml:"text" json:"text"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
	File  string `toml:"file" json:"file"`
}

// Load reads configuration from path, or from ConfigPath when path is empty,
// then applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile returns the defaults overlaid with the file at path (or
// ConfigPath). Environment overrides and path expansion are not applied, so
// the result can be written back with Save.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	// Seed lists in the file replace the defaults instead of merging.
	cfg.Channels = nil
	cfg.Seed = nil
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !md.IsDefined("channels") {
		cfg.Channels = Default().Channels
	}
	if !md.IsDefined("seed") {
		cfg.Seed = Default().Seed
	}
	return cfg, nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if p := os.Getenv("PARLEY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(StateDir(), "config.toml")
}

// StateDir returns the parley state directory.
func StateDir() string {
	if p := os.Getenv("PARLEY_STATE_DIR"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".parley")
}

// LogsDir returns the logs directory.
func LogsDir() string {
	return filepath.Join(StateDir(), "logs")
}

// LogFile returns the configured log file, defaulting to parley.log in
// LogsDir.
func (c *Config) LogFile() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(LogsDir(), "parley.log")
}

// PrunePolicy returns the configured prune policy.
func (c *Config) PrunePolicy() chathistory.Prune {
	return chathistory.Prune{
		Enabled: c.History.PruneEnabled,
		Length:  c.History.PruneLength,
	}
}

// ChannelList returns the configured channels as (name, color) pairs.
func (c *Config) ChannelList() []channel.NameColor {
	out := make([]channel.NameColor, len(c.Channels))
	for i, ch := range c.Channels {
		out[i] = channel.NameColor{Name: ch.Name, Color: ch.Color}
	}
	return out
}

// SeedMessages returns the configured seed messages in order.
func (c *Config) SeedMessages() []chathistory.Message {
	out := make([]chathistory.Message, len(c.Seed))
	for i, s := range c.Seed {
		out[i] = chathistory.NewMessage(channel.ID(s.Channel), s.Text)
	}
	return out
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.MaxChatInput <= 0 {
		errs = append(errs, fmt.Errorf("window.max_chat_input must be positive, got %d", c.Window.MaxChatInput))
	}
	if c.Window.MaxMenuInput <= 0 {
		errs = append(errs, fmt.Errorf("window.max_menu_input must be positive, got %d", c.Window.MaxMenuInput))
	}
	if c.Window.DefaultChannel < 0 {
		errs = append(errs, fmt.Errorf("window.default_channel must not be negative, got %d", c.Window.DefaultChannel))
	}
	if c.History.PruneLength < 0 {
		errs = append(errs, fmt.Errorf("history.prune_length must not be negative, got %d", c.History.PruneLength))
	}
	for i, ch := range c.Channels {
		if strings.TrimSpace(ch.Name) == "" {
			errs = append(errs, fmt.Errorf("channels[%d]: name is empty", i))
		}
	}
	for i, s := range c.Seed {
		if s.Channel < 0 {
			errs = append(errs, fmt.Errorf("seed[%d]: channel must not be negative, got %d", i, s.Channel))
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PARLEY_PRUNE_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PARLEY_PRUNE_LENGTH: %w", err)
		}
		c.History.PruneLength = n
	}

	if v := os.Getenv("PARLEY_PRUNE_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PARLEY_PRUNE_ENABLED: %w", err)
		}
		c.History.PruneEnabled = b
	}

	if level := os.Getenv("PARLEY_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	return nil
}

func (c *Config) expandPaths() {
	home, _ := os.UserHomeDir()

	expand := func(p string) string {
		if strings.HasPrefix(p, "~/") {
			return filepath.Join(home, p[2:])
		}
		if strings.HasPrefix(p, "$HOME/") {
			return filepath.Join(home, p[6:])
		}
		return p
	}

	c.Logging.File = expand(c.Logging.File)
}

// Save writes the config to path, or to ConfigPath when path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// EnsureDirs creates necessary directories.
func EnsureDirs() error {
	dirs := []string{
		StateDir(),
		LogsDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	return nil
}
