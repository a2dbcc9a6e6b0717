// Package config loads taskboard settings from a YAML file and TASKBOARD_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. TASKBOARD_DATABASE_PATH.
const EnvPrefix = "TASKBOARD"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Cache    CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Tracing  TracingConfig  `mapstructure:"tracing" yaml:"tracing"`
	Board    BoardConfig    `mapstructure:"board" yaml:"board"`
}

// DatabaseConfig locates the SQLite file. An empty path means ~/.taskboard/taskboard.db.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls the log sink. File "-" logs to stderr, empty means
// ~/.taskboard/logs/taskboard.log.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// CacheConfig controls the board layout cache
type CacheConfig struct {
	LayoutTTL time.Duration `mapstructure:"layout_ttl" yaml:"layout_ttl"`
}

// TracingConfig toggles span export to stderr
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// BoardConfig holds the column names used by `board create` without a template
type BoardConfig struct {
	InitialColumn  string   `mapstructure:"initial_column" yaml:"initial_column"`
	PendingColumns []string `mapstructure:"pending_columns" yaml:"pending_columns"`
	FinalColumn    string   `mapstructure:"final_column" yaml:"final_column"`
	CancelColumn   string   `mapstructure:"cancel_column" yaml:"cancel_column"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Log:   LogConfig{Level: "info"},
		Cache: CacheConfig{LayoutTTL: 5 * time.Minute},
		Board: BoardConfig{
			InitialColumn:  "Todo",
			PendingColumns: []string{"In Progress"},
			FinalColumn:    "Done",
			CancelColumn:   "Cancelled",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("cache.layout_ttl", d.Cache.LayoutTTL)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("board.initial_column", d.Board.InitialColumn)
	v.SetDefault("board.pending_columns", d.Board.PendingColumns)
	v.SetDefault("board.final_column", d.Board.FinalColumn)
	v.SetDefault("board.cancel_column", d.Board.CancelColumn)
}

// Load reads the config file at path, or the default location when path is
// empty. A missing default file yields the defaults; a missing explicit file
// is an error. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config as YAML to path, or to the default location when
// path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskboard", "config.yaml"), nil
}
