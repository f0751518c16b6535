package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultTopK     = 10
	defaultExclude  = "_"
	defaultLogLevel = "warn"

	envTopK     = "TOPWORDS_TOP_K"
	envLogLevel = "TOPWORDS_LOG_LEVEL"
)

// RankerConfig controls how words are selected per dimension.
type RankerConfig struct {
	// TopK is nil until defaults are applied, so an explicit 0 is kept.
	TopK *int `yaml:"top_k,omitempty"`
	// Exclude drops words containing this substring. A nil value means the
	// default; an explicit empty string disables filtering.
	Exclude  *string `yaml:"exclude,omitempty"`
	Backfill bool    `yaml:"backfill"`
}

// K returns the effective number of words kept per dimension.
func (c RankerConfig) K() int {
	if c.TopK == nil {
		return defaultTopK
	}
	return *c.TopK
}

// ExcludeSubstring returns the effective exclusion substring.
func (c RankerConfig) ExcludeSubstring() string {
	if c.Exclude == nil {
		return defaultExclude
	}
	return *c.Exclude
}

// ReporterConfig selects how the ranking is presented.
type ReporterConfig struct {
	Type string `yaml:"type"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Ranker   RankerConfig   `yaml:"ranker"`
	Reporter ReporterConfig `yaml:"reporter"`
	Log      LogConfig      `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./topwords.yaml first, then ~/.config/topwords/config.yaml.
// If neither exists, defaults are returned and the path is empty.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "topwords.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return defaultConfig(), "", nil
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	return defaultConfig(), "", nil
}

// ApplyEnv overrides config values from TOPWORDS_* environment variables.
func ApplyEnv(cfg *AppConfig) error {
	if v := strings.TrimSpace(os.Getenv(envTopK)); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", envTopK)
		}
		cfg.Ranker.TopK = &k
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "topwords", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Ranker.TopK == nil {
		k := defaultTopK
		cfg.Ranker.TopK = &k
	}
	if cfg.Reporter.Type == "" {
		cfg.Reporter.Type = "text"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
