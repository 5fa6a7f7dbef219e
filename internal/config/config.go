package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `yaml:"level"`
	// Format is console or json.
	Format string `yaml:"format"`
	// UseCases logs one entry per service use case.
	UseCases bool `yaml:"use_cases"`
}

// Config holds all configuration for the skilltrade binary.
type Config struct {
	// Seed is a seed file path. Empty means the bundled seed.
	Seed    string    `yaml:"seed"`
	Log     LogConfig `yaml:"log"`
	Metrics bool      `yaml:"metrics"`
}

// Default returns a Config with the bundled seed, warn-level console
// logging and no metrics.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: FormatConsole,
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (or SKILLTRADE_CONFIG when path is empty), then environment overrides.
// Invalid values fall back to their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("SKILLTRADE_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	overrideFromEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("SKILLTRADE_SEED"); v != "" {
		cfg.Seed = v
	}
	if v := os.Getenv("SKILLTRADE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SKILLTRADE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("SKILLTRADE_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.UseCases = b
		}
	}
	if v := os.Getenv("SKILLTRADE_METRICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics = b
		}
	}
}

func (c *Config) normalize() {
	def := Default()
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		c.Log.Format = def.Log.Format
	}
}

// NewLogger builds a zap logger for the configured level and format.
// JSON uses the production encoder, console the development one.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}

	var zc zap.Config
	if c.Format == FormatJSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
