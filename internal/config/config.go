package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/missionfuel/internal/ctxlog"
	"github.com/danieljhkim/missionfuel/internal/fsops"
)

var fsys fsops.FS = fsops.NewRealFS()

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatSimple = "simple"
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full missionfuel configuration.
type Config struct {
	// Gravity adds or overrides bodies in the gravity table (m/s²)
	Gravity map[string]float64 `yaml:"gravity,omitempty"`

	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
	Server     ServerConfig     `yaml:"server"`
	Supervisor SupervisorConfig `yaml:"supervisor"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	// Format is one of table, json, simple
	Format string `yaml:"format"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// ServerConfig controls the HTTP service.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string `yaml:"addr"`
}

// SupervisorConfig bounds restarts of the HTTP service.
type SupervisorConfig struct {
	// MaxRestarts is the number of restarts allowed within Window
	MaxRestarts int `yaml:"max_restarts"`

	// Window is the sliding period restarts are counted over
	Window time.Duration `yaml:"window"`

	// InitialBackoff is the delay before the first restart
	InitialBackoff time.Duration `yaml:"initial_backoff"`

	// MaxBackoff caps the delay between restarts
	MaxBackoff time.Duration `yaml:"max_backoff"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatTable},
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8080"},
		Supervisor: SupervisorConfig{
			MaxRestarts:    3,
			Window:         5 * time.Second,
			InitialBackoff: 100 * time.Millisecond,
			MaxBackoff:     2 * time.Second,
		},
	}
}

// Load reads the config file at path (a missing file is not an error),
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := fsys.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeGravity adds entries over the configured gravity overrides.
func (c *Config) MergeGravity(entries map[string]float64) {
	if len(entries) == 0 {
		return
	}
	if c.Gravity == nil {
		c.Gravity = make(map[string]float64, len(entries))
	}
	for body, g := range entries {
		c.Gravity[body] = g
	}
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	for body, g := range c.Gravity {
		if body == "" {
			return fmt.Errorf("%w: empty body name in gravity table", ErrInvalidConfig)
		}
		if math.IsNaN(g) || math.IsInf(g, 0) || g <= 0 {
			return fmt.Errorf("%w: gravity for %s must be a positive number, got %v", ErrInvalidConfig, body, g)
		}
	}

	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatSimple:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output.Format)
	}

	if _, err := ctxlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Supervisor.MaxRestarts < 0 {
		return fmt.Errorf("%w: supervisor.max_restarts must be >= 0", ErrInvalidConfig)
	}
	if c.Supervisor.Window <= 0 {
		return fmt.Errorf("%w: supervisor.window must be positive", ErrInvalidConfig)
	}

	return nil
}

// WriteDefault writes the default configuration to path. Unless overwrite
// is set it refuses to replace an existing file.
func WriteDefault(path string, overwrite bool) error {
	exists, err := fsys.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists && !overwrite {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	cfg := Default()
	cfg.Gravity = map[string]float64{}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	header := []byte("# missionfuel configuration\n# gravity entries (m/s²) are merged over earth, moon and mars.\n")
	if err := fsys.AtomicWrite(path, append(header, data...), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
