package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envOverrides are the MISSIONFUEL_* variables. Zero values mean "not set".
type envOverrides struct {
	Format   string `env:"MISSIONFUEL_FORMAT"`
	LogLevel string `env:"MISSIONFUEL_LOG_LEVEL"`
	Addr     string `env:"MISSIONFUEL_ADDR"`

	// Gravity is "body:value,body:value"
	Gravity map[string]float64 `env:"MISSIONFUEL_GRAVITY"`

	MaxRestarts   int           `env:"MISSIONFUEL_MAX_RESTARTS" envDefault:"-1"`
	RestartWindow time.Duration `env:"MISSIONFUEL_RESTART_WINDOW"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var o envOverrides
	if err := ParseEnv(&o); err != nil {
		return err
	}

	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.Addr != "" {
		cfg.Server.Addr = o.Addr
	}
	cfg.MergeGravity(o.Gravity)
	if o.MaxRestarts >= 0 {
		cfg.Supervisor.MaxRestarts = o.MaxRestarts
	}
	if o.RestartWindow > 0 {
		cfg.Supervisor.Window = o.RestartWindow
	}
	return nil
}
