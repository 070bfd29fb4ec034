package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danieljhkim/missionfuel/internal/config"
	"github.com/danieljhkim/missionfuel/internal/ctxlog"
	"github.com/danieljhkim/missionfuel/internal/engine"
	"github.com/danieljhkim/missionfuel/internal/gravity"
	"github.com/danieljhkim/missionfuel/internal/hash"
)

// app bundles everything a command needs.
type app struct {
	cfg    *config.Config
	engine *engine.Engine
	logger *slog.Logger
}

// newApp loads configuration and creates an engine with real implementations
// of all dependencies.
func newApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfgPath := opts.configPath
	if cfgPath == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get config paths: %w", err)
		}
		cfgPath = paths.Config
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	overrides, err := parseGravityFlags(opts.gravity)
	if err != nil {
		return nil, err
	}
	cfg.MergeGravity(overrides)
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := ctxlog.New(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		engine: engine.New(gravity.New(cfg.Gravity), hash.NewSHA256Hasher()),
		logger: logger,
	}, nil
}

// context returns the command context carrying the app logger.
func (a *app) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctxlog.WithLogger(ctx, a.logger)
}

// outputFormat resolves --format, then --json, then the configured default.
func (a *app) outputFormat(cmd *cobra.Command, opts *rootOptions) (string, error) {
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		switch f.Value.String() {
		case config.FormatTable, config.FormatJSON, config.FormatSimple:
			return f.Value.String(), nil
		default:
			return "", fmt.Errorf("unknown format %q (expected table, json or simple)", f.Value.String())
		}
	}
	if opts.jsonOutput {
		return config.FormatJSON, nil
	}
	return a.cfg.Output.Format, nil
}

func parseGravityFlags(flags map[string]string) (map[string]float64, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(flags))
	for body, raw := range flags {
		g, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --gravity value for %s: %q", body, raw)
		}
		out[body] = g
	}
	return out, nil
}

func parseMass(raw string) (float64, error) {
	mass, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid mass %q: expected a number of kilograms", raw)
	}
	return mass, nil
}

// negativeMassFlagError reports a negative mass that pflag took for a
// shorthand flag (e.g. "-5") as an invalid mass.
func negativeMassFlagError(cmd *cobra.Command, err error) error {
	var notExist *pflag.NotExistError
	if errors.As(err, &notExist) {
		raw := notExist.GetSpecifiedShortnames()
		if _, perr := strconv.ParseFloat(raw, 64); perr == nil {
			return fmt.Errorf("%w: -%s (must be a non-negative number)", engine.ErrInvalidMass, raw)
		}
	}
	return err
}

func formatMass(mass float64) string {
	return strconv.FormatFloat(mass, 'f', -1, 64)
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
