// Package engine provides the service layer for missionfuel operations.
//
// The engine sits between the front ends (CLI and HTTP service) and the
// domain packages. It checks request inputs, parses flight paths, runs the
// planner, and shapes results for rendering.
//
// Key components:
//   - Engine: the API surface called by the CLI and the HTTP handlers
//   - Fuel: single-step fuel with its base/carry breakdown
//   - Mission: per-leg mission plan, total fuel and input fingerprint
//   - Validate: fail-fast flight path validation
package engine

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/danieljhkim/missionfuel/internal/fuel"
	"github.com/danieljhkim/missionfuel/internal/gravity"
	"github.com/danieljhkim/missionfuel/internal/hash"
	"github.com/danieljhkim/missionfuel/internal/planner"
)

// Engine orchestrates all missionfuel operations.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	calc    *fuel.Calculator
	planner *planner.Planner
	hasher  hash.Hasher
}

// New creates a new Engine with the given dependencies.
func New(table *gravity.Table, hasher hash.Hasher) *Engine {
	calc := fuel.NewCalculator(table)
	return &Engine{
		calc:    calc,
		planner: planner.New(calc),
		hasher:  hasher,
	}
}

// Planets returns the gravity table entries.
func (e *Engine) Planets(ctx context.Context) []gravity.Entry {
	return e.calc.Gravity().Entries()
}

// MaxMass is the largest dry mass accepted, in kilograms. Fuel for
// missions of realistic length stays well inside int64 below it.
const MaxMass = 1e15

// checkMass rejects masses the formulas cannot meaningfully use.
func checkMass(mass float64) error {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return fmt.Errorf("%w: %v (must be a non-negative number)", ErrInvalidMass, mass)
	}
	if mass > MaxMass {
		return fmt.Errorf("%w: %v (must not exceed %g kg)", ErrInvalidMass, mass, MaxMass)
	}
	return nil
}

// fingerprint identifies a mission input.
func (e *Engine) fingerprint(mass float64, path planner.Path) string {
	parts := append([]string{strconv.FormatFloat(mass, 'f', -1, 64)}, path.Strings()...)
	return e.hasher.HashParts(parts...)
}
