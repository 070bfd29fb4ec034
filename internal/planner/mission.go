package planner

import (
	"github.com/danieljhkim/missionfuel/internal/fuel"
)

// probeMass is the mass used to check that a step can be calculated at all.
const probeMass = 1

// ValidationError reports the first step of a path that cannot be flown.
type ValidationError struct {
	// Index is the position of the failing step in the path
	Index int

	// Step is the failing step
	Step Step

	// Err is the underlying *fuel.Error, or fuel.ErrFuelOverflow
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Planner computes mission fuel over flight paths.
type Planner struct {
	calc *fuel.Calculator
}

// New creates a Planner using calc for per-step fuel.
func New(calc *fuel.Calculator) *Planner {
	return &Planner{calc: calc}
}

// Validate checks each step in order and returns the first failure.
// Steps after a failing step are not evaluated.
func (p *Planner) Validate(path Path) error {
	for i, step := range path {
		if _, err := p.calc.Calculate(probeMass, step.Action, step.Body); err != nil {
			return &ValidationError{Index: i, Step: step, Err: err}
		}
	}
	return nil
}

// MissionFuel returns the fuel needed to fly path starting from the dry mass.
func (p *Planner) MissionFuel(mass float64, path Path) (int64, error) {
	plan, err := p.Plan(mass, path)
	if err != nil {
		return 0, err
	}
	return plan.TotalFuel, nil
}

// Plan validates path and folds the per-step calculation over it from the
// last step backwards. Each step lifts the dry mass plus the fuel of every
// step after it. Legs are reported in chronological order; path is not
// modified.
func (p *Planner) Plan(mass float64, path Path) (*MissionPlan, error) {
	if err := p.Validate(path); err != nil {
		return nil, err
	}

	plan := newMissionPlan(mass, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		step := path[i]
		current := mass + float64(plan.TotalFuel)

		b, err := p.calc.Breakdown(current, step.Action, step.Body)
		if err != nil {
			return nil, &ValidationError{Index: i, Step: step, Err: err}
		}

		total, err := fuel.Add(plan.TotalFuel, b.Total())
		if err != nil {
			return nil, &ValidationError{Index: i, Step: step, Err: err}
		}

		plan.Legs[i] = Leg{
			Index: i,
			Step:  step,
			Mass:  current,
			Base:  b.Base,
			Carry: b.Carry,
			Fuel:  b.Total(),
		}
		plan.TotalFuel = total
	}

	return plan, nil
}
