// Package fuel computes the fuel required for a single flight step.
//
// A step is a launch from, or a landing on, a planetary body. The fuel for a
// step is the base fuel given by the action formula plus the fuel needed to
// carry that fuel, refined until an increment is no longer positive.
//
// Calculations are pure functions of their inputs and the read-only gravity
// table, so a Calculator is safe for concurrent use.
package fuel

import (
	"fmt"
	"math"

	"github.com/danieljhkim/missionfuel/internal/gravity"
)

// Action is the flight verb of a step.
type Action string

// Supported actions.
const (
	Launch Action = "launch"
	Land   Action = "land"
)

// Breakdown splits the fuel for one step into the base amount and the fuel
// carried for that fuel.
type Breakdown struct {
	Base  int64 `json:"base"`
	Carry int64 `json:"carry"`
}

// Total returns Base + Carry.
func (b Breakdown) Total() int64 {
	return b.Base + b.Carry
}

// Calculator computes per-step fuel against a gravity table.
type Calculator struct {
	gravity *gravity.Table
}

// NewCalculator creates a Calculator for the given table.
func NewCalculator(table *gravity.Table) *Calculator {
	return &Calculator{gravity: table}
}

// Gravity returns the calculator's gravity table.
func (c *Calculator) Gravity() *gravity.Table {
	return c.gravity
}

// Calculate returns the total fuel for moving mass with action on body.
//
// The body is checked before the action. A base result that is zero or
// negative is returned as is.
func (c *Calculator) Calculate(mass float64, action Action, body string) (int64, error) {
	b, err := c.Breakdown(mass, action, body)
	if err != nil {
		return 0, err
	}
	return b.Total(), nil
}

// Breakdown is Calculate with the base and carried fuel reported separately.
func (c *Calculator) Breakdown(mass float64, action Action, body string) (Breakdown, error) {
	g, ok := c.gravity.Lookup(body)
	if !ok {
		return Breakdown{}, unsupportedPlanet(body)
	}

	formula, err := formulaFor(action)
	if err != nil {
		return Breakdown{}, err
	}

	base, err := formula(mass, g)
	if err != nil {
		return Breakdown{}, err
	}
	extra, err := carry(formula, base, g)
	if err != nil {
		return Breakdown{}, err
	}
	if _, err := Add(base, extra); err != nil {
		return Breakdown{}, err
	}
	return Breakdown{Base: base, Carry: extra}, nil
}

type formulaFunc func(mass, gravity float64) (int64, error)

func formulaFor(action Action) (formulaFunc, error) {
	switch action {
	case Launch:
		return launchFuel, nil
	case Land:
		return landFuel, nil
	default:
		return nil, unsupportedAction(action)
	}
}

// Floor is applied once, after the full expression.
func launchFuel(mass, gravity float64) (int64, error) {
	return toInt64(math.Floor(mass*gravity*0.042 - 33))
}

func landFuel(mass, gravity float64) (int64, error) {
	return toInt64(math.Floor(mass*gravity*0.033 - 42))
}

// toInt64 converts a floored value, rejecting anything outside int64.
// 2^63 is exactly representable as a float64; MaxInt64 is not.
func toInt64(v float64) (int64, error) {
	if math.IsNaN(v) || v >= 0x1p63 || v < -0x1p63 {
		return 0, fmt.Errorf("%w: %g kg", ErrFuelOverflow, v)
	}
	return int64(v), nil
}

// Add returns a+b, or ErrFuelOverflow if the sum does not fit in int64.
func Add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d kg", ErrFuelOverflow, a, b)
	}
	return a + b, nil
}

// carry sums the fuel needed to carry fuel, stopping at the first
// increment <= 0. A gravity strong enough to make the increments grow ends
// in ErrFuelOverflow.
func carry(formula formulaFunc, fuel int64, gravity float64) (int64, error) {
	var total int64
	for {
		next, err := formula(float64(fuel), gravity)
		if err != nil {
			return 0, err
		}
		if next <= 0 {
			return total, nil
		}
		if total, err = Add(total, next); err != nil {
			return 0, err
		}
		fuel = next
	}
}
