package engine

import (
	"github.com/danieljhkim/missionfuel/internal/planner"
)

// FuelResult represents the fuel computed for a single step.
type FuelResult struct {
	Mass   float64 `json:"mass"`
	Action string  `json:"action"`
	Body   string  `json:"body"`

	// Base is the fuel from the action formula alone
	Base int64 `json:"base"`

	// Carry is the fuel needed to carry Base
	Carry int64 `json:"carry"`

	// Fuel is Base + Carry
	Fuel int64 `json:"fuel"`
}

// MissionResult represents a planned mission.
type MissionResult struct {
	// Mass is the dry mass of the ship
	Mass float64 `json:"mass"`

	// Steps echoes the flight path in "action:body" form
	Steps []string `json:"steps"`

	// Legs is the per-step breakdown in chronological order
	Legs []planner.Leg `json:"legs"`

	// TotalFuel is the fuel required for the whole mission
	TotalFuel int64 `json:"total_fuel"`

	// Fingerprint identifies the (mass, path) input
	Fingerprint string `json:"fingerprint"`
}

// ValidateResult represents a successful validation.
type ValidateResult struct {
	Valid bool `json:"valid"`
	Steps int  `json:"steps"`
}
