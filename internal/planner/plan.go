package planner

import "github.com/danieljhkim/missionfuel/internal/fuel"

// Step is a single flight instruction.
type Step struct {
	// Action is the flight verb: "launch" or "land"
	Action fuel.Action `json:"action"`

	// Body is the planetary body identifier, e.g. "earth"
	Body string `json:"body"`
}

// String returns the step in "action:body" form.
func (s Step) String() string {
	return string(s.Action) + ":" + s.Body
}

// Path is a chronologically ordered list of steps.
type Path []Step

// Strings returns every step in "action:body" form.
func (p Path) Strings() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.String()
	}
	return out
}

// MissionPlan is the result of planning a mission.
type MissionPlan struct {
	// Mass is the dry mass the mission started from
	Mass float64 `json:"mass"`

	// Legs are the per-step results in chronological order
	Legs []Leg `json:"legs"`

	// TotalFuel is the fuel added across all legs
	TotalFuel int64 `json:"total_fuel"`
}

// Leg records the fuel computed for one step of the mission.
type Leg struct {
	// Index is the step's position in the original path
	Index int `json:"index"`

	// Step is the flight step
	Step Step `json:"step"`

	// Mass is the mass carried into this step, including fuel for later steps
	Mass float64 `json:"mass"`

	// Base is the fuel from the action formula alone
	Base int64 `json:"base"`

	// Carry is the fuel needed to carry Base
	Carry int64 `json:"carry"`

	// Fuel is Base + Carry
	Fuel int64 `json:"fuel"`
}

// newMissionPlan creates an empty plan with room for n legs.
func newMissionPlan(mass float64, n int) *MissionPlan {
	return &MissionPlan{
		Mass: mass,
		Legs: make([]Leg, n),
	}
}
