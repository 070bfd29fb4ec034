package engine

// FuelRequest represents a request for the fuel of a single step.
type FuelRequest struct {
	// Mass is the mass to move in kg
	Mass float64

	// Action is "launch" or "land"
	Action string

	// Body is the planetary body identifier
	Body string
}

// MissionRequest represents a request to plan a whole mission.
type MissionRequest struct {
	// Mass is the dry mass of the ship in kg
	Mass float64

	// Steps are "action:body" tokens in chronological order
	Steps []string
}

// ValidateRequest represents a request to validate a flight path.
type ValidateRequest struct {
	// Steps are "action:body" tokens in chronological order
	Steps []string
}
