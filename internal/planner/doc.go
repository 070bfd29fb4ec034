// Package planner handles mission-level fuel planning.
//
// The planner validates an ordered flight path and folds the per-step fuel
// calculation over it in reverse, so that every chronologically earlier step
// lifts the fuel required by the steps after it.
//
// Key responsibilities:
//   - Parse "action:body" tokens into a Path
//   - Validate a Path, stopping at the first unsupported step
//   - Compute total mission fuel and a per-leg MissionPlan
package planner
