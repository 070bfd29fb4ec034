// Package gravity holds the table of supported planetary bodies and their
// surface gravity.
//
// A Table is built once from the built-in defaults plus optional overrides and
// is read-only afterwards, so it can be shared freely between goroutines.
package gravity

import "sort"

// Built-in body identifiers.
const (
	Earth = "earth"
	Moon  = "moon"
	Mars  = "mars"
)

// defaults are the built-in gravitational accelerations in m/s².
var defaults = map[string]float64{
	Earth: 9.807,
	Moon:  1.62,
	Mars:  3.711,
}

// Entry is a single body in the table.
type Entry struct {
	Body    string  `json:"body"`
	Gravity float64 `json:"gravity"`
}

// Table maps body identifiers to gravitational acceleration.
// Identifiers are case-sensitive.
type Table struct {
	bodies map[string]float64
}

// Defaults returns a copy of the built-in entries.
func Defaults() map[string]float64 {
	out := make(map[string]float64, len(defaults))
	for body, g := range defaults {
		out[body] = g
	}
	return out
}

// New creates a Table from the defaults merged with overrides.
// An override wins when it names a built-in body.
func New(overrides map[string]float64) *Table {
	bodies := Defaults()
	for body, g := range overrides {
		bodies[body] = g
	}
	return &Table{bodies: bodies}
}

// Lookup returns the gravity for body.
func (t *Table) Lookup(body string) (float64, bool) {
	g, ok := t.bodies[body]
	return g, ok
}

// Bodies returns the supported body identifiers in sorted order.
func (t *Table) Bodies() []string {
	names := make([]string, 0, len(t.bodies))
	for body := range t.bodies {
		names = append(names, body)
	}
	sort.Strings(names)
	return names
}

// Entries returns every body with its gravity, sorted by body.
func (t *Table) Entries() []Entry {
	names := t.Bodies()
	entries := make([]Entry, 0, len(names))
	for _, body := range names {
		entries = append(entries, Entry{Body: body, Gravity: t.bodies[body]})
	}
	return entries
}
