// Package game provides the level preview loop and its configuration.
package game

// State represents the current preview mode.
type State int

const (
	// StateExplore is the default mode where the party moves one tile at a time.
	StateExplore State = iota
	// StateRange overlays every tile the party could reach this turn.
	StateRange
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateRange:
		return "range"
	default:
		return "unknown"
	}
}

// Toggle switches between explore and range modes.
func (s State) Toggle() State {
	if s == StateRange {
		return StateExplore
	}
	return StateRange
}
