// Package game provides world setup, the turn scheduler and the terminal game loop.
package game

// RunState says whose turn it is.
type RunState int

const (
	// StateRunning means the simulation pipeline runs on the next tick.
	StateRunning RunState = iota
	// StatePaused means the scheduler is waiting for a player intent.
	StatePaused
)

// String returns a human-readable state name.
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
