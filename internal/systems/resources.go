// Package systems holds the per-tick simulation steps: visibility, movement and monster AI.
package systems

import (
	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/metrics"
	"github.com/samdwyer/cavern/internal/world"
)

// Resources is the state every system works on. It is passed explicitly to each step.
type Resources struct {
	Map      *world.Map
	Entities *entity.World
	Metrics  *metrics.Collector // nil disables metrics

	// PlayerPos is the last known player location, used by the camera and the AI.
	PlayerPos world.Point
}

// Intent is a requested one-step move.
type Intent struct {
	DX, DY int
}
