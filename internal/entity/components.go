package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/cavern/internal/world"
)

// Position is an entity's location on the map.
type Position struct {
	X, Y int
}

// Point returns the position as a map point.
func (p Position) Point() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Viewshed caches what an entity can see.
// Dirty means Visible is stale and must be recomputed before use.
type Viewshed struct {
	Visible mapset.Set[world.Point]
	Range   int
	Dirty   bool
}

// NewViewshed creates a dirty viewshed with nothing visible yet.
func NewViewshed(viewRange int) Viewshed {
	return Viewshed{
		Visible: mapset.New[world.Point](),
		Range:   viewRange,
		Dirty:   true,
	}
}

// CanSee returns true if p was visible at the last recompute.
func (v *Viewshed) CanSee(p world.Point) bool {
	return v.Visible.Has(p)
}

// Renderable describes how an entity is drawn.
type Renderable struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

// Name is an entity's display name.
type Name string

// Player tags the entity whose sight drives the shared map visibility.
type Player struct{}

// Monster tags a hostile entity driven by the AI phase.
type Monster struct{}
