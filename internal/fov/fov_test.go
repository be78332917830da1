package fov

import (
	"context"
	"testing"

	"github.com/samdwyer/cavern/internal/rng"
	"github.com/samdwyer/cavern/internal/world"
)

// openMap creates an all-floor map for FOV tests.
func openMap(width, height int) *world.Map {
	m := world.NewMap(width, height)
	for i := range m.Tiles {
		m.Tiles[i] = world.TileFloor
	}
	return m
}

func TestOriginAlwaysVisible(t *testing.T) {
	m := world.NewMap(5, 5) // solid rock
	for _, radius := range []int{0, 1, 8} {
		got := Compute(world.Point{X: 2, Y: 2}, radius, m)
		if !got.Has(world.Point{X: 2, Y: 2}) {
			t.Errorf("radius %d: origin not visible", radius)
		}
	}
}

func TestOutOfBoundsOriginSeesNothing(t *testing.T) {
	m := openMap(5, 5)
	if got := Compute(world.Point{X: -1, Y: 2}, 5, m); got.Size() != 0 {
		t.Errorf("got %d visible tiles for off-map origin, want 0", got.Size())
	}
}

func TestRangeIsEuclideanDisc(t *testing.T) {
	m := openMap(31, 31)
	origin := world.Point{X: 15, Y: 15}
	const radius = 5

	got := Compute(origin, radius, m)

	want := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := world.Point{X: x, Y: y}
			inRange := p.DistanceSq(origin) <= radius*radius
			if inRange {
				want++
			}
			if got.Has(p) != inRange {
				t.Errorf("(%d,%d): visible=%v, in range=%v", x, y, got.Has(p), inRange)
			}
		}
	}
	if got.Size() != want {
		t.Errorf("visible count = %d, want %d", got.Size(), want)
	}
}

func TestWallBlocksSight(t *testing.T) {
	m := openMap(20, 11)
	for y := 0; y < m.Height; y++ {
		m.Tiles[m.Index(5, y)] = world.TileWall
	}

	got := Compute(world.Point{X: 2, Y: 5}, 12, m)

	if !got.Has(world.Point{X: 5, Y: 5}) {
		t.Error("the wall itself should be visible")
	}
	got.Each(func(p world.Point) {
		if p.X > 5 {
			t.Errorf("(%d,%d) is behind a solid wall but visible", p.X, p.Y)
		}
	})
}

func TestPillarCastsShadow(t *testing.T) {
	m := openMap(21, 21)
	m.Tiles[m.Index(12, 10)] = world.TileWall

	got := Compute(world.Point{X: 10, Y: 10}, 10, m)

	if !got.Has(world.Point{X: 11, Y: 10}) {
		t.Error("tile in front of pillar should be visible")
	}
	for x := 13; x <= 20; x++ {
		if got.Has(world.Point{X: x, Y: 10}) {
			t.Errorf("(%d,10) is directly behind the pillar but visible", x)
		}
	}
}

func TestSingleRoomScenario(t *testing.T) {
	// One room on a 10x10 map, viewer in the middle with range 8
	m := world.NewMap(10, 10)
	room := world.NewRect(0, 0, 8, 8)
	m.Rooms = append(m.Rooms, room)
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.Tiles[m.Index(x, y)] = world.TileFloor
		}
	}
	cx, cy := room.Center()
	origin := world.Point{X: cx, Y: cy}

	got := Compute(origin, 8, m)

	if !got.Has(origin) {
		t.Fatal("centre not visible")
	}
	got.Each(func(p world.Point) {
		if p.DistanceSq(origin) > 64 {
			t.Errorf("(%d,%d) beyond range 8 is visible", p.X, p.Y)
		}
	})

	visibleFloor := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tile(x, y) != world.TileFloor {
				continue
			}
			if !got.Has(world.Point{X: x, Y: y}) {
				t.Errorf("floor (%d,%d) not visible in an empty room", x, y)
				continue
			}
			visibleFloor++
		}
	}
	if visibleFloor != 64 {
		t.Errorf("visible floor tiles = %d, want 64", visibleFloor)
	}
}

func TestVisibilityIsSymmetricBetweenFloorTiles(t *testing.T) {
	m := world.GenerateScatter(context.Background(), 24, 16, rng.New(11), 60)
	const radius = 30

	var floors []world.Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.IsPassable(x, y) {
				floors = append(floors, world.Point{X: x, Y: y})
			}
		}
	}

	views := make(map[edge]bool)
	for _, a := range floors {
		fa := Compute(a, radius, m)
		fa.Each(func(b world.Point) {
			if m.IsPassable(b.X, b.Y) {
				views[pair(a, b)] = true
			}
		})
	}

	for k := range views {
		if !views[k.reverse()] {
			t.Errorf("%+v sees %+v but not the other way round", k.a, k.b)
		}
	}
}

type edge struct{ a, b world.Point }

func (e edge) reverse() edge { return edge{a: e.b, b: e.a} }

func pair(a, b world.Point) edge { return edge{a: a, b: b} }
