package world

import "testing"

func TestNewMapAllWalls(t *testing.T) {
	m := NewMap(12, 9)

	if len(m.Tiles) != 12*9 {
		t.Fatalf("len(Tiles) = %d, want %d", len(m.Tiles), 12*9)
	}
	for i, tile := range m.Tiles {
		if tile != TileWall {
			t.Fatalf("tile %d = %v, want wall", i, tile)
		}
		if m.Revealed[i] || m.Visible[i] {
			t.Fatalf("tile %d starts revealed or visible", i)
		}
	}
	if len(m.Rooms) != 0 {
		t.Errorf("new map has %d rooms, want 0", len(m.Rooms))
	}
}

func TestIndexRoundTrip(t *testing.T) {
	m := NewMap(17, 11)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Index(x, y)
			if idx < 0 || idx >= len(m.Tiles) {
				t.Fatalf("Index(%d,%d) = %d out of range", x, y, idx)
			}
			if p := m.PointAt(idx); p.X != x || p.Y != y {
				t.Fatalf("PointAt(Index(%d,%d)) = %+v", x, y, p)
			}
		}
	}
}

func TestOpacityFollowsTileType(t *testing.T) {
	m := NewMap(5, 5)
	m.setFloor(2, 2)

	if m.IsOpaque(2, 2) {
		t.Error("floor should not be opaque")
	}
	if !m.IsOpaque(1, 2) {
		t.Error("wall should be opaque")
	}
	if !m.IsOpaque(-1, 0) || !m.IsOpaque(5, 5) {
		t.Error("out-of-bounds tiles should read as opaque walls")
	}
}

func TestRevealIsMonotonic(t *testing.T) {
	m := NewMap(5, 5)
	p := Point{X: 3, Y: 1}

	m.Reveal(p)
	if !m.IsVisible(3, 1) || !m.IsRevealed(3, 1) {
		t.Fatal("Reveal should mark both bitmaps")
	}

	m.ClearVisible()
	if m.IsVisible(3, 1) {
		t.Error("ClearVisible left tile visible")
	}
	if !m.IsRevealed(3, 1) {
		t.Error("ClearVisible must not touch revealed tiles")
	}
}

func TestPathfindingHookIsEmpty(t *testing.T) {
	m := NewMap(5, 5)
	if exits := m.Exits(m.Index(2, 2)); len(exits) != 0 {
		t.Errorf("Exits = %v, want none", exits)
	}
	if d := m.PathingDistance(0, 24); d != 1.0 {
		t.Errorf("PathingDistance = %v, want 1", d)
	}
}
