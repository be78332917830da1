package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/world"
)

type cell struct {
	r     rune
	style tcell.Style
}

// fakeCanvas records drawn cells in memory.
type fakeCanvas struct {
	w, h  int
	cells map[[2]int]cell
	shown int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (c *fakeCanvas) Clear()           { c.cells = make(map[[2]int]cell) }
func (c *fakeCanvas) Show()            { c.shown++ }
func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) at(x, y int) (cell, bool) {
	v, ok := c.cells[[2]int{x, y}]
	return v, ok
}

func (c *fakeCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = cell{r: r, style: style}
}

func fg(s tcell.Style) tcell.Color {
	f, _, _ := s.Decompose()
	return f
}

// smallWorld is a 12x8 map with a room spanning x 1..6, y 1..5 and a goblin at (5,2).
func smallWorld() (*world.Map, *entity.World, entity.ID) {
	m := world.NewMap(12, 8)
	for y := 1; y <= 5; y++ {
		for x := 1; x <= 6; x++ {
			m.Tiles[m.Index(x, y)] = world.TileFloor
		}
	}
	ents := entity.NewWorld()
	id := ents.Create()
	ents.Positions.Set(id, entity.Position{X: 5, Y: 2})
	ents.Renderables.Set(id, entity.Renderable{Glyph: 'g', FG: tcell.ColorRed, BG: tcell.ColorBlack})
	return m, ents, id
}

func TestRenderHidesUnrevealedTiles(t *testing.T) {
	m, ents, _ := smallWorld()
	canvas := newFakeCanvas(12, 9)

	NewRenderer(canvas).Render(m, ents, world.Point{X: 2, Y: 2}, "")

	if len(canvas.cells) != 0 {
		t.Errorf("drew %d cells with nothing revealed", len(canvas.cells))
	}
	if canvas.shown != 1 {
		t.Errorf("Show called %d times, want 1", canvas.shown)
	}
}

func TestRenderFogOfWar(t *testing.T) {
	m, ents, _ := smallWorld()
	m.Reveal(world.Point{X: 2, Y: 2}) // visible floor
	m.Reveal(world.Point{X: 0, Y: 2}) // visible wall
	m.Revealed[m.Index(3, 3)] = true  // remembered floor
	m.Revealed[m.Index(7, 3)] = true  // remembered wall
	canvas := newFakeCanvas(12, 9)

	NewRenderer(canvas).Render(m, ents, world.Point{X: 2, Y: 2}, "")

	tests := []struct {
		x, y int
		r    rune
		fg   tcell.Color
	}{
		{2, 2, world.TileFloor.Rune(), floorVisible},
		{0, 2, world.TileWall.Rune(), wallVisible},
		{3, 3, world.TileFloor.Rune(), floorSeen},
		{7, 3, world.TileWall.Rune(), wallSeen},
	}
	for _, tt := range tests {
		c, ok := canvas.at(tt.x, tt.y)
		if !ok {
			t.Errorf("(%d,%d) not drawn", tt.x, tt.y)
			continue
		}
		if c.r != tt.r || fg(c.style) != tt.fg {
			t.Errorf("(%d,%d) = %q/%v, want %q/%v", tt.x, tt.y, c.r, fg(c.style), tt.r, tt.fg)
		}
	}
	if len(canvas.cells) != len(tests) {
		t.Errorf("drew %d cells, want %d", len(canvas.cells), len(tests))
	}
}

func TestRenderEntitiesOnlyWhenVisible(t *testing.T) {
	m, ents, _ := smallWorld()
	m.Revealed[m.Index(5, 2)] = true
	canvas := newFakeCanvas(12, 9)
	r := NewRenderer(canvas)

	r.Render(m, ents, world.Point{X: 2, Y: 2}, "")
	if c, _ := canvas.at(5, 2); c.r == 'g' {
		t.Error("goblin drawn on a tile that is only remembered")
	}

	m.Reveal(world.Point{X: 5, Y: 2})
	r.Render(m, ents, world.Point{X: 2, Y: 2}, "")
	c, ok := canvas.at(5, 2)
	if !ok || c.r != 'g' || fg(c.style) != tcell.ColorRed {
		t.Errorf("goblin cell = %+v, want red g", c)
	}
}

func TestRenderStatusLine(t *testing.T) {
	m, ents, _ := smallWorld()
	canvas := newFakeCanvas(40, 9)

	NewRenderer(canvas).Render(m, ents, world.Point{}, "Turn 3")

	want := "Turn 3"
	for i, ch := range want {
		if c, _ := canvas.at(i, 8); c.r != ch {
			t.Fatalf("status column %d = %q, want %q", i, c.r, ch)
		}
	}
}

func TestViewport(t *testing.T) {
	m := world.NewMap(80, 50)

	tests := []struct {
		name         string
		camera       world.Point
		viewW, viewH int
		wantX, wantY int
	}{
		{"centred", world.Point{X: 40, Y: 25}, 20, 10, 30, 20},
		{"clamped at origin", world.Point{X: 2, Y: 1}, 20, 10, 0, 0},
		{"clamped at far edge", world.Point{X: 79, Y: 49}, 20, 10, 60, 40},
		{"view larger than map", world.Point{X: 40, Y: 25}, 100, 60, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Viewport(m, tt.camera, tt.viewW, tt.viewH)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Viewport() = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRenderScrollsWithCamera(t *testing.T) {
	m := world.NewMap(80, 50)
	m.Tiles[m.Index(70, 40)] = world.TileFloor
	m.Reveal(world.Point{X: 70, Y: 40})
	canvas := newFakeCanvas(20, 11)

	NewRenderer(canvas).Render(m, entity.NewWorld(), world.Point{X: 70, Y: 40}, "")

	// viewport is 20x10 centred on (70,40): offset (60,35)
	if c, ok := canvas.at(10, 5); !ok || c.r != world.TileFloor.Rune() {
		t.Errorf("camera tile not drawn at screen centre, got %+v", c)
	}
}

func TestStatusLine(t *testing.T) {
	got := StatusLine(4, world.Point{X: 10, Y: 7})
	want := "Turn 4 | (10,7) | arrows/hjklyubn move, q quits"
	if got != want {
		t.Errorf("StatusLine() = %q, want %q", got, want)
	}
}
