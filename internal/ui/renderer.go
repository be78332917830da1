package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/world"
)

var (
	floorVisible = gamedata.MustParseHexColor("#008080")
	wallVisible  = gamedata.MustParseHexColor("#00FF00")
	floorSeen    = gamedata.MustParseHexColor("#404040")
	wallSeen     = gamedata.MustParseHexColor("#808080")
)

// statusLines is the number of rows reserved below the map.
const statusLines = 1

// Renderer draws the map and entities with fog of war.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Viewport returns the map offset that keeps camera on screen without scrolling past the map.
func Viewport(m *world.Map, camera world.Point, viewW, viewH int) (int, int) {
	return offset(camera.X, viewW, m.Width), offset(camera.Y, viewH, m.Height)
}

func offset(center, view, size int) int {
	if view >= size {
		return 0
	}
	o := center - view/2
	if o < 0 {
		return 0
	}
	if o > size-view {
		return size - view
	}
	return o
}

// Render draws revealed tiles (greyed when out of sight) and every renderable entity on a
// currently visible tile, centred on camera.
func (r *Renderer) Render(m *world.Map, ents *entity.World, camera world.Point, status string) {
	r.canvas.Clear()

	screenW, screenH := r.canvas.Size()
	viewH := screenH - statusLines
	if viewH < 1 {
		viewH = screenH
	}
	ox, oy := Viewport(m, camera, screenW, viewH)

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < screenW; sx++ {
			x, y := sx+ox, sy+oy
			if !m.IsRevealed(x, y) {
				continue
			}
			tile := m.Tile(x, y)
			r.canvas.SetContent(sx, sy, tile.Rune(), tileStyle(tile, m.IsVisible(x, y)))
		}
	}

	ents.Renderables.Each(func(id entity.ID, rend *entity.Renderable) {
		pos, ok := ents.Positions.Get(id)
		if !ok || !m.IsVisible(pos.X, pos.Y) {
			return
		}
		sx, sy := pos.X-ox, pos.Y-oy
		if sx < 0 || sy < 0 || sx >= screenW || sy >= viewH {
			return
		}
		style := tcell.StyleDefault.Foreground(rend.FG).Background(rend.BG)
		r.canvas.SetContent(sx, sy, rend.Glyph, style)
	})

	if status != "" && screenH > viewH {
		r.RenderMessage(status, screenH-1)
	}

	r.canvas.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(i, y, ch, style)
	}
}

// StatusLine formats the bottom row shown under the map.
func StatusLine(turn int, pos world.Point) string {
	return fmt.Sprintf("Turn %d | (%d,%d) | arrows/hjklyubn move, q quits", turn, pos.X, pos.Y)
}

func tileStyle(tile world.TileType, visible bool) tcell.Style {
	var fg tcell.Color
	switch {
	case tile == world.TileFloor && visible:
		fg = floorVisible
	case tile == world.TileFloor:
		fg = floorSeen
	case visible:
		fg = wallVisible
	default:
		fg = wallSeen
	}
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}
