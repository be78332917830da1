package world

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/rng"
	"github.com/samdwyer/cavern/internal/telemetry"
)

const (
	defaultMaxRooms = 30
	minRoomSize     = 6
	maxRoomSize     = 10

	// MinDimension is the smallest width or height that fits the largest room plus a border.
	MinDimension = maxRoomSize + 2
)

// RoomParams tunes room-and-corridor generation.
type RoomParams struct {
	MaxRooms int // Placement attempts; rejected candidates still use one up
	MinSize  int // Smallest room width/height, inclusive
	MaxSize  int // Largest room width/height, inclusive
}

// DefaultRoomParams returns the standard generation parameters.
func DefaultRoomParams() RoomParams {
	return RoomParams{
		MaxRooms: defaultMaxRooms,
		MinSize:  minRoomSize,
		MaxSize:  maxRoomSize,
	}
}

// Generate builds a room-and-corridor map with the default parameters.
func Generate(ctx context.Context, width, height int, src *rng.Source) *Map {
	m := NewMap(width, height)
	m.GenerateRooms(ctx, src, DefaultRoomParams())
	return m
}

// GenerateRooms places non-overlapping rooms by rejection sampling and joins each new
// room to the previously placed one with an L-shaped corridor.
// Fewer than MaxRooms rooms may result; that is not an error.
func (m *Map) GenerateRooms(ctx context.Context, src *rng.Source, p RoomParams) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	log := logger.Component("world").WithFields(logrus.Fields{
		"width":  m.Width,
		"height": m.Height,
	})
	startTime := time.Now()
	rejected := 0

	for attempt := 0; attempt < p.MaxRooms; attempt++ {
		w := src.Range(p.MinSize, p.MaxSize)
		h := src.Range(p.MinSize, p.MaxSize)
		x := src.RollDice(1, m.Width-w-1) - 1
		y := src.RollDice(1, m.Height-h-1) - 1
		if x < 0 || y < 0 {
			// Map too small for this room size
			rejected++
			continue
		}

		room := NewRect(x, y, w, h)
		if m.overlapsAny(room) {
			rejected++
			log.WithField("attempt", attempt).Debug("room candidate overlaps, discarded")
			continue
		}

		m.carveRoom(room)

		if len(m.Rooms) > 0 {
			m.carveCorridor(src, m.Rooms[len(m.Rooms)-1], room)
		}

		m.Rooms = append(m.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", m.Width),
		attribute.Int("dungeon.height", m.Height),
		attribute.Int("dungeon.attempts", p.MaxRooms),
		attribute.Int("dungeon.room_count", len(m.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	log.WithFields(logrus.Fields{
		"rooms":    len(m.Rooms),
		"rejected": rejected,
	}).Info("dungeon generated")
}

func (m *Map) overlapsAny(room Rect) bool {
	for _, other := range m.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom turns the room interior into floor, leaving its top and left edge as wall.
func (m *Map) carveRoom(room Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if m.InBounds(x, y) {
				m.setFloor(x, y)
			}
		}
	}
}

// carveCorridor joins the centres of two rooms, randomly choosing which leg comes first.
func (m *Map) carveCorridor(src *rng.Source, prev, next Rect) {
	prevX, prevY := prev.Center()
	newX, newY := next.Center()

	if src.RollDice(1, 2) == 1 {
		m.carveHorizontalTunnel(prevX, newX, prevY)
		m.carveVerticalTunnel(prevY, newY, newX)
	} else {
		m.carveVerticalTunnel(prevY, newY, prevX)
		m.carveHorizontalTunnel(prevX, newX, newY)
	}
}

func (m *Map) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) {
			m.setFloor(x, y)
		}
	}
}

func (m *Map) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) {
			m.setFloor(x, y)
		}
	}
}
