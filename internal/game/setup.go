package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/metrics"
	"github.com/samdwyer/cavern/internal/rng"
	"github.com/samdwyer/cavern/internal/systems"
	"github.com/samdwyer/cavern/internal/telemetry"
	"github.com/samdwyer/cavern/internal/world"
)

// ErrNoRooms means generation placed no rooms, so there is nowhere to put the player.
var ErrNoRooms = errors.New("generated map has no rooms")

// BuildMap generates the map for the configured layout.
func BuildMap(ctx context.Context, cfg Config, src *rng.Source) *world.Map {
	if cfg.Layout == LayoutScatter {
		return world.GenerateScatter(ctx, cfg.Width, cfg.Height, src, world.DefaultScatterWalls)
	}

	params := world.DefaultRoomParams()
	params.MaxRooms = cfg.MaxRooms
	m := world.NewMap(cfg.Width, cfg.Height)
	m.GenerateRooms(ctx, src, params)
	return m
}

// Setup generates the map and populates it.
func Setup(ctx context.Context, cfg Config, src *rng.Source, registry *gamedata.MonsterRegistry, collector *metrics.Collector) (*systems.Resources, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	m := BuildMap(ctx, cfg, src)
	collector.SetRooms(len(m.Rooms))

	res, err := Populate(m, cfg.ViewRange, src, registry)
	if err != nil {
		span.SetAttributes(attribute.String("error", err.Error()))
		return nil, err
	}
	res.Metrics = collector

	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(m.Rooms)),
		attribute.Int("player.start_x", res.PlayerPos.X),
		attribute.Int("player.start_y", res.PlayerPos.Y),
		attribute.Int("monsters", res.Entities.Monsters.Len()),
	)
	logger.Component("game").WithFields(logrus.Fields{
		"rooms":    len(m.Rooms),
		"monsters": res.Entities.Monsters.Len(),
		"start_x":  res.PlayerPos.X,
		"start_y":  res.PlayerPos.Y,
	}).Info("world ready")

	return res, nil
}

// Populate spawns the player at the centre of the first room and one monster at the
// centre of every other room.
func Populate(m *world.Map, viewRange int, src *rng.Source, registry *gamedata.MonsterRegistry) (*systems.Resources, error) {
	if len(m.Rooms) == 0 {
		return nil, ErrNoRooms
	}

	res := &systems.Resources{
		Map:      m,
		Entities: entity.NewWorld(),
	}

	px, py := m.Rooms[0].Center()
	spawnPlayer(res, px, py, viewRange)

	for i, room := range m.Rooms[1:] {
		def := registry.SpawnRandom(src)
		if def == nil {
			return nil, fmt.Errorf("spawning monster %d: registry has nothing to spawn", i)
		}
		x, y := room.Center()
		spawnMonster(res, def, i, x, y, viewRange)
	}
	return res, nil
}

func spawnPlayer(res *systems.Resources, x, y, viewRange int) entity.ID {
	ents := res.Entities
	id := ents.Create()
	ents.Players.Set(id, entity.Player{})
	ents.Names.Set(id, "You")
	ents.Positions.Set(id, entity.Position{X: x, Y: y})
	ents.Renderables.Set(id, entity.Renderable{
		Glyph: '@',
		FG:    tcell.ColorYellow,
		BG:    tcell.ColorBlack,
	})
	ents.Viewsheds.Set(id, entity.NewViewshed(viewRange))
	res.PlayerPos = world.Point{X: x, Y: y}
	return id
}

func spawnMonster(res *systems.Resources, def *gamedata.MonsterDef, n, x, y, viewRange int) entity.ID {
	if def.ViewRange > 0 {
		viewRange = def.ViewRange
	}

	ents := res.Entities
	id := ents.Create()
	ents.Monsters.Set(id, entity.Monster{})
	ents.Names.Set(id, entity.Name(fmt.Sprintf("%s #%d", def.Name, n)))
	ents.Positions.Set(id, entity.Position{X: x, Y: y})
	ents.Renderables.Set(id, entity.Renderable{
		Glyph: def.GlyphRune(),
		FG:    def.TCellColor(),
		BG:    tcell.ColorBlack,
	})
	ents.Viewsheds.Set(id, entity.NewViewshed(viewRange))
	return id
}
