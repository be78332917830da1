package systems

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/telemetry"
)

// Policy names accepted by NewPolicy.
const (
	PolicyIdle     = "idle"
	PolicyApproach = "approach"
)

// Policy decides what a monster wants to do this tick. It may only read the world;
// any move it returns is staged and applied at the commit point.
type Policy interface {
	Decide(res *Resources, id entity.ID, pos entity.Position, vs *entity.Viewshed) (Intent, bool)
}

// NewPolicy returns the policy registered under name.
func NewPolicy(name string) (Policy, error) {
	switch name {
	case "", PolicyIdle:
		return Idle{}, nil
	case PolicyApproach:
		return Approach{}, nil
	default:
		return nil, fmt.Errorf("unknown AI policy %q", name)
	}
}

// MonsterAI runs the monster decision phase.
type MonsterAI struct {
	Policy Policy
}

// Run asks the policy about every sighted monster and queues the resulting moves.
// It returns the number of moves queued.
func (ai MonsterAI) Run(ctx context.Context, res *Resources) int {
	_, span := telemetry.Tracer("systems").Start(ctx, "systems.ai")
	defer span.End()

	if ai.Policy == nil {
		return 0
	}

	ents := res.Entities
	queued := 0
	for _, id := range ents.Monsters.IDs() {
		pos, ok := ents.Positions.Get(id)
		if !ok {
			continue
		}
		vs, ok := ents.Viewsheds.Get(id)
		if !ok {
			continue
		}

		intent, ok := ai.Policy.Decide(res, id, *pos, vs)
		if !ok {
			continue
		}
		ents.Queue(moveCommand{res: res, id: id, intent: intent})
		queued++
	}

	span.SetAttributes(attribute.Int("ai.queued_moves", queued))
	return queued
}

type moveCommand struct {
	res    *Resources
	id     entity.ID
	intent Intent
}

func (c moveCommand) Apply(*entity.World) {
	TryMove(c.res, c.id, c.intent.DX, c.intent.DY)
}

// Idle monsters never move; they only note when the player is in view.
type Idle struct{}

// Decide implements Policy.
func (Idle) Decide(res *Resources, id entity.ID, _ entity.Position, vs *entity.Viewshed) (Intent, bool) {
	if vs.CanSee(res.PlayerPos) {
		logger.Component("ai").WithFields(logrus.Fields{
			"monster": monsterName(res, id),
			"x":       res.PlayerPos.X,
			"y":       res.PlayerPos.Y,
		}).Info("monster sees the player")
	}
	return Intent{}, false
}

// Approach monsters step toward the player when they can see them.
// They stop once adjacent; there is no pathfinding, so walls can stall them.
type Approach struct{}

// Decide implements Policy.
func (Approach) Decide(res *Resources, _ entity.ID, pos entity.Position, vs *entity.Viewshed) (Intent, bool) {
	target := res.PlayerPos
	if !vs.CanSee(target) {
		return Intent{}, false
	}

	dx, dy := target.X-pos.X, target.Y-pos.Y
	if chebyshev(dx, dy) <= 1 {
		return Intent{}, false
	}
	return Intent{DX: sign(dx), DY: sign(dy)}, true
}

func monsterName(res *Resources, id entity.ID) string {
	if name, ok := res.Entities.Names.Get(id); ok {
		return string(*name)
	}
	return fmt.Sprintf("entity %d", id)
}

func chebyshev(dx, dy int) int {
	return max(abs(dx), abs(dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

