package systems

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/fov"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/telemetry"
)

// Visibility recomputes dirty viewsheds. Only the player's sight is copied into the map.
type Visibility struct{}

// Run recomputes every dirty viewshed and returns how many were recomputed.
// Clean viewsheds are skipped entirely.
func (Visibility) Run(ctx context.Context, res *Resources) int {
	_, span := telemetry.Tracer("systems").Start(ctx, "systems.visibility")
	defer span.End()

	recomputed := 0
	ents := res.Entities

	ents.Viewsheds.Each(func(id entity.ID, vs *entity.Viewshed) {
		if !vs.Dirty {
			return
		}
		pos, ok := ents.Positions.Get(id)
		if !ok {
			return
		}

		vs.Dirty = false
		vs.Visible = fov.Compute(pos.Point(), vs.Range, res.Map)
		recomputed++

		if !ents.Players.Has(id) {
			return
		}

		res.Map.ClearVisible()
		vs.Visible.Each(res.Map.Reveal)

		logger.Component("visibility").WithFields(logrus.Fields{
			"entity":  id,
			"x":       pos.X,
			"y":       pos.Y,
			"visible": vs.Visible.Size(),
		}).Debug("player view updated")
	})

	span.SetAttributes(attribute.Int("visibility.recomputed", recomputed))
	res.Metrics.AddFOVRecomputes(recomputed)
	return recomputed
}
