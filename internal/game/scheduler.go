package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/systems"
	"github.com/samdwyer/cavern/internal/telemetry"
)

// InputSource yields at most one movement intent per poll. It may block.
type InputSource interface {
	NextIntent() (systems.Intent, bool)
}

// Scheduler alternates between waiting for the player and running the simulation
// pipeline, so that exactly one pipeline pass follows each accepted player move.
type Scheduler struct {
	res        *systems.Resources
	visibility systems.Visibility
	ai         systems.MonsterAI
	state      RunState
	ticks      int
}

// NewScheduler creates a scheduler in the Running state so the first tick computes sight.
func NewScheduler(res *systems.Resources, policy systems.Policy) *Scheduler {
	return &Scheduler{
		res:   res,
		ai:    systems.MonsterAI{Policy: policy},
		state: StateRunning,
	}
}

// State returns the current run-state.
func (s *Scheduler) State() RunState {
	return s.state
}

// Ticks returns the number of pipeline passes run so far.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Resources returns the world state the scheduler drives.
func (s *Scheduler) Resources() *systems.Resources {
	return s.res
}

// Tick advances the state machine by one step and returns the new state.
// While Running it runs the pipeline; while Paused it polls input once.
func (s *Scheduler) Tick(ctx context.Context, input InputSource) RunState {
	switch s.state {
	case StateRunning:
		s.runPipeline(ctx)
		s.state = StatePaused
	case StatePaused:
		intent, ok := input.NextIntent()
		if ok && systems.MovePlayer(s.res, intent) {
			s.state = StateRunning
		}
	}
	return s.state
}

// runPipeline runs visibility, then AI, then commits staged entity changes.
func (s *Scheduler) runPipeline(ctx context.Context) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "scheduler.pipeline")
	defer span.End()

	recomputed := s.visibility.Run(ctx, s.res)
	queued := s.ai.Run(ctx, s.res)
	applied := s.res.Entities.Maintain()

	s.ticks++
	s.res.Metrics.IncTicks()
	s.res.Metrics.AddCommandsApplied(applied)

	span.SetAttributes(
		attribute.Int("tick", s.ticks),
		attribute.Int("fov.recomputed", recomputed),
		attribute.Int("ai.queued", queued),
		attribute.Int("commands.applied", applied),
	)
	logger.Component("scheduler").WithField("tick", s.ticks).Debug("pipeline complete")
}
