package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/metrics"
	"github.com/samdwyer/cavern/internal/rng"
	"github.com/samdwyer/cavern/internal/systems"
	"github.com/samdwyer/cavern/internal/ui"
)

// Game owns the terminal and drives the scheduler until the player quits.
type Game struct {
	cfg      Config
	metrics  *metrics.Collector
	screen   *ui.Screen
	renderer *ui.Renderer
	input    *ui.Input
}

// New creates a new game instance and takes over the terminal.
func New(cfg Config, collector *metrics.Collector) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		metrics:  collector,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		input:    ui.NewInput(screen),
	}, nil
}

// Run builds the world and executes the main loop.
func (g *Game) Run(ctx context.Context) error {
	registry, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return fmt.Errorf("loading monsters: %w", err)
	}
	policy, err := systems.NewPolicy(g.cfg.AIPolicy)
	if err != nil {
		return err
	}

	src := rng.New(g.cfg.Seed)
	res, err := Setup(ctx, g.cfg, src, registry, g.metrics)
	if err != nil {
		return fmt.Errorf("setting up world: %w", err)
	}

	sched := NewScheduler(res, policy)
	log := logger.Component("game")
	log.WithField("seed", src.Seed()).Info("game started")

	for !g.input.Quit() {
		if sched.State() == StatePaused {
			g.draw(sched)
		}
		sched.Tick(ctx, g.input)
	}

	log.WithField("ticks", sched.Ticks()).Info("game ended")
	return nil
}

func (g *Game) draw(sched *Scheduler) {
	res := sched.Resources()
	g.renderer.Render(res.Map, res.Entities, res.PlayerPos, ui.StatusLine(sched.Ticks(), res.PlayerPos))
}

// Close restores the terminal.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
