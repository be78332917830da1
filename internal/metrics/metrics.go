// Package metrics exposes Prometheus counters for the simulation loop.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Move results used as the "result" label on cavern_moves_total.
const (
	MoveAccepted = "accepted"
	MoveRejected = "rejected"
)

// Collector holds the simulation metrics. All methods are safe on a nil receiver
// so callers that run without metrics can pass nil.
type Collector struct {
	gatherer prometheus.Gatherer

	Ticks           prometheus.Counter
	FOVRecomputes   prometheus.Counter
	Moves           *prometheus.CounterVec
	RoomsGenerated  prometheus.Gauge
	CommandsApplied prometheus.Counter
}

// NewCollector registers the simulation metrics against the provided registerer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	ticks, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cavern_ticks_total",
		Help: "Number of simulation pipeline passes executed.",
	}), "cavern_ticks_total")
	if err != nil {
		return nil, err
	}

	recomputes, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cavern_fov_recomputes_total",
		Help: "Number of viewsheds recomputed after becoming dirty.",
	}), "cavern_fov_recomputes_total")
	if err != nil {
		return nil, err
	}

	moves, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cavern_moves_total",
		Help: "Movement attempts by result.",
	}, []string{"result"}), "cavern_moves_total")
	if err != nil {
		return nil, err
	}

	rooms, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cavern_rooms_generated",
		Help: "Number of rooms placed in the current map.",
	}), "cavern_rooms_generated")
	if err != nil {
		return nil, err
	}

	applied, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cavern_commands_applied_total",
		Help: "Number of staged entity commands applied at the commit point.",
	}), "cavern_commands_applied_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		Ticks:           ticks,
		FOVRecomputes:   recomputes,
		Moves:           moves,
		RoomsGenerated:  rooms,
		CommandsApplied: applied,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// IncTicks counts one pipeline pass.
func (c *Collector) IncTicks() {
	if c == nil || c.Ticks == nil {
		return
	}
	c.Ticks.Inc()
}

// AddFOVRecomputes counts recomputed viewsheds.
func (c *Collector) AddFOVRecomputes(n int) {
	if c == nil || c.FOVRecomputes == nil || n <= 0 {
		return
	}
	c.FOVRecomputes.Add(float64(n))
}

// ObserveMove counts a movement attempt.
func (c *Collector) ObserveMove(accepted bool) {
	if c == nil || c.Moves == nil {
		return
	}
	result := MoveRejected
	if accepted {
		result = MoveAccepted
	}
	c.Moves.WithLabelValues(result).Inc()
}

// SetRooms records the number of rooms in the current map.
func (c *Collector) SetRooms(n int) {
	if c == nil || c.RoomsGenerated == nil {
		return
	}
	c.RoomsGenerated.Set(float64(n))
}

// AddCommandsApplied counts commands drained at the commit point.
func (c *Collector) AddCommandsApplied(n int) {
	if c == nil || c.CommandsApplied == nil || n <= 0 {
		return
	}
	c.CommandsApplied.Add(float64(n))
}

func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return collector, nil
}
