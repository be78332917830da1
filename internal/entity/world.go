// Package entity provides the entity arena: dense IDs with one typed store per component.
package entity

// ID identifies an entity. IDs are allocated densely and never reused.
type ID uint32

// World owns every entity and its components.
type World struct {
	next  ID
	alive []bool

	Positions   *Store[Position]
	Viewsheds   *Store[Viewshed]
	Renderables *Store[Renderable]
	Names       *Store[Name]
	Players     *Store[Player]
	Monsters    *Store[Monster]

	pending []Command
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		Positions:   NewStore[Position](),
		Viewsheds:   NewStore[Viewshed](),
		Renderables: NewStore[Renderable](),
		Names:       NewStore[Name](),
		Players:     NewStore[Player](),
		Monsters:    NewStore[Monster](),
	}
}

// Create allocates a new entity immediately. Use it during world setup only;
// systems running inside a tick must use Spawn so the entity appears at the commit point.
func (w *World) Create() ID {
	id := w.next
	w.next++
	w.alive = append(w.alive, true)
	return id
}

// Alive returns true if the entity exists and has not been destroyed.
func (w *World) Alive(id ID) bool {
	return int(id) < len(w.alive) && w.alive[id]
}

// Count returns the number of living entities.
func (w *World) Count() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}

// Queue stages a command for the next Maintain.
func (w *World) Queue(cmd Command) {
	w.pending = append(w.pending, cmd)
}

// Spawn stages the creation of an entity; build attaches its components once it exists.
func (w *World) Spawn(build func(w *World, id ID)) {
	w.Queue(spawnCommand{build: build})
}

// Despawn stages the removal of an entity and all of its components.
func (w *World) Despawn(id ID) {
	w.Queue(despawnCommand{id: id})
}

// Pending returns the number of staged commands.
func (w *World) Pending() int {
	return len(w.pending)
}

// Maintain applies every staged command in the order it was queued and returns how many
// were applied. Commands queued while draining are applied in the same call.
func (w *World) Maintain() int {
	applied := 0
	for len(w.pending) > 0 {
		batch := w.pending
		w.pending = nil
		for _, cmd := range batch {
			cmd.Apply(w)
			applied++
		}
	}
	return applied
}

func (w *World) destroy(id ID) {
	if !w.Alive(id) {
		return
	}
	w.alive[id] = false
	w.Positions.Remove(id)
	w.Viewsheds.Remove(id)
	w.Renderables.Remove(id)
	w.Names.Remove(id)
	w.Players.Remove(id)
	w.Monsters.Remove(id)
}
