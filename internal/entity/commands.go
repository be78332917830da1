package entity

// Command is a staged change to the world, applied at the next Maintain.
type Command interface {
	Apply(w *World)
}

// CommandFunc adapts a function to the Command interface.
type CommandFunc func(w *World)

// Apply calls f(w).
func (f CommandFunc) Apply(w *World) {
	f(w)
}

type spawnCommand struct {
	build func(w *World, id ID)
}

func (c spawnCommand) Apply(w *World) {
	id := w.Create()
	c.build(w, id)
}

type despawnCommand struct {
	id ID
}

func (c despawnCommand) Apply(w *World) {
	w.destroy(c.id)
}
