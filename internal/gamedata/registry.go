package gamedata

import (
	"errors"

	"github.com/samdwyer/cavern/internal/rng"
)

// MonsterRegistry holds loaded monster definitions and picks spawn types.
type MonsterRegistry struct {
	monsters    []MonsterDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry loads the embedded monsters.json into a registry.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom picks a monster definition with a single die roll across the total weight.
// Returns nil if the registry has nothing to spawn.
func (r *MonsterRegistry) SpawnRandom(src *rng.Source) *MonsterDef {
	if r.totalWeight <= 0 || len(r.monsters) == 0 {
		return nil
	}

	roll := src.RollDice(1, r.totalWeight)

	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll <= cumulative {
			return &r.monsters[i]
		}
	}
	return &r.monsters[len(r.monsters)-1]
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// Count returns the number of monster types in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
