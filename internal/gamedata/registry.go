package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// CreatureRegistry holds loaded creature definitions and provides spawning utilities.
type CreatureRegistry struct {
	creatures   []CreatureDef
	totalWeight int
}

// NewCreatureRegistry creates a registry from loaded creature definitions.
// Every definition must resolve to a valid agent.
func NewCreatureRegistry(creatures []CreatureDef) (*CreatureRegistry, error) {
	totalWeight := 0
	for i := range creatures {
		if _, err := creatures[i].Agent(); err != nil {
			return nil, err
		}
		if creatures[i].SpawnWeight < 0 {
			return nil, fmt.Errorf("creature %s: negative spawn weight", creatures[i].ID)
		}
		totalWeight += creatures[i].SpawnWeight
	}
	return &CreatureRegistry{
		creatures:   creatures,
		totalWeight: totalWeight,
	}, nil
}

// LoadCreatureRegistry loads and creates a registry from the embedded creatures.json.
func LoadCreatureRegistry() (*CreatureRegistry, error) {
	creatures, err := LoadCreatures()
	if err != nil {
		return nil, err
	}
	if len(creatures) == 0 {
		return nil, errors.New("no creatures loaded from creatures.json")
	}
	return NewCreatureRegistry(creatures)
}

// MustLoadCreatureRegistry loads a registry, panicking on error.
func MustLoadCreatureRegistry() *CreatureRegistry {
	registry, err := LoadCreatureRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random creature definition using weighted probability.
// Creatures with higher spawnWeight are more likely to be selected.
func (r *CreatureRegistry) SpawnRandom(rng *rand.Rand) *CreatureDef {
	if r.totalWeight <= 0 || len(r.creatures) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.creatures {
		cumulative += r.creatures[i].SpawnWeight
		if roll < cumulative {
			return &r.creatures[i]
		}
	}

	return &r.creatures[len(r.creatures)-1]
}

// GetByID returns the creature definition with the given ID, or nil if not found.
func (r *CreatureRegistry) GetByID(id string) *CreatureDef {
	for i := range r.creatures {
		if r.creatures[i].ID == id {
			return &r.creatures[i]
		}
	}
	return nil
}

// Count returns the number of creature types in the registry.
func (r *CreatureRegistry) Count() int {
	return len(r.creatures)
}
