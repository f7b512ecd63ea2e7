package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/delvegrid/internal/gamedata"
	"github.com/samdwyer/delvegrid/internal/pathfind"
)

// Actor is a creature placed on a level.
type Actor struct {
	ID    uuid.UUID
	Def   *gamedata.CreatureDef
	Pos   pathfind.Point
	Agent pathfind.Agent
	Speed int
}

// NewActor creates an actor of the given kind at pos.
func NewActor(def *gamedata.CreatureDef, pos pathfind.Point) (*Actor, error) {
	agent, err := def.Agent()
	if err != nil {
		return nil, err
	}
	return &Actor{
		ID:    uuid.New(),
		Def:   def,
		Pos:   pos,
		Agent: agent,
		Speed: def.Speed,
	}, nil
}

// Name returns the display name of the actor's kind.
func (a *Actor) Name() string {
	return a.Def.Name
}
