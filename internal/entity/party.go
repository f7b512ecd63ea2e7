// Package entity provides the things that stand on a level: the player's
// party and the creatures that populate rooms.
package entity

import "github.com/samdwyer/delvegrid/internal/pathfind"

// Party represents the player's party of adventurers.
// On the map the party is displayed as a single symbol.
type Party struct {
	Pos    pathfind.Point // Current position on the level
	Agent  pathfind.Agent // How the party moves
	Speed  int            // Movement budget shown by the range overlay
	Symbol rune           // Display symbol ('&')
}

// NewParty creates a new walking party at the given position.
func NewParty(pos pathfind.Point) *Party {
	return &Party{
		Pos:    pos,
		Agent:  pathfind.Walker,
		Speed:  5,
		Symbol: '&',
	}
}

// TryMove steps the party one tile in direction d if the grid allows it.
func (p *Party) TryMove(g *pathfind.Grid, d pathfind.Direction) bool {
	next := p.Pos.Step(d)
	if !g.CanEnter(p.Pos, next, p.Agent) {
		return false
	}
	p.Pos = next
	return true
}

// Position returns the current x, y coordinates.
func (p *Party) Position() (int, int) {
	return p.Pos.X, p.Pos.Y
}
