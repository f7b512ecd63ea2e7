package pathfind

import (
	"fmt"
	"math"
)

// Weights for crossing an edge or a vertex.
const (
	CardinalWeight = 1.0
	DiagonalWeight = math.Sqrt2
)

// Edge is the connection across a tile border (cardinal) or a tile corner
// (diagonal, also called a vertex).
type Edge struct {
	Weight   float64
	Motility Motility
}

// Allows reports whether an agent with motility m may cross e.
func (e Edge) Allows(m Motility) bool {
	return e.Motility.Allows(m)
}

// OpenEdge is the default cardinal connection; it blocks nothing.
var OpenEdge = Edge{Weight: CardinalWeight, Motility: Unconstrained}

// OpenVertex is the default diagonal connection; it blocks nothing.
var OpenVertex = Edge{Weight: DiagonalWeight, Motility: Unconstrained}

// Key identifies a stored edge or vertex: the owning tile and its side.
// Canonical keys always use North or West for edges and NorthWest for
// vertices.
type Key struct {
	Pos Point
	Dir Direction
}

func (k Key) String() string { return fmt.Sprintf("%v:%v", k.Pos, k.Dir) }

// Canonical folds (p, d) onto the single key that owns that border or
// corner. Edges are owned as the north or west side of a tile; vertices as
// the north-west corner. Panics on NoDirection.
func Canonical(p Point, d Direction) Key {
	switch d {
	case North, West, NorthWest:
		return Key{p, d}
	case East:
		return Key{Point{p.X + 1, p.Y}, West}
	case South:
		return Key{Point{p.X, p.Y + 1}, North}
	case NorthEast:
		return Key{Point{p.X + 1, p.Y}, NorthWest}
	case SouthWest:
		return Key{Point{p.X, p.Y + 1}, NorthWest}
	case SouthEast:
		return Key{Point{p.X + 1, p.Y + 1}, NorthWest}
	}
	panic(fmt.Sprintf("pathfind: no edge in direction %v", d))
}
