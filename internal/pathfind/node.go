package pathfind

// Terrain is the projection of a tile catalog entry onto the graph.
type Terrain struct {
	Name     string
	Motility Motility
	// Index points back into the tile catalog for presentation.
	Index int
}

// Node is a single grid cell.
type Node struct {
	Pos     Point
	Terrain Terrain
	// Content further restricts the terrain. Zero means no restriction.
	Content Motility
}

// Motility returns the node's effective mask. Terrain and content are
// intersected unless either is Unconstrained, in which case the other wins.
func (n Node) Motility() Motility {
	content := n.Content
	if content == None {
		content = Unconstrained
	}
	switch {
	case n.Terrain.Motility.IsUnconstrained():
		return content
	case content.IsUnconstrained():
		return n.Terrain.Motility
	}
	return n.Terrain.Motility.Intersect(content)
}

// Allows reports whether an agent with motility m may stand on n.
func (n Node) Allows(m Motility) bool {
	return n.Motility().Allows(m)
}
