package pathfind

import "fmt"

// Grid is a rectangular traversal graph. Nodes are stored densely; edges and
// vertices are stored sparsely under their canonical keys and default to
// OpenEdge and OpenVertex when absent.
//
// A Grid is not safe for concurrent mutation. Searches only read it and keep
// their bookkeeping per call, so several may run against an unchanging grid.
type Grid struct {
	width, height int
	nodes         []Node
	edges         map[Key]Edge
	vertices      map[Key]Edge
}

// NewGrid allocates a width x height grid of zero-terrain nodes.
// Negative dimensions panic.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pathfind: invalid grid dimensions %dx%d", width, height))
	}
	g := &Grid{
		width:    width,
		height:   height,
		nodes:    make([]Node, width*height),
		edges:    make(map[Key]Edge),
		vertices: make(map[Key]Edge),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.nodes[y*width+x].Pos = Point{x, y}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of nodes.
func (g *Grid) Len() int { return len(g.nodes) }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g *Grid) index(p Point) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("pathfind: point %v outside %dx%d grid", p, g.width, g.height))
	}
	return p.Y*g.width + p.X
}

// Node returns the node at p. Out-of-bounds access panics.
func (g *Grid) Node(p Point) Node {
	return g.nodes[g.index(p)]
}

// SetNode replaces the node at p. The node's position is forced to p.
func (g *Grid) SetNode(p Point, n Node) {
	n.Pos = p
	g.nodes[g.index(p)] = n
}

// SetTerrain changes the terrain at p and keeps its content.
func (g *Grid) SetTerrain(p Point, t Terrain) {
	g.nodes[g.index(p)].Terrain = t
}

// Fill overwrites every node with the result of fn.
func (g *Grid) Fill(fn func(p Point) Node) {
	for i := range g.nodes {
		p := g.nodes[i].Pos
		n := fn(p)
		n.Pos = p
		g.nodes[i] = n
	}
}

// Edge returns the cardinal connection on side d of p.
func (g *Grid) Edge(p Point, d Direction) Edge {
	if !d.IsCardinal() {
		panic(fmt.Sprintf("pathfind: %v is not a cardinal direction", d))
	}
	if e, ok := g.edges[Canonical(p, d)]; ok {
		return e
	}
	return OpenEdge
}

// SetEdge stores the cardinal connection on side d of p.
func (g *Grid) SetEdge(p Point, d Direction, e Edge) {
	if !d.IsCardinal() {
		panic(fmt.Sprintf("pathfind: %v is not a cardinal direction", d))
	}
	g.edges[Canonical(p, d)] = e
}

// Vertex returns the diagonal connection at corner d of p.
func (g *Grid) Vertex(p Point, d Direction) Edge {
	if !d.IsDiagonal() {
		panic(fmt.Sprintf("pathfind: %v is not a diagonal direction", d))
	}
	if v, ok := g.vertices[Canonical(p, d)]; ok {
		return v
	}
	return OpenVertex
}

// SetVertex stores the diagonal connection at corner d of p.
func (g *Grid) SetVertex(p Point, d Direction, v Edge) {
	if !d.IsDiagonal() {
		panic(fmt.Sprintf("pathfind: %v is not a diagonal direction", d))
	}
	g.vertices[Canonical(p, d)] = v
}

// JoiningEdge returns the edge or vertex crossed when stepping from a to the
// adjacent point b. ok is false when the points are not adjacent.
func (g *Grid) JoiningEdge(a, b Point) (e Edge, ok bool) {
	d := Towards(a, b)
	switch {
	case d.IsCardinal():
		return g.Edge(a, d), true
	case d.IsDiagonal():
		return g.Vertex(a, d), true
	}
	return Edge{}, false
}

// FillEdges overwrites every cardinal edge, including the outer border, with
// the result of fn. Keys passed to fn are canonical.
func (g *Grid) FillEdges(fn func(k Key) Edge) {
	for y := 0; y <= g.height; y++ {
		for x := 0; x <= g.width; x++ {
			p := Point{x, y}
			if x < g.width {
				k := Key{p, North}
				g.edges[k] = fn(k)
			}
			if y < g.height {
				k := Key{p, West}
				g.edges[k] = fn(k)
			}
		}
	}
}

// FillVertices overwrites every diagonal vertex, including the outer border,
// with the result of fn.
func (g *Grid) FillVertices(fn func(k Key) Edge) {
	for y := 0; y <= g.height; y++ {
		for x := 0; x <= g.width; x++ {
			k := Key{Point{x, y}, NorthWest}
			g.vertices[k] = fn(k)
		}
	}
}

// ResetConnections drops every stored edge and vertex so that all of them
// read as the open defaults again.
func (g *Grid) ResetConnections() {
	clear(g.edges)
	clear(g.vertices)
}

// Neighbors returns the in-bounds points adjacent to p in the given
// directions, in the order the directions are listed.
func (g *Grid) Neighbors(p Point, dirs []Direction) []Point {
	out := make([]Point, 0, len(dirs))
	for _, d := range dirs {
		q := p.Step(d)
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// FilteredNeighbors returns the neighbors of p that agent may step to.
func (g *Grid) FilteredNeighbors(p Point, agent Agent) []Point {
	dirs := agent.Shape.Directions()
	out := make([]Point, 0, len(dirs))
	for _, q := range g.Neighbors(p, dirs) {
		if g.CanEnter(p, q, agent) {
			out = append(out, q)
		}
	}
	return out
}

// CanEnter reports whether agent may step from a to the adjacent point b.
// The destination's effective motility and the joining edge must both admit
// the agent's locomotion.
func (g *Grid) CanEnter(a, b Point, agent Agent) bool {
	if !g.InBounds(b) {
		return false
	}
	e, ok := g.JoiningEdge(a, b)
	if !ok {
		return false
	}
	if agent.Motility.IsUnconstrained() {
		return true
	}
	return g.Node(b).Allows(agent.Motility) && e.Allows(agent.Motility)
}

// Count returns how many nodes satisfy fn.
func (g *Grid) Count(fn func(n Node) bool) int {
	total := 0
	for _, n := range g.nodes {
		if fn(n) {
			total++
		}
	}
	return total
}

// Each calls fn for every node in row-major order.
func (g *Grid) Each(fn func(n Node)) {
	for _, n := range g.nodes {
		fn(n)
	}
}
