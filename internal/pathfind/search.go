package pathfind

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrNoPath is returned when the goal was not reached.
var ErrNoPath = errors.New("pathfind: no path")

// Algorithm selects a search strategy.
type Algorithm int

const (
	// AStar expands by cost plus heuristic estimate.
	AStar Algorithm = iota
	// Dijkstra expands by accumulated cost.
	Dijkstra
	// BreadthFirst expands by step count and discovers each node once.
	BreadthFirst
)

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "a-star"
	case Dijkstra:
		return "dijkstra"
	case BreadthFirst:
		return "breadth-first"
	default:
		return "unknown"
	}
}

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b Point) float64

// Manhattan is the taxicab distance.
func Manhattan(a, b Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Chebyshev is the king-move distance with every step costing one.
func Chebyshev(a, b Point) float64 {
	return float64(max(abs(a.X-b.X), abs(a.Y-b.Y)))
}

// Octile is the exact eight-way distance on an open grid with diagonal
// steps costing sqrt(2).
func Octile(a, b Point) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	lo, hi := min(dx, dy), max(dx, dy)
	return float64(hi-lo) + float64(lo)*math.Sqrt2
}

// Searcher finds routes through a grid.
type Searcher interface {
	Search(g *Grid, start, goal Point, agent Agent) *Result
}

// Strategy is the stock Searcher. The zero value is A* without a
// heuristic, which panics when used.
type Strategy struct {
	Algorithm Algorithm
	Heuristic Heuristic
}

// Search runs the strategy from start until goal is popped from the
// frontier or the frontier is exhausted.
func (s Strategy) Search(g *Grid, start, goal Point, agent Agent) *Result {
	if s.Algorithm == AStar && s.Heuristic == nil {
		panic("pathfind: a-star search requires a heuristic")
	}
	return expand(g, start, &goal, agent, s, math.Inf(1))
}

// Path runs the strategy and converts the result into a path.
func (s Strategy) Path(g *Grid, start, goal Point, agent Agent) ([]Point, error) {
	return s.Search(g, start, goal, agent).Path(goal)
}

// FindPath returns the cheapest route from start to goal using A*. Four-way
// agents are guided by Manhattan distance, others by Octile distance.
func (g *Grid) FindPath(start, goal Point, agent Agent) ([]Point, error) {
	h := Octile
	if agent.Shape == FourWay {
		h = Manhattan
	}
	return Strategy{Algorithm: AStar, Heuristic: h}.Path(g, start, goal, agent)
}

// FloodFill returns every node agent can reach from start at a total cost
// no greater than depth.
func (g *Grid) FloodFill(start Point, depth float64, agent Agent) *Result {
	return expand(g, start, nil, agent, Strategy{Algorithm: Dijkstra}, depth)
}

// expand is the loop every strategy shares. Only the frontier and the
// priority of an entry depend on the strategy.
func expand(g *Grid, start Point, goal *Point, agent Agent, s Strategy, depth float64) *Result {
	if !g.InBounds(start) {
		panic(fmt.Sprintf("pathfind: search start %v outside %dx%d grid", start, g.width, g.height))
	}
	if goal != nil && !g.InBounds(*goal) {
		panic(fmt.Sprintf("pathfind: search goal %v outside %dx%d grid", *goal, g.width, g.height))
	}

	res := &Result{
		Start:   start,
		Parents: map[Point]Point{start: start},
		Costs:   map[Point]float64{start: 0},
	}

	var open frontier
	if s.Algorithm == BreadthFirst {
		open = newFIFOFrontier()
	} else {
		open = newPriorityFrontier()
	}
	open.push(entry{pos: start})

	for {
		cur, ok := open.pop()
		if !ok {
			break
		}
		if cur.cost > res.Costs[cur.pos] {
			continue // superseded by a cheaper entry
		}
		if goal != nil && cur.pos == *goal {
			break
		}

		for _, next := range g.FilteredNeighbors(cur.pos, agent) {
			e, _ := g.JoiningEdge(cur.pos, next)
			cost := cur.cost + e.Weight
			if cost > depth {
				continue
			}

			if s.Algorithm == BreadthFirst {
				if _, seen := res.Parents[next]; seen {
					continue
				}
			} else if old, seen := res.Costs[next]; seen && cost >= old {
				continue
			}

			res.Parents[next] = cur.pos
			res.Costs[next] = cost

			priority := cost
			if s.Algorithm == AStar && goal != nil {
				priority += s.Heuristic(next, *goal)
			}
			open.push(entry{pos: next, cost: cost, priority: priority})
		}
	}
	return res
}

// Result is the outcome of a search: a parent pointer for every reached
// node and the cost of reaching it. The start is its own parent.
type Result struct {
	Start   Point
	Parents map[Point]Point
	Costs   map[Point]float64
}

// Reached reports whether p was discovered.
func (r *Result) Reached(p Point) bool {
	_, ok := r.Parents[p]
	return ok
}

// Cost returns the cost of the best known route to p.
func (r *Result) Cost(p Point) (float64, bool) {
	c, ok := r.Costs[p]
	return c, ok
}

// Len returns the number of reached nodes, start included.
func (r *Result) Len() int { return len(r.Parents) }

// Points returns every reached node in row-major order.
func (r *Result) Points() []Point {
	out := make([]Point, 0, len(r.Parents))
	for p := range r.Parents {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Point) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	return out
}

// Path walks parent pointers from goal back to the start and returns the
// route start first. It fails with ErrNoPath if goal was never reached.
func (r *Result) Path(goal Point) ([]Point, error) {
	if !r.Reached(goal) {
		return nil, fmt.Errorf("%w from %v to %v", ErrNoPath, r.Start, goal)
	}
	path := []Point{goal}
	for p := goal; p != r.Start; {
		p = r.Parents[p]
		path = append(path, p)
	}
	slices.Reverse(path)
	return path, nil
}
