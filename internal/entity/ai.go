package entity

import (
	"math/rand"

	"github.com/samdwyer/delvegrid/internal/pathfind"
)

// Occupied reports whether something already stands on p.
type Occupied func(p pathfind.Point) bool

// Wander picks a uniformly random destination among the tiles the actor can
// reach within its speed. The actor's own tile is a valid pick.
func Wander(g *pathfind.Grid, a *Actor, rng *rand.Rand, occupied Occupied) pathfind.Point {
	reach := g.FloodFill(a.Pos, float64(a.Speed), a.Agent)

	candidates := make([]pathfind.Point, 0, reach.Len())
	for _, p := range reach.Points() {
		if p == a.Pos || occupied == nil || !occupied(p) {
			candidates = append(candidates, p)
		}
	}
	return candidates[rng.Intn(len(candidates))]
}

// Approach moves the actor along the cheapest route toward target, as far as
// its speed allows, stopping short of occupied tiles. An actor already next
// to the target, or with no route to it, stays put.
func Approach(g *pathfind.Grid, a *Actor, target pathfind.Point, occupied Occupied) pathfind.Point {
	path, err := g.FindPath(a.Pos, target, a.Agent)
	if err != nil || len(path) <= 2 {
		return a.Pos
	}

	best := a.Pos
	budget := float64(a.Speed)
	spent := 0.0
	// The last step is the target itself.
	for i := 1; i < len(path)-1; i++ {
		e, _ := g.JoiningEdge(path[i-1], path[i])
		spent += e.Weight
		if spent > budget {
			break
		}
		if occupied == nil || !occupied(path[i]) {
			best = path[i]
		}
	}
	return best
}
