package level

import (
	"math"
	"slices"

	"github.com/samdwyer/delvegrid/internal/pathfind"
)

// disjointSet is a union-find forest with path compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// union merges the sets holding a and b. It returns false if they were
// already joined.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	return true
}

func distance(a, b pathfind.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// spanningTree runs Kruskal over links weighted by the Euclidean distance
// between room centers. Links of equal weight keep their input order. It
// returns the tree links and the rest.
func spanningTree(centers []pathfind.Point, links []link) (tree, rest []link) {
	sorted := slices.Clone(links)
	slices.SortStableFunc(sorted, func(x, y link) int {
		wx := distance(centers[x.A], centers[x.B])
		wy := distance(centers[y.A], centers[y.B])
		switch {
		case wx < wy:
			return -1
		case wx > wy:
			return 1
		}
		return 0
	})

	ds := newDisjointSet(len(centers))
	for _, l := range sorted {
		if ds.union(l.A, l.B) {
			tree = append(tree, l)
		} else {
			rest = append(rest, l)
		}
	}
	slices.SortFunc(tree, compareLinks)
	slices.SortFunc(rest, compareLinks)
	return tree, rest
}
