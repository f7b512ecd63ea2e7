package level

import (
	"cmp"
	"slices"

	"github.com/fogleman/delaunay"

	"github.com/samdwyer/delvegrid/internal/pathfind"
)

// link joins two rooms by index. A is always less than B.
type link struct {
	A, B int
}

func newLink(a, b int) link {
	if a > b {
		a, b = b, a
	}
	return link{A: a, B: b}
}

func compareLinks(x, y link) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	return cmp.Compare(x.B, y.B)
}

// triangulate returns the Delaunay edges between the given centers, sorted.
// Fewer than three centers, or centers that all lie on one line, have no
// triangulation; they are joined in a chain ordered by position instead.
func triangulate(centers []pathfind.Point) []link {
	if len(centers) < 2 {
		return nil
	}
	if len(centers) >= 3 {
		points := make([]delaunay.Point, len(centers))
		for i, c := range centers {
			points[i] = delaunay.Point{X: float64(c.X), Y: float64(c.Y)}
		}
		tri, err := delaunay.Triangulate(points)
		if err == nil && len(tri.Triangles) > 0 {
			return triangulationEdges(tri)
		}
	}
	return chain(centers)
}

func triangulationEdges(tri *delaunay.Triangulation) []link {
	seen := make(map[link]struct{}, len(tri.Triangles))
	out := make([]link, 0, len(tri.Triangles))
	for e := range tri.Triangles {
		// Each interior edge has two halfedges; keep one.
		if e <= tri.Halfedges[e] {
			continue
		}
		l := newLink(tri.Triangles[e], tri.Triangles[nextHalfedge(e)])
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	slices.SortFunc(out, compareLinks)
	return out
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func chain(centers []pathfind.Point) []link {
	order := make([]int, len(centers))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		pa, pb := centers[a], centers[b]
		if c := cmp.Compare(pa.X, pb.X); c != 0 {
			return c
		}
		return cmp.Compare(pa.Y, pb.Y)
	})
	out := make([]link, 0, len(order)-1)
	for i := 1; i < len(order); i++ {
		out = append(out, newLink(order[i-1], order[i]))
	}
	slices.SortFunc(out, compareLinks)
	return out
}
