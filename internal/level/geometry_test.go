package level

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/delvegrid/internal/pathfind"
)

func TestTriangleInt(t *testing.T) {
	rng := NewRng(rand.New(rand.NewSource(42)))
	counts := map[int]int{}
	for i := 0; i < 5000; i++ {
		v := rng.TriangleInt(10, 4)
		require.GreaterOrEqual(t, v, 6)
		require.LessOrEqual(t, v, 14)
		counts[v]++
	}
	assert.Greater(t, counts[10], counts[6], "values cluster near the center")
	assert.Greater(t, counts[10], counts[14])
	assert.Equal(t, 7, rng.TriangleInt(7, 0))
	assert.Equal(t, 7, rng.TriangleInt(7, -3))
}

func TestRngBounds(t *testing.T) {
	rng := NewRng(rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		v := rng.Int(5, 20)
		require.True(t, v >= 5 && v < 20, "%d", v)
		require.True(t, rng.IntInclusive(3) <= 3)
	}
	assert.Equal(t, 4, rng.Int(4, 4))
	assert.Zero(t, rng.Below(0))
	assert.False(t, rng.Chance(0))
	assert.True(t, rng.Chance(100))
}

func TestRoomGeometry(t *testing.T) {
	r := Room{X: 2, Y: 3, Width: 5, Height: 4}

	assert.Equal(t, pathfind.Pt(4, 5), r.Center())
	assert.Len(t, r.Points(), 20)
	assert.Len(t, r.Interior(), 6)
	assert.Len(t, r.Trace(), 14)
	assert.Equal(t, Room{X: 1, Y: 2, Width: 7, Height: 6}, r.Inflate(1))
	assert.True(t, r.Contains(pathfind.Pt(6, 6)))
	assert.False(t, r.Contains(pathfind.Pt(7, 6)))

	interior := map[pathfind.Point]bool{}
	for _, p := range r.Interior() {
		interior[p] = true
	}
	seen := map[pathfind.Point]bool{}
	for _, p := range r.Trace() {
		assert.False(t, interior[p], "trace %v is interior", p)
		assert.False(t, seen[p], "trace repeats %v", p)
		seen[p] = true
	}

	assert.True(t, r.Intersects(Room{X: 6, Y: 6, Width: 3, Height: 3}))
	assert.False(t, r.Intersects(Room{X: 7, Y: 3, Width: 3, Height: 3}))
	assert.True(t, r.ContainsRoom(Room{X: 3, Y: 4, Width: 2, Height: 2}))
	assert.False(t, r.ContainsRoom(r.Inflate(1)))

	line := Room{X: 0, Y: 0, Width: 4, Height: 1}
	assert.Len(t, line.Trace(), 4)
	assert.Empty(t, Room{Width: 3}.Trace())
}

func TestTriangulate(t *testing.T) {
	assert.Empty(t, triangulate(nil))
	assert.Empty(t, triangulate([]pathfind.Point{{X: 1, Y: 1}}))
	assert.Equal(t, []link{{0, 1}}, triangulate([]pathfind.Point{{X: 1, Y: 1}, {X: 9, Y: 9}}))

	square := []pathfind.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 11}, {X: 0, Y: 10}}
	links := triangulate(square)
	// Four sides plus one diagonal.
	assert.Len(t, links, 5)
	for _, l := range links {
		assert.Less(t, l.A, l.B)
	}

	// Collinear centers fall back to a chain ordered by position.
	line := []pathfind.Point{{X: 20, Y: 5}, {X: 0, Y: 5}, {X: 10, Y: 5}}
	assert.Equal(t, []link{{0, 2}, {1, 2}}, triangulate(line))
}

func TestSpanningTree(t *testing.T) {
	centers := []pathfind.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 11}, {X: 0, Y: 10}}
	links := triangulate(centers)

	tree, rest := spanningTree(centers, links)
	assert.Len(t, tree, len(centers)-1)
	assert.Len(t, rest, len(links)-len(tree))

	// The longest side (11) and any diagonal lose to the three short sides.
	assert.Equal(t, []link{{0, 1}, {0, 3}, {2, 3}}, tree)

	ds := newDisjointSet(len(centers))
	for _, l := range tree {
		assert.True(t, ds.union(l.A, l.B), "tree has a cycle at %v", l)
	}
}
