package entity

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/delvegrid/internal/gamedata"
	"github.com/samdwyer/delvegrid/internal/pathfind"
)

var (
	floor = pathfind.Terrain{Name: "floor", Motility: pathfind.Land | pathfind.Fly}
	wall  = pathfind.Terrain{Name: "wall", Motility: pathfind.Incorporeal}
)

// corridor builds a one-row floor strip of the given length.
func corridor(length int) *pathfind.Grid {
	g := pathfind.NewGrid(length, 1)
	g.Fill(func(pathfind.Point) pathfind.Node { return pathfind.Node{Terrain: floor} })
	return g
}

func rat(t *testing.T, pos pathfind.Point, speed int) *Actor {
	t.Helper()
	a, err := NewActor(&gamedata.CreatureDef{
		ID: "rat", Name: "Rat", Motility: []string{"land"}, Shape: "four-way", Speed: speed,
	}, pos)
	require.NoError(t, err)
	return a
}

func TestNewActor(t *testing.T) {
	a := rat(t, pathfind.Pt(2, 0), 3)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, pathfind.Agent{Motility: pathfind.Land, Shape: pathfind.FourWay}, a.Agent)
	assert.Equal(t, 3, a.Speed)
	assert.Equal(t, "Rat", a.Name())

	_, err := NewActor(&gamedata.CreatureDef{ID: "x", Motility: []string{"warp"}}, pathfind.Pt(0, 0))
	assert.Error(t, err)
}

func TestPartyTryMove(t *testing.T) {
	g := corridor(3)
	g.SetTerrain(pathfind.Pt(2, 0), wall)
	p := NewParty(pathfind.Pt(0, 0))

	assert.True(t, p.TryMove(g, pathfind.East))
	assert.False(t, p.TryMove(g, pathfind.East), "wall")
	assert.False(t, p.TryMove(g, pathfind.North), "off the grid")
	x, y := p.Position()
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)
}

func TestWanderStaysInRange(t *testing.T) {
	g := corridor(20)
	a := rat(t, pathfind.Pt(10, 0), 3)
	rng := rand.New(rand.NewSource(7))

	seen := map[pathfind.Point]bool{}
	for i := 0; i < 200; i++ {
		p := Wander(g, a, rng, nil)
		assert.LessOrEqual(t, pathfind.Manhattan(a.Pos, p), 3.0)
		seen[p] = true
	}
	assert.Len(t, seen, 7, "every reachable tile gets picked eventually")
}

func TestWanderAvoidsOccupied(t *testing.T) {
	g := corridor(3)
	a := rat(t, pathfind.Pt(1, 0), 1)
	blocked := func(p pathfind.Point) bool { return p != a.Pos }
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Pos, Wander(g, a, rng, blocked))
	}
}

func TestApproach(t *testing.T) {
	g := corridor(10)
	a := rat(t, pathfind.Pt(0, 0), 3)

	assert.Equal(t, pathfind.Pt(3, 0), Approach(g, a, pathfind.Pt(9, 0), nil))

	// Never steps onto the target.
	a.Pos = pathfind.Pt(6, 0)
	assert.Equal(t, pathfind.Pt(8, 0), Approach(g, a, pathfind.Pt(9, 0), nil))

	// Adjacent actors hold position.
	a.Pos = pathfind.Pt(8, 0)
	assert.Equal(t, pathfind.Pt(8, 0), Approach(g, a, pathfind.Pt(9, 0), nil))

	// Occupied tiles are passed over but not landed on.
	a.Pos = pathfind.Pt(0, 0)
	occupied := func(p pathfind.Point) bool { return p == pathfind.Pt(3, 0) }
	assert.Equal(t, pathfind.Pt(2, 0), Approach(g, a, pathfind.Pt(9, 0), occupied))
}

func TestApproachWithoutRoute(t *testing.T) {
	g := corridor(5)
	g.SetTerrain(pathfind.Pt(2, 0), wall)
	a := rat(t, pathfind.Pt(0, 0), 3)
	assert.Equal(t, a.Pos, Approach(g, a, pathfind.Pt(4, 0), nil))
}
