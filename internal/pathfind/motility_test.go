package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotilityOperators(t *testing.T) {
	lf := Land.Union(Fly)

	assert.True(t, lf.Has(Land))
	assert.True(t, lf.Has(Fly))
	assert.False(t, lf.Has(Swim))
	assert.Equal(t, Land, lf.Intersect(Land|Swim))
	assert.Equal(t, Fly, lf.Subtract(Land))
	assert.True(t, lf.Contains(Fly|Swim), "contains is any-overlap")
	assert.False(t, lf.Contains(Swim|Burrow))
	assert.False(t, None.Contains(None))
}

func TestMotilityAllows(t *testing.T) {
	assert.True(t, Unconstrained.Allows(Swim), "unconstrained masks admit everyone")
	assert.True(t, None.Allows(Land|Unconstrained), "unconstrained agents skip checks")
	assert.False(t, None.Allows(Land))
	assert.False(t, Swim.Allows(Land))
	assert.True(t, (Land | Fly).Allows(Fly))
}

func TestParseMotility(t *testing.T) {
	m, err := ParseMotility("Land", " fly ")
	require.NoError(t, err)
	assert.Equal(t, Land|Fly, m)
	assert.Equal(t, "land|fly", m.String())

	m, err = ParseMotility()
	require.NoError(t, err)
	assert.Equal(t, None, m)
	assert.Equal(t, "none", m.String())

	_, err = ParseMotility("teleport")
	assert.Error(t, err)
}

func TestShapeDirections(t *testing.T) {
	assert.Equal(t, Cardinal, FourWay.Directions())
	assert.Equal(t, Clockwise, EightWay.Directions())
	assert.Equal(t, Clockwise, AllNeighbors.Directions())
	assert.Equal(t, Clockwise, Shape(0).Directions(), "no flags means all neighbors")

	s, err := ParseShape("four-way")
	require.NoError(t, err)
	assert.Equal(t, FourWay, s)
	_, err = ParseShape("hex")
	assert.Error(t, err)
}

func TestNodeEffectiveMotility(t *testing.T) {
	tests := []struct {
		name    string
		terrain Motility
		content Motility
		want    Motility
	}{
		{"intersection", Land | Fly, Fly | Swim, Fly},
		{"unconstrained terrain yields content", Unconstrained, Swim, Swim},
		{"unconstrained content yields terrain", Land | Fly, Unconstrained, Land | Fly},
		{"empty content is no restriction", Land, None, Land},
		{"disjoint", Land, Swim, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Node{Terrain: Terrain{Motility: tt.terrain}, Content: tt.content}
			assert.Equal(t, tt.want, n.Motility())
		})
	}
}

func TestDirections(t *testing.T) {
	for _, d := range Clockwise {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, Point{}, d.Offset().Add(d.Opposite().Offset()))
		assert.Equal(t, d, Towards(Pt(3, 3), Pt(3, 3).Step(d)))
	}
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, SouthEast, NorthWest.Opposite())
	assert.Equal(t, NoDirection, Towards(Pt(0, 0), Pt(2, 0)))
	assert.Equal(t, Pt(0, -1), North.Offset(), "y grows southward")
}

func TestMotilityAlgebra(t *testing.T) {
	flags := []Motility{None, Land, Swim, Climb, Fly, Burrow, Incorporeal, Unconstrained}
	for _, a := range flags {
		for _, b := range flags {
			for _, c := range flags {
				x, y := a|c, b|c
				u := x.Union(y)
				assert.True(t, u.Has(x) && u.Has(y), "%v | %v", x, y)
				assert.Equal(t, x, u.Intersect(x))
				assert.False(t, x.Subtract(y).Contains(y), "%v - %v", x, y)
			}
		}
	}
}
