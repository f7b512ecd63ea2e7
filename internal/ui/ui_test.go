package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/delvegrid/internal/entity"
	"github.com/samdwyer/delvegrid/internal/gamedata"
	"github.com/samdwyer/delvegrid/internal/pathfind"
)

func testView(t *testing.T) View {
	t.Helper()
	catalog := gamedata.MustLoadCatalog()
	floor := catalog.MustTerrain("floor")
	wall := catalog.MustTerrain("wall")

	g := pathfind.NewGrid(4, 3)
	g.Fill(func(p pathfind.Point) pathfind.Node {
		if p.X == 0 || p.X == 3 || p.Y == 0 || p.Y == 2 {
			return pathfind.Node{Terrain: wall}
		}
		return pathfind.Node{Terrain: floor}
	})

	registry := gamedata.MustLoadCreatureRegistry()
	goblin, err := entity.NewActor(registry.GetByID("goblin"), pathfind.Pt(2, 1))
	require.NoError(t, err)

	return View{
		Grid:    g,
		Catalog: catalog,
		Actors:  []*entity.Actor{goblin},
		Party:   entity.NewParty(pathfind.Pt(1, 1)),
	}
}

func TestDump(t *testing.T) {
	v := testView(t)
	v.Status = "ok"

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, v))
	assert.Equal(t, strings.Join([]string{"####", "#&g#", "####", "ok", ""}, "\n"), buf.String())
}

func TestRenderer(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := WrapScreen(sim)
	require.NoError(t, err)
	defer screen.Close()
	sim.SetSize(20, 5)

	v := testView(t)
	v.Overlay = v.Grid.FloodFill(v.Party.Pos, 1, v.Party.Agent)
	NewRenderer(screen).Render(v)

	ch, _ := screen.Content(0, 0)
	assert.Equal(t, '#', ch)
	ch, _ = screen.Content(1, 1)
	assert.Equal(t, '&', ch)
	ch, _ = screen.Content(2, 1)
	assert.Equal(t, 'g', ch)

	_, floorStyle := screen.Content(1, 0)
	_, overlayStyle := screen.Content(2, 1)
	assert.NotEqual(t, floorStyle, overlayStyle)
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(7, 12, 9, 23.456, "explore")
	assert.Contains(t, line, "seed 7")
	assert.Contains(t, line, "rooms 12")
	assert.Contains(t, line, "23.5%")
}

func TestRendererStatusLine(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := WrapScreen(sim)
	require.NoError(t, err)
	defer screen.Close()
	sim.SetSize(20, 5)

	v := testView(t)
	v.Status = "hello"
	NewRenderer(screen).Render(v)

	ch, _ := screen.Content(0, v.Grid.Height())
	assert.Equal(t, 'h', ch)
}
