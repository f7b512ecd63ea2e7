// Package level builds procedural levels on a traversal grid: rooms are
// scattered, their centers triangulated and reduced to a spanning tree, and
// hallways carved along the surviving links.
package level

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/delvegrid/internal/entity"
	"github.com/samdwyer/delvegrid/internal/gamedata"
	"github.com/samdwyer/delvegrid/internal/pathfind"
	"github.com/samdwyer/delvegrid/internal/telemetry"
)

// ErrAttemptsExhausted is returned when no attempt met the acceptance rules
// within Options.MaxAttempts.
var ErrAttemptsExhausted = errors.New("level generation attempts exhausted")

// Tile IDs the generator needs from the catalog.
const (
	TileStone = "stone"
	TileFloor = "floor"
	TileWall  = "wall"
)

// DefaultHallwaySearch routes hallways unless UseSearcher swaps it out.
var DefaultHallwaySearch = pathfind.Strategy{Algorithm: pathfind.AStar, Heuristic: pathfind.Manhattan}

// Generator owns a level's grid and rebuilds it on every Generate call.
type Generator struct {
	opts      Options
	grid      *pathfind.Grid
	rng       *Rng
	creatures *gamedata.CreatureRegistry
	searcher  pathfind.Searcher

	stone, floor, wall pathfind.Terrain

	rooms    []Room
	actors   []*entity.Actor
	occupied mapset.Set[pathfind.Point]
	hallways mapset.Set[pathfind.Point]
	start    pathfind.Point
	attempts int
	open     int
}

// New creates a generator for a fresh grid sized by opts. The catalog must
// define stone, floor and wall tiles. creatures may be nil for an empty
// level.
func New(opts Options, rng *rand.Rand, catalog *gamedata.Catalog, creatures *gamedata.CreatureRegistry) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		opts:      opts,
		grid:      pathfind.NewGrid(opts.Width, opts.Height),
		rng:       NewRng(rng),
		creatures: creatures,
		searcher:  DefaultHallwaySearch,
		occupied:  mapset.New[pathfind.Point](),
		hallways:  mapset.New[pathfind.Point](),
	}
	required := []struct {
		id  string
		dst *pathfind.Terrain
	}{
		{TileStone, &g.stone},
		{TileFloor, &g.floor},
		{TileWall, &g.wall},
	}
	for _, r := range required {
		t, ok := catalog.Terrain(r.id)
		if !ok {
			return nil, fmt.Errorf("tile catalog has no %q tile", r.id)
		}
		*r.dst = t
	}
	g.reset()
	return g, nil
}

// Generate rebuilds the level until an attempt is dense enough, and returns
// the start position inside the first room. It gives up with
// ErrAttemptsExhausted after Options.MaxAttempts, or with the context's
// error if ctx ends between attempts.
func (g *Generator) Generate(ctx context.Context) (pathfind.Point, error) {
	tracer := telemetry.Tracer("level")
	ctx, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()
	g.attempts = 0

	for {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "cancelled")
			return pathfind.Point{}, err
		}
		if g.attempts >= g.opts.MaxAttempts {
			err := fmt.Errorf("%w after %d attempts", ErrAttemptsExhausted, g.attempts)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return pathfind.Point{}, err
		}
		g.attempts++
		if g.attempt(ctx) {
			break
		}
	}

	span.SetAttributes(
		attribute.Int("level.width", g.opts.Width),
		attribute.Int("level.height", g.opts.Height),
		attribute.Int("level.attempts", g.attempts),
		attribute.Int("level.room_count", len(g.rooms)),
		attribute.Int("level.actor_count", len(g.actors)),
		attribute.Int("level.hallway_tiles", g.hallways.Size()),
		attribute.Float64("level.open_percent", g.OpenPercent()),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return g.start, nil
}

// attempt runs one full build and reports whether it was kept.
func (g *Generator) attempt(ctx context.Context) bool {
	_, span := telemetry.Tracer("level").Start(ctx, "level.attempt",
		trace.WithAttributes(attribute.Int("level.attempt", g.attempts)))
	defer span.End()

	g.reset()
	reason := g.build()

	span.SetAttributes(
		attribute.Int("level.room_count", len(g.rooms)),
		attribute.Int("level.open_count", g.open),
	)
	if reason != "" {
		span.AddEvent("attempt.rejected", trace.WithAttributes(attribute.String("reason", reason)))
		return false
	}
	return true
}

// build lays out one candidate level. It returns why the candidate was
// rejected, or "" if it is acceptable.
func (g *Generator) build() string {
	first, ok := g.placeRoom(true)
	if !ok {
		return "starting room does not fit"
	}
	g.start = first.Center()
	g.populate(first)

	for i := 0; i < g.opts.MaxTries; i++ {
		if room, ok := g.placeRoom(false); ok {
			g.populate(room)
		}
	}

	if !g.makeHallways() {
		return "hallway could not be routed"
	}

	g.open = g.grid.Count(func(n pathfind.Node) bool { return n.Allows(pathfind.Land) })
	if 100*g.open < g.opts.MinimumOpenPercent*g.grid.Len() {
		return "too little open space"
	}
	return ""
}

// reset clears the level back to solid stone with open connections.
func (g *Generator) reset() {
	g.rooms = nil
	g.actors = nil
	g.occupied.Clear()
	g.hallways.Clear()
	g.open = 0
	g.start = pathfind.Point{}

	g.grid.Fill(func(pathfind.Point) pathfind.Node {
		return pathfind.Node{Terrain: g.stone}
	})
	g.grid.FillEdges(func(pathfind.Key) pathfind.Edge { return pathfind.OpenEdge })
	g.grid.FillVertices(func(pathfind.Key) pathfind.Edge { return pathfind.OpenVertex })
}

// placeRoom picks a size and position and carves the room if the spot is
// still solid stone. The first room is placed near the middle.
func (g *Generator) placeRoom(first bool) (Room, bool) {
	width := g.rng.Int(g.opts.RoomSizeMin, g.opts.RoomSizeMax)
	height := g.rng.Int(g.opts.RoomSizeMin, g.opts.RoomSizeMax)

	var x, y int
	if first {
		cx, cy := (g.opts.Width-width)/2, (g.opts.Height-height)/2
		x = g.rng.TriangleInt(cx, max(cx-4, 0))
		y = g.rng.TriangleInt(cy, max(cy-4, 0))
	} else {
		x = g.rng.Below(g.opts.Width)
		y = g.rng.Below(g.opts.Height)
	}

	room := Room{X: x, Y: y, Width: width, Height: height}
	if !g.IsOpen(room.Inflate(1), nil) {
		return Room{}, false
	}

	for _, p := range room.Points() {
		g.SetTile(p, g.floor)
	}
	for _, p := range room.Trace() {
		g.SetTile(p, g.wall)
	}
	g.rooms = append(g.rooms, room)
	return room, true
}

// populate may drop one creature on a free interior tile it can stand on.
func (g *Generator) populate(room Room) {
	if g.creatures == nil || !g.rng.Chance(g.opts.ChanceOfActor) {
		return
	}
	def := g.creatures.SpawnRandom(g.rng.Rand)
	if def == nil {
		return
	}
	agent, err := def.Agent()
	if err != nil {
		return
	}

	var spots []pathfind.Point
	for _, p := range room.Interior() {
		if p != g.start && !g.occupied.Has(p) && g.grid.Node(p).Allows(agent.Motility) {
			spots = append(spots, p)
		}
	}
	if len(spots) == 0 {
		return
	}

	actor, err := entity.NewActor(def, spots[g.rng.Below(len(spots))])
	if err != nil {
		return
	}
	g.actors = append(g.actors, actor)
	g.occupied.Put(actor.Pos)
}

// makeHallways links rooms along a spanning tree of their Delaunay
// triangulation plus a few extra loops. It returns false only when
// RequireConnectivity is set and a hallway could not be routed.
func (g *Generator) makeHallways() bool {
	centers := make([]pathfind.Point, len(g.rooms))
	for i, r := range g.rooms {
		centers[i] = r.Center()
	}

	tree, rest := spanningTree(centers, triangulate(centers))
	selected := slices.Clone(tree)
	for _, l := range rest {
		if g.rng.Chance(g.opts.ChanceOfExtraHallway) {
			selected = append(selected, l)
		}
	}
	slices.SortFunc(selected, compareLinks)

	for _, l := range selected {
		goal := centers[l.B]
		path, err := g.searcher.Search(g.grid, centers[l.A], goal, g.opts.HallwayAgent).Path(goal)
		if err != nil {
			if g.opts.RequireConnectivity {
				return false
			}
			continue
		}
		g.carve(path)
	}
	return true
}

// carve floors every step of path and walls off any stone around it.
func (g *Generator) carve(path []pathfind.Point) {
	for _, step := range path {
		if g.grid.Node(step).Terrain.Name == g.stone.Name {
			g.hallways.Put(step)
		}
		g.SetTile(step, g.floor)
		for _, n := range g.grid.Neighbors(step, pathfind.Clockwise) {
			if g.grid.Node(n).Terrain.Name == g.stone.Name {
				g.SetTile(n, g.wall)
			}
		}
	}
}

// IsOpen reports whether rect lies fully on the grid and covers nothing but
// stone. exception, if non-nil, is a tile allowed to be something else.
func (g *Generator) IsOpen(rect Room, exception *pathfind.Point) bool {
	bounds := Room{Width: g.opts.Width, Height: g.opts.Height}
	if rect.Empty() || !bounds.ContainsRoom(rect) {
		return false
	}
	for _, p := range rect.Points() {
		if exception != nil && *exception == p {
			continue
		}
		if g.grid.Node(p).Terrain.Name != g.stone.Name {
			return false
		}
	}
	return true
}

// SetTile replaces the tile at p. Any content on the old tile is dropped.
func (g *Generator) SetTile(p pathfind.Point, t pathfind.Terrain) {
	g.grid.SetNode(p, pathfind.Node{Terrain: t})
}

// Tile returns the terrain at p.
func (g *Generator) Tile(p pathfind.Point) pathfind.Terrain {
	return g.grid.Node(p).Terrain
}

// UseSearcher replaces the hallway router. nil restores
// DefaultHallwaySearch.
func (g *Generator) UseSearcher(s pathfind.Searcher) {
	if s == nil {
		s = DefaultHallwaySearch
	}
	g.searcher = s
}

// Grid returns the level's traversal graph.
func (g *Generator) Grid() *pathfind.Grid { return g.grid }

// Options returns the settings the generator was built with.
func (g *Generator) Options() Options { return g.opts }

// Rooms returns a copy of the current level's rooms, starting room first.
func (g *Generator) Rooms() []Room { return slices.Clone(g.rooms) }

// Actors returns a copy of the list of creatures on the current level.
func (g *Generator) Actors() []*entity.Actor { return slices.Clone(g.actors) }

// Start returns the start position of the current level.
func (g *Generator) Start() pathfind.Point { return g.start }

// Attempts returns how many attempts the last Generate call made.
func (g *Generator) Attempts() int { return g.attempts }

// OpenPercent returns the share of tiles that admit land movement.
func (g *Generator) OpenPercent() float64 {
	if g.grid.Len() == 0 {
		return 0
	}
	return 100 * float64(g.open) / float64(g.grid.Len())
}

// Occupied reports whether an actor stands on p.
func (g *Generator) Occupied(p pathfind.Point) bool {
	return g.occupied.Has(p)
}

// MoveActor relocates a to the given tile and keeps occupancy in sync.
func (g *Generator) MoveActor(a *entity.Actor, to pathfind.Point) {
	if a.Pos == to {
		return
	}
	g.occupied.Remove(a.Pos)
	a.Pos = to
	g.occupied.Put(to)
}
