package game

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvegrid/internal/entity"
	"github.com/samdwyer/delvegrid/internal/gamedata"
	"github.com/samdwyer/delvegrid/internal/level"
	"github.com/samdwyer/delvegrid/internal/pathfind"
	"github.com/samdwyer/delvegrid/internal/telemetry"
	"github.com/samdwyer/delvegrid/internal/ui"
)

// Game holds the entire preview state.
type Game struct {
	cfg      Config
	seed     int64
	rng      *rand.Rand
	catalog  *gamedata.Catalog
	level    *level.Generator
	party    *entity.Party
	overlay  *pathfind.Result
	screen   *ui.Screen
	renderer *ui.Renderer
	state    State
	running  bool
}

// New creates a new game instance. The screen is opened by Run, so a game
// can also be used headless through Dump.
func New(cfg Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, err
	}
	creatures, err := gamedata.LoadCreatureRegistry()
	if err != nil {
		return nil, err
	}
	gen, err := level.New(cfg.Level, rng, catalog, creatures)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:     cfg,
		seed:    seed,
		rng:     rng,
		catalog: catalog,
		level:   gen,
		state:   StateExplore,
	}, nil
}

// Seed returns the seed actually in use.
func (g *Game) Seed() int64 { return g.seed }

// Level returns the level generator.
func (g *Game) Level() *level.Generator { return g.level }

// Party returns the player's party, or nil before the first level.
func (g *Game) Party() *entity.Party { return g.party }

// State returns the current preview mode.
func (g *Game) State() State { return g.state }

// Regenerate builds a new level and places the party at its start.
func (g *Game) Regenerate(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.regenerate")
	defer span.End()

	start, err := g.level.Generate(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}
	g.party = entity.NewParty(start)
	g.state = StateExplore
	g.overlay = nil

	span.SetAttributes(
		attribute.Int64("game.seed", g.seed),
		attribute.Int("level.rooms", len(g.level.Rooms())),
		attribute.Int("party.start_x", start.X),
		attribute.Int("party.start_y", start.Y),
	)
	return nil
}

// Dump generates a level and writes it to w as text.
func (g *Game) Dump(ctx context.Context, w io.Writer) error {
	if err := g.Regenerate(ctx); err != nil {
		return err
	}
	return ui.Dump(w, g.view())
}

// Run opens the terminal and executes the main preview loop.
func (g *Game) Run(ctx context.Context) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	return g.RunOn(ctx, screen)
}

// RunOn executes the main preview loop on an already opened screen, which
// it closes on exit.
func (g *Game) RunOn(ctx context.Context, screen *ui.Screen) error {
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	defer g.Close()

	if err := g.Regenerate(ctx); err != nil {
		return err
	}

	g.running = true
	for g.running {
		g.renderer.Render(g.view())
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) view() ui.View {
	return ui.View{
		Grid:    g.level.Grid(),
		Catalog: g.catalog,
		Actors:  g.level.Actors(),
		Party:   g.party,
		Overlay: g.overlay,
		Status: ui.StatusLine(g.seed, len(g.level.Rooms()), len(g.level.Actors()),
			g.level.OpenPercent(), g.state.String()),
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.HandleKey(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// The screen was finalized.
		g.running = false
	}
	return nil
}

// HandleKey processes keyboard input.
func (g *Game) HandleKey(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(pathfind.North)
	case tcell.KeyDown:
		g.tryMove(pathfind.South)
	case tcell.KeyLeft:
		g.tryMove(pathfind.West)
	case tcell.KeyRight:
		g.tryMove(pathfind.East)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			return g.Regenerate(ctx)
		case 'm', 'M':
			g.state = g.state.Toggle()
			g.refreshOverlay()
		case ' ':
			g.ActCreatures(ctx)
		}
	}
	return nil
}

// tryMove attempts to move the party one step.
func (g *Game) tryMove(d pathfind.Direction) {
	if g.level.Occupied(g.party.Pos.Step(d)) {
		return
	}
	if g.party.TryMove(g.level.Grid(), d) {
		g.refreshOverlay()
	}
}

func (g *Game) refreshOverlay() {
	if g.state != StateRange {
		g.overlay = nil
		return
	}
	g.overlay = g.level.Grid().FloodFill(g.party.Pos, float64(g.party.Speed), g.party.Agent)
}

// ActCreatures gives every creature one move: those that can see the party
// within twice their speed close in, the rest wander.
func (g *Game) ActCreatures(ctx context.Context) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.act")
	defer span.End()

	grid := g.level.Grid()
	occupied := func(p pathfind.Point) bool {
		return p == g.party.Pos || g.level.Occupied(p)
	}

	moved := 0
	for _, a := range g.level.Actors() {
		var dest pathfind.Point
		if pathfind.Chebyshev(a.Pos, g.party.Pos) <= float64(2*a.Speed) {
			dest = entity.Approach(grid, a, g.party.Pos, occupied)
		} else {
			dest = entity.Wander(grid, a, g.rng, occupied)
		}
		if dest != a.Pos {
			moved++
		}
		g.level.MoveActor(a, dest)
	}
	span.SetAttributes(attribute.Int("game.actors_moved", moved))
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
