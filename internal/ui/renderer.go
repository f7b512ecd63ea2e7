package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvegrid/internal/entity"
	"github.com/samdwyer/delvegrid/internal/gamedata"
	"github.com/samdwyer/delvegrid/internal/pathfind"
)

// View is everything the renderer draws in one frame.
type View struct {
	Grid    *pathfind.Grid
	Catalog *gamedata.Catalog
	Actors  []*entity.Actor
	Party   *entity.Party
	// Overlay, if set, highlights every tile it reached.
	Overlay *pathfind.Result
	Status  string
}

// Renderer handles drawing the level to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the level, its creatures and the party to the screen.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	v.Grid.Each(func(n pathfind.Node) {
		glyph, style := r.tileStyle(v.Catalog, n.Terrain)
		if v.Overlay != nil && v.Overlay.Reached(n.Pos) {
			style = style.Background(tcell.ColorNavy)
		}
		r.screen.SetContent(n.Pos.X, n.Pos.Y, glyph, style)
	})

	for _, a := range v.Actors {
		style := tcell.StyleDefault.Foreground(a.Def.TCellColor())
		r.screen.SetContent(a.Pos.X, a.Pos.Y, a.Def.GlyphRune(), style)
	}

	if v.Party != nil {
		partyStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(v.Party.Pos.X, v.Party.Pos.Y, v.Party.Symbol, partyStyle)
	}

	if _, height := r.screen.Size(); v.Status != "" && v.Grid.Height() < height {
		r.RenderMessage(v.Status, v.Grid.Height())
	}

	r.screen.Show()
}

// tileStyle returns the glyph and style for a terrain.
func (r *Renderer) tileStyle(catalog *gamedata.Catalog, t pathfind.Terrain) (rune, tcell.Style) {
	def := catalog.Def(t.Index)
	if def == nil {
		return '?', tcell.StyleDefault
	}
	return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

// StatusLine summarizes a level for the bottom of the screen.
func StatusLine(seed int64, rooms, actors int, openPercent float64, mode string) string {
	return fmt.Sprintf("seed %d  rooms %d  creatures %d  open %.1f%%  [%s]  arrows move  m range  space act  r regen  q quit",
		seed, rooms, actors, openPercent, mode)
}
