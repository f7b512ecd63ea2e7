package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvegrid/internal/pathfind"
)

// TileDef defines a terrain type loaded from JSON.
type TileDef struct {
	ID       string   `json:"id"`       // Unique identifier (e.g., "floor")
	Name     string   `json:"name"`     // Display name
	Glyph    string   `json:"glyph"`    // Single character for rendering
	Color    string   `json:"color"`    // Hex color (e.g., "#8A8A8A")
	Motility []string `json:"motility"` // Locomotion the tile admits (e.g., ["land", "fly"])
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	if len(t.Glyph) == 0 {
		return '?'
	}
	return rune(t.Glyph[0])
}

// TCellColor returns the tile's color as a tcell.Color.
func (t *TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}

// Catalog maps tile IDs to graph terrain. A terrain's Index is the
// position of its definition in the catalog.
type Catalog struct {
	defs     []TileDef
	terrains []pathfind.Terrain
	byID     map[string]int
}

// NewCatalog builds a catalog, resolving each tile's motility names.
func NewCatalog(defs []TileDef) (*Catalog, error) {
	c := &Catalog{
		defs:     defs,
		terrains: make([]pathfind.Terrain, len(defs)),
		byID:     make(map[string]int, len(defs)),
	}
	for i := range defs {
		m, err := pathfind.ParseMotility(defs[i].Motility...)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", defs[i].ID, err)
		}
		if _, dup := c.byID[defs[i].ID]; dup {
			return nil, fmt.Errorf("duplicate tile id %s", defs[i].ID)
		}
		c.byID[defs[i].ID] = i
		c.terrains[i] = pathfind.Terrain{Name: defs[i].ID, Motility: m, Index: i}
	}
	return c, nil
}

// LoadCatalog loads the embedded tiles.json into a catalog.
func LoadCatalog() (*Catalog, error) {
	defs, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	return NewCatalog(defs)
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Terrain returns the graph terrain for a tile ID.
func (c *Catalog) Terrain(id string) (pathfind.Terrain, bool) {
	i, ok := c.byID[id]
	if !ok {
		return pathfind.Terrain{}, false
	}
	return c.terrains[i], true
}

// MustTerrain returns the terrain for id, panicking if it is unknown.
func (c *Catalog) MustTerrain(id string) pathfind.Terrain {
	t, ok := c.Terrain(id)
	if !ok {
		panic(fmt.Sprintf("gamedata: unknown tile %q", id))
	}
	return t
}

// Def returns the definition behind a terrain index, or nil.
func (c *Catalog) Def(index int) *TileDef {
	if index < 0 || index >= len(c.defs) {
		return nil
	}
	return &c.defs[index]
}

// Count returns the number of tile types in the catalog.
func (c *Catalog) Count() int {
	return len(c.defs)
}
