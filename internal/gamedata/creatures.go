package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvegrid/internal/pathfind"
)

// CreatureDef defines a creature type loaded from JSON.
type CreatureDef struct {
	ID          string   `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string   `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string   `json:"glyph"`       // Single character for rendering
	Color       string   `json:"color"`       // Hex color (e.g., "#00C000")
	Motility    []string `json:"motility"`    // Locomotion capabilities
	Shape       string   `json:"shape"`       // "four-way" or "eight-way"
	Speed       int      `json:"speed"`       // Movement budget per turn
	SpawnWeight int      `json:"spawnWeight"` // Relative spawn probability
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CreatureDef) GlyphRune() rune {
	if len(c.Glyph) == 0 {
		return '?'
	}
	return rune(c.Glyph[0])
}

// TCellColor returns the creature's color as a tcell.Color.
func (c *CreatureDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Agent resolves the creature's movement profile.
func (c *CreatureDef) Agent() (pathfind.Agent, error) {
	m, err := pathfind.ParseMotility(c.Motility...)
	if err != nil {
		return pathfind.Agent{}, fmt.Errorf("creature %s: %w", c.ID, err)
	}
	s, err := pathfind.ParseShape(c.Shape)
	if err != nil {
		return pathfind.Agent{}, fmt.Errorf("creature %s: %w", c.ID, err)
	}
	return pathfind.Agent{Motility: m, Shape: s}, nil
}

// CreaturesFile represents the structure of creatures.json.
type CreaturesFile struct {
	Creatures []CreatureDef `json:"creatures"`
}

// LoadCreatures loads creature definitions from the embedded creatures.json file.
func LoadCreatures() ([]CreatureDef, error) {
	file, err := Load[CreaturesFile]("creatures.json")
	if err != nil {
		return nil, err
	}
	return file.Creatures, nil
}
