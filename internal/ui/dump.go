package ui

import (
	"bufio"
	"io"

	"github.com/samdwyer/delvegrid/internal/pathfind"
)

// Dump writes the view as plain text, one line per grid row. Creatures and
// the party are drawn over the terrain.
func Dump(w io.Writer, v View) error {
	glyphs := make(map[pathfind.Point]rune, len(v.Actors)+1)
	for _, a := range v.Actors {
		glyphs[a.Pos] = a.Def.GlyphRune()
	}
	if v.Party != nil {
		glyphs[v.Party.Pos] = v.Party.Symbol
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < v.Grid.Height(); y++ {
		for x := 0; x < v.Grid.Width(); x++ {
			p := pathfind.Pt(x, y)
			ch, ok := glyphs[p]
			if !ok {
				ch = '?'
				if def := v.Catalog.Def(v.Grid.Node(p).Terrain.Index); def != nil {
					ch = def.GlyphRune()
				}
			}
			bw.WriteRune(ch)
		}
		bw.WriteByte('\n')
	}
	if v.Status != "" {
		bw.WriteString(v.Status)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
