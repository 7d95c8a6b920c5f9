package mapbuilder

import (
	"bufio"
	"io"

	"github.com/gookit/color"

	"shadoblade/internal/gamemap"
)

type dumpGlyph struct {
	ch    rune
	style color.Style
}

var tileGlyphs = map[gamemap.TileType]dumpGlyph{
	gamemap.Wall:         {'#', color.Style{color.FgGray}},
	gamemap.Stalactite:   {'|', color.Style{color.FgGray, color.OpBold}},
	gamemap.Stalagmite:   {'!', color.Style{color.FgGray, color.OpBold}},
	gamemap.Floor:        {'.', color.Style{color.FgDarkGray}},
	gamemap.DownStairs:   {'>', color.Style{color.FgYellow, color.OpBold}},
	gamemap.UpStairs:     {'<', color.Style{color.FgYellow, color.OpBold}},
	gamemap.Road:         {'=', color.Style{color.FgYellow}},
	gamemap.Grass:        {'"', color.Style{color.FgGreen}},
	gamemap.ShallowWater: {'~', color.Style{color.FgCyan}},
	gamemap.DeepWater:    {'~', color.Style{color.FgBlue, color.OpBold}},
	gamemap.WoodFloor:    {'_', color.Style{color.FgYellow}},
	gamemap.Bridge:       {'+', color.Style{color.FgYellow}},
	gamemap.Gravel:       {',', color.Style{color.FgGray}},
}

var (
	startStyle = color.Style{color.FgGreen, color.OpBold}
	spawnStyle = color.Style{color.FgRed}
)

// Dump writes the built map as text, one row per line, marking the start
// with '@' and spawns with '*'. When colored is set each glyph carries
// terminal color codes.
func Dump(w io.Writer, b *BuildData, colored bool) error {
	m := b.Map
	spawns := make(map[int]bool, len(b.SpawnList))
	for _, s := range b.SpawnList {
		spawns[s.Idx] = true
	}
	start, hasStart := b.StartIdx()

	bw := bufio.NewWriter(w)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.XYIdx(x, y)
			g, ok := tileGlyphs[m.Tiles[idx]]
			if !ok {
				g = dumpGlyph{'?', color.Style{color.FgMagenta}}
			}
			switch {
			case hasStart && idx == start:
				g = dumpGlyph{'@', startStyle}
			case spawns[idx]:
				g = dumpGlyph{'*', spawnStyle}
			}
			if colored {
				bw.WriteString(g.style.Sprint(string(g.ch)))
			} else {
				bw.WriteRune(g.ch)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
