package render

import (
	"github.com/gdamore/tcell/v2"

	"shadoblade/internal/gamemap"
)

// tileLook is how one kind of terrain is drawn.
type tileLook struct {
	glyph rune
	fg    gamemap.RGB
}

var tileLooks = map[gamemap.TileType]tileLook{
	gamemap.Wall:         {'#', gamemap.RGB{R: 0.6, G: 0.6, B: 0.6}},
	gamemap.Stalactite:   {'╨', gamemap.RGB{R: 0.5, G: 0.5, B: 0.6}},
	gamemap.Stalagmite:   {'╥', gamemap.RGB{R: 0.5, G: 0.5, B: 0.6}},
	gamemap.Floor:        {'.', gamemap.RGB{R: 0.5, G: 0.5, B: 0.5}},
	gamemap.DownStairs:   {'>', gamemap.RGB{R: 0, G: 1, B: 1}},
	gamemap.UpStairs:     {'<', gamemap.RGB{R: 0, G: 1, B: 1}},
	gamemap.Road:         {'≡', gamemap.RGB{R: 0.8, G: 0.7, B: 0.3}},
	gamemap.Grass:        {'"', gamemap.RGB{R: 0.1, G: 0.8, B: 0.1}},
	gamemap.ShallowWater: {'~', gamemap.RGB{R: 0.3, G: 0.6, B: 1}},
	gamemap.DeepWater:    {'≈', gamemap.RGB{R: 0.1, G: 0.2, B: 1}},
	gamemap.WoodFloor:    {'░', gamemap.RGB{R: 0.6, G: 0.4, B: 0.2}},
	gamemap.Bridge:       {'▒', gamemap.RGB{R: 0.6, G: 0.4, B: 0.2}},
	gamemap.Gravel:       {';', gamemap.RGB{R: 0.5, G: 0.5, B: 0.4}},
}

var (
	rememberedFG = tcell.NewRGBColor(60, 60, 60)
	bloodBG      = tcell.NewRGBColor(90, 0, 0)
)

func lookOf(t gamemap.TileType) tileLook {
	if l, ok := tileLooks[t]; ok {
		return l
	}
	return tileLook{'?', gamemap.RGB{R: 1, B: 1}}
}

// toColor converts an RGB in [0,1] to a terminal colour, clamping each
// channel.
func toColor(c gamemap.RGB) tcell.Color {
	ch := func(v float64) int32 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return int32(v * 255)
	}
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}

// litColor tints base by the light falling on tile idx. Outdoor levels are
// drawn at full colour.
func litColor(m *gamemap.Map, idx int, base gamemap.RGB) tcell.Color {
	if m.Outdoors || idx >= len(m.Light) {
		return toColor(base)
	}
	l := m.Light[idx]
	return toColor(gamemap.RGB{R: base.R * l.R, G: base.G * l.G, B: base.B * l.B})
}
