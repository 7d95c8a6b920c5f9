// Package render draws a level and its entities onto a tcell screen.
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/gamemap"
)

// hudRows is how many rows at the bottom of the screen the HUD uses.
const hudRows = 6

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, max(h-hudRows, 1)),
	}
}

// Resize fits the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-hudRows, 1))
}

// CenterOn makes the camera follow world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Follow(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.ToScreen(wx, wy)
}

// DrawFrame clears the screen and draws the level and the entities the
// player can see. It does not call Show.
func (r *Renderer) DrawFrame(w *ecs.World, m *gamemap.Map) {
	r.screen.Clear()
	r.camera.Fit(m.Width, m.Height)
	r.drawMap(m)
	r.drawEntities(w, m)
}

// drawMap renders revealed tiles. Visible tiles are lit; remembered ones
// are drawn dim.
func (r *Renderer) drawMap(m *gamemap.Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.XYIdx(x, y)
			if !m.Revealed[idx] {
				continue
			}
			sx, sy, onScreen := r.camera.ToScreen(x, y)
			if !onScreen {
				continue
			}
			look := lookOf(m.Tiles[idx])
			style := tcell.StyleDefault.Background(tcell.ColorBlack)
			if m.Visible[idx] {
				style = style.Foreground(litColor(m, idx, look.fg))
				if m.Bloodstains.Has(idx) {
					style = style.Background(bloodBG)
				}
			} else {
				style = style.Foreground(rememberedFG)
			}
			r.putGlyph(sx, sy, string(look.glyph), style)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders entities on visible tiles. Lower render orders draw
// on top, so they are drawn last.
func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.Map) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		if w.Has(id, component.CHidden) {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		if !m.InBounds(pos.X, pos.Y) || !m.Visible[m.XYIdx(pos.X, pos.Y)] {
			continue
		}
		entities = append(entities, renderableEntity{pos: pos, rend: w.Get(id, component.CRenderable).(component.Renderable)})
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder > entities[j].rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.ToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FG).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// DrawCursor highlights the targeting cursor at world (x, y).
func (r *Renderer) DrawCursor(x, y int) {
	sx, sy, ok := r.camera.ToScreen(x, y)
	if !ok {
		return
	}
	mainc, combc, style, _ := r.screen.GetContent(sx, sy)
	r.screen.SetContent(sx, sy, mainc, combc, style.Background(tcell.ColorDarkCyan))
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < 2 {
		// Pad narrow glyphs so every tile is two columns.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
