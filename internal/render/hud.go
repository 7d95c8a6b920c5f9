package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/gamemap"
)

// StatusLine summarises the player for the HUD.
func StatusLine(w *ecs.World, player ecs.EntityID, m *gamemap.Map) string {
	line := fmt.Sprintf("Depth %d: %s", m.Depth, m.Name)
	if p, ok := ecs.Fetch[component.Pools](w, player); ok {
		line = fmt.Sprintf("HP %d/%d  Mana %d/%d  Lvl %d  XP %d/%d  Gold %.0f  %s",
			p.HitPoints.Current, p.HitPoints.Max, p.Mana.Current, p.Mana.Max,
			p.Level, p.XP, component.XPToLevel(p.Level), p.Gold, line)
	}
	if h, ok := ecs.Fetch[component.HungerClock](w, player); ok && h.State != component.Normal {
		line += "  " + h.State.String()
	}
	return line
}

// DrawHUD renders the status bar and the newest messages at the bottom of
// the screen, then shows the frame.
func (r *Renderer) DrawHUD(status string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	rows := hudRows - 2
	start := max(len(messages)-rows, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
	r.screen.Show()
}

// DrawMenu draws a lettered list of rows in a box over the map.
func (r *Renderer) DrawMenu(title string, rows []string) {
	width := runewidth.StringWidth(title) + 4
	for i, row := range rows {
		width = max(width, runewidth.StringWidth(fmt.Sprintf("(%c) %s", 'a'+i, row))+4)
	}
	x, y := 2, 1
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for dy := range len(rows) + 3 {
		for dx := range width {
			r.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
	r.drawText(x+1, y, title, style.Foreground(tcell.ColorYellow))
	if len(rows) == 0 {
		r.drawText(x+1, y+1, "(nothing)", style)
	}
	for i, row := range rows {
		r.drawText(x+1, y+1+i, fmt.Sprintf("(%c) %s", 'a'+i, row), style)
	}
	r.drawText(x+1, y+len(rows)+2, "ESC to cancel", style.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, cutting it at the screen edge.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	screenW, _ := r.screen.Size()
	text = runewidth.Truncate(text, max(screenW-x, 0), "…")
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
