package system

import (
	"shadoblade/internal/component"
	"shadoblade/internal/gamemap"
)

var daylight = gamemap.RGB{R: 1, G: 1, B: 1}

// Lighting fills the map's light buffer. Outdoor levels are lit evenly;
// underground, each light source brightens the tiles it can see, fading
// linearly to nothing at its range.
func Lighting(c *Context) {
	w, m := c.World, c.Map
	if m.Outdoors {
		for i := range m.Light {
			m.Light[i] = daylight
		}
		return
	}
	clear(m.Light)
	for _, id := range w.Query(component.CLightSource, component.CViewshed, component.CPosition) {
		light := w.Get(id, component.CLightSource).(component.LightSource)
		if light.Range <= 0 {
			continue
		}
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		pos := w.Get(id, component.CPosition).(component.Position)
		origin := m.XYIdx(pos.X, pos.Y)
		for _, idx := range vs.Visible {
			intensity := (float64(light.Range) - m.Distance(origin, idx)) / float64(light.Range)
			if intensity > 0 {
				m.Light[idx] = m.Light[idx].Add(light.Color.Scale(intensity))
			}
		}
	}
}
