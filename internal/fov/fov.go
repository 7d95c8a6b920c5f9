// Package fov computes visible tile sets with recursive shadowcasting.
package fov

import (
	"slices"

	"shadoblade/internal/gamemap"
)

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

type caster struct {
	m       *gamemap.Map
	cx, cy  int
	radius  int
	seen    []bool
	visible []int
}

func (c *caster) light(x, y int) {
	if !c.m.InBounds(x, y) {
		return
	}
	idx := c.m.XYIdx(x, y)
	if !c.seen[idx] {
		c.seen[idx] = true
		c.visible = append(c.visible, idx)
	}
}

// Visible returns the indices of every tile visible from origin within
// radius, in ascending order. Opaque tiles that bound the view are
// included; the origin always is.
func Visible(m *gamemap.Map, origin gamemap.Point, radius int) []int {
	if !m.InBounds(origin.X, origin.Y) {
		return nil
	}
	c := &caster{m: m, cx: origin.X, cy: origin.Y, radius: radius, seen: make([]bool, m.Size())}
	c.light(origin.X, origin.Y)
	for _, o := range octants {
		c.cast(1, 1.0, 0.0, o[0], o[1], o[2], o[3])
	}
	slices.Sort(c.visible)
	return c.visible
}

// cast lights one octant. row is the distance from the origin along the
// main axis; start and end are the slopes still open to light.
func (c *caster) cast(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(c.radius * c.radius)
	newStart := start

	for j := row; j <= c.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := c.cx + dx*xx + dy*xy
			wy := c.cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) <= radiusSq {
				c.light(wx, wy)
			}

			opaque := !c.m.InBounds(wx, wy) || c.m.IsOpaque(c.m.XYIdx(wx, wy))

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < c.radius {
				blocked = true
				c.cast(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
