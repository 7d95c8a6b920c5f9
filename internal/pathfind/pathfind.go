// Package pathfind provides distance fields and A* search over a tile graph.
package pathfind

import (
	"math"
	"slices"

	"github.com/zyedidia/generic/heap"

	"shadoblade/internal/gamemap"
)

// Graph is anything that can enumerate weighted exits from a tile.
// gamemap.Graph satisfies it.
type Graph interface {
	Size() int
	Exits(idx int) []gamemap.Exit
	Distance(a, b int) float64
}

// Unreachable is the distance recorded for tiles no start can reach.
const Unreachable = math.MaxFloat64

type node struct {
	idx  int
	cost float64
}

func byCost(a, b node) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.idx < b.idx
}

// DijkstraMap holds the shortest distance from the nearest start tile to
// every tile of a graph.
type DijkstraMap struct {
	Dist []float64
}

// NewDijkstraMap floods g from every start. Tiles further than maxDepth are
// left Unreachable.
func NewDijkstraMap(g Graph, starts []int, maxDepth float64) *DijkstraMap {
	dm := &DijkstraMap{Dist: make([]float64, g.Size())}
	for i := range dm.Dist {
		dm.Dist[i] = Unreachable
	}
	open := heap.New[node](byCost)
	for _, s := range starts {
		if s < 0 || s >= len(dm.Dist) {
			continue
		}
		dm.Dist[s] = 0
		open.Push(node{idx: s})
	}
	for open.Size() > 0 {
		cur, _ := open.Pop()
		if cur.cost > dm.Dist[cur.idx] {
			continue
		}
		for _, e := range g.Exits(cur.idx) {
			d := cur.cost + e.Cost
			if d > maxDepth || d >= dm.Dist[e.Idx] {
				continue
			}
			dm.Dist[e.Idx] = d
			open.Push(node{idx: e.Idx, cost: d})
		}
	}
	return dm
}

// Reachable reports whether idx was reached by the flood.
func (dm *DijkstraMap) Reachable(idx int) bool {
	return idx >= 0 && idx < len(dm.Dist) && dm.Dist[idx] != Unreachable
}

// FindHighestExit returns the reachable exit of idx that lies furthest from
// the starts. Ties go to the first exit in graph order.
func FindHighestExit(dm *DijkstraMap, g Graph, idx int) (int, bool) {
	best, found := 0, false
	for _, e := range g.Exits(idx) {
		if !dm.Reachable(e.Idx) {
			continue
		}
		if !found || dm.Dist[e.Idx] > dm.Dist[best] {
			best, found = e.Idx, true
		}
	}
	return best, found
}

// Path is the result of an A* search. Steps starts with the origin tile.
type Path struct {
	Success bool
	Steps   []int
	Cost    float64
}

// maxSearchNodes bounds a single search.
const maxSearchNodes = 65536

// AStar searches g for the cheapest path from start to end.
func AStar(g Graph, start, end int) Path {
	if start == end {
		return Path{Success: true, Steps: []int{start}}
	}
	size := g.Size()
	if start < 0 || start >= size || end < 0 || end >= size {
		return Path{}
	}
	gCost := map[int]float64{start: 0}
	parent := map[int]int{}
	closed := make([]bool, size)
	open := heap.New[node](byCost)
	open.Push(node{idx: start, cost: g.Distance(start, end)})

	for expanded := 0; open.Size() > 0 && expanded < maxSearchNodes; expanded++ {
		cur, _ := open.Pop()
		if closed[cur.idx] {
			continue
		}
		if cur.idx == end {
			return Path{Success: true, Steps: walkBack(parent, start, end), Cost: gCost[end]}
		}
		closed[cur.idx] = true
		for _, e := range g.Exits(cur.idx) {
			if closed[e.Idx] {
				continue
			}
			c := gCost[cur.idx] + e.Cost
			if prev, seen := gCost[e.Idx]; seen && c >= prev {
				continue
			}
			gCost[e.Idx] = c
			parent[e.Idx] = cur.idx
			open.Push(node{idx: e.Idx, cost: c + g.Distance(e.Idx, end)})
		}
	}
	return Path{}
}

func walkBack(parent map[int]int, start, end int) []int {
	steps := []int{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		steps = append(steps, cur)
	}
	slices.Reverse(steps)
	return steps
}
