package system

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"shadoblade/internal/ecs"
)

// TurnQueue records who may act this tick. Initiative grants turns;
// each AI stage claims the turns it handles, and an actor whose turn has
// been claimed is skipped by every later stage.
type TurnQueue struct {
	granted    []ecs.EntityID
	pending    mapset.Set[ecs.EntityID]
	suppressed []ecs.EntityID
}

// NewTurnQueue returns an empty queue.
func NewTurnQueue() *TurnQueue {
	return &TurnQueue{pending: mapset.New[ecs.EntityID]()}
}

// Reset drops every turn from the previous tick.
func (q *TurnQueue) Reset() {
	q.granted = q.granted[:0]
	q.pending = mapset.New[ecs.EntityID]()
	q.suppressed = q.suppressed[:0]
}

// Grant gives id a turn this tick.
func (q *TurnQueue) Grant(id ecs.EntityID) {
	if q.pending.Has(id) {
		return
	}
	q.granted = append(q.granted, id)
	q.pending.Put(id)
}

// Suppress records that id's turn came up but was withheld.
func (q *TurnQueue) Suppress(id ecs.EntityID) {
	q.suppressed = append(q.suppressed, id)
}

// Has reports whether id still holds an unclaimed turn.
func (q *TurnQueue) Has(id ecs.EntityID) bool {
	return q.pending.Has(id)
}

// Claim consumes id's turn, reporting whether it held one.
func (q *TurnQueue) Claim(id ecs.EntityID) bool {
	if !q.pending.Has(id) {
		return false
	}
	q.pending.Remove(id)
	return true
}

// Pending returns the actors still holding a turn, in grant order.
func (q *TurnQueue) Pending() []ecs.EntityID {
	out := make([]ecs.EntityID, 0, q.pending.Size())
	for _, id := range q.granted {
		if q.pending.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Granted returns every actor given a turn this tick, claimed or not.
func (q *TurnQueue) Granted() []ecs.EntityID {
	return slices.Clone(q.granted)
}

// Suppressed returns the actors whose turn was withheld this tick.
func (q *TurnQueue) Suppressed() []ecs.EntityID {
	return slices.Clone(q.suppressed)
}
