// Package rng provides the single seedable random source that every
// stochastic decision in level generation and combat draws from.
package rng

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// RNG wraps a seeded math/rand source with dice helpers.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// New returns a generator seeded with seed. Identical seeds produce
// identical sequences.
func New(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the generator was created with.
func (g *RNG) Seed() int64 { return g.seed }

// RollDice rolls n dice with the given number of faces and returns the sum.
// A die with fewer than one face always rolls 0.
func (g *RNG) RollDice(n, faces int) int {
	if faces < 1 {
		return 0
	}
	total := 0
	for range n {
		total += g.r.Intn(faces) + 1
	}
	return total
}

// Range returns a value in [lo, hi). When hi <= lo it returns lo.
func (g *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo)
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (g *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.Intn(n)
}

// Float64 returns a value in [0.0, 1.0).
func (g *RNG) Float64() float64 { return g.r.Float64() }

// Dice is a parsed "NdF+B" expression.
type Dice struct {
	N, Faces, Bonus int
}

// ParseDice parses expressions such as "1d8", "2d4+1" or "1d6-2".
func ParseDice(s string) (Dice, error) {
	s = strings.TrimSpace(s)
	n, rest, ok := strings.Cut(s, "d")
	if !ok {
		return Dice{}, fmt.Errorf("parse dice %q: missing 'd'", s)
	}
	var d Dice
	var err error
	if d.N, err = strconv.Atoi(n); err != nil {
		return Dice{}, fmt.Errorf("parse dice %q: %w", s, err)
	}
	faces, bonus := rest, ""
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		faces, bonus = rest[:i], rest[i:]
	}
	if d.Faces, err = strconv.Atoi(faces); err != nil {
		return Dice{}, fmt.Errorf("parse dice %q: %w", s, err)
	}
	if bonus != "" {
		if d.Bonus, err = strconv.Atoi(bonus); err != nil {
			return Dice{}, fmt.Errorf("parse dice %q: %w", s, err)
		}
	}
	return d, nil
}

// Roll rolls the dice expression with g.
func (d Dice) Roll(g *RNG) int {
	return g.RollDice(d.N, d.Faces) + d.Bonus
}

func (d Dice) String() string {
	switch {
	case d.Bonus > 0:
		return fmt.Sprintf("%dd%d+%d", d.N, d.Faces, d.Bonus)
	case d.Bonus < 0:
		return fmt.Sprintf("%dd%d%d", d.N, d.Faces, d.Bonus)
	}
	return fmt.Sprintf("%dd%d", d.N, d.Faces)
}
