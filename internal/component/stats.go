package component

import "shadoblade/internal/ecs"

const (
	CPools      ecs.ComponentType = 21
	CAttributes ecs.ComponentType = 22
	CSkills     ecs.ComponentType = 23
)

type Pool struct {
	Max, Current int
}

// Pools holds an actor's resources and progression.
type Pools struct {
	HitPoints              Pool
	Mana                   Pool
	XP                     int
	Level                  int
	TotalWeight            float64
	TotalInitiativePenalty float64
	Gold                   float64
	GodMode                bool
}

func (Pools) Type() ecs.ComponentType { return CPools }

type Attribute struct {
	Base      int
	Modifiers int
	Bonus     int
}

// NewAttribute returns an attribute with its bonus derived from base.
func NewAttribute(base int) Attribute {
	return Attribute{Base: base, Bonus: AttrBonus(base)}
}

// Value is the attribute including modifiers.
func (a Attribute) Value() int { return a.Base + a.Modifiers }

type Attributes struct {
	Might        Attribute
	Fitness      Attribute
	Quickness    Attribute
	Intelligence Attribute
}

func (Attributes) Type() ecs.ComponentType { return CAttributes }

type Skills struct {
	Melee   int
	Defense int
	Magic   int
}

func (Skills) Type() ecs.ComponentType { return CSkills }

// AttrBonus converts an attribute score into its roll modifier.
func AttrBonus(value int) int {
	return (value - 10) / 2
}

// PlayerHPAtLevel is the player's maximum hit points at a level.
func PlayerHPAtLevel(fitness, level int) int {
	return 10 + (AttrBonus(fitness)+4)*level
}

// ManaAtLevel is the maximum mana at a level.
func ManaAtLevel(intelligence, level int) int {
	return max(0, (AttrBonus(intelligence)+4)*level)
}

// CarryCapacity is the weight in pounds an actor can carry unencumbered.
func CarryCapacity(might Attribute) float64 {
	return float64(might.Value() * 15)
}

// XPToLevel is the experience at which an actor of the given level advances.
func XPToLevel(level int) int {
	return level * 1000
}
