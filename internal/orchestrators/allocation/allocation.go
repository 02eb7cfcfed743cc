// Package allocation implements the three ability score generation methods
// and their legality rules.
package allocation

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
)

// Method is an ability score generation method.
type Method = dnd5e.AllocationMethod

// Generation methods
const (
	MethodPointBuy      = dnd5e.AllocationMethodPointBuy
	MethodStandardArray = dnd5e.AllocationMethodStandardArray
	MethodRoll          = dnd5e.AllocationMethodRoll
)

// RollPolicy selects the distribution used for rolled scores.
type RollPolicy string

// Roll policies
const (
	// RollPolicyUniform draws uniformly from [8, 20].
	RollPolicyUniform       RollPolicy = "uniform"
	RollPolicy4d6DropLowest RollPolicy = "4d6_drop_lowest"
	RollPolicy3d6           RollPolicy = "3d6"
)

const (
	uniformRollFloor   = 8
	uniformRollCeiling = 20
)

// Valid reports whether p is a known policy.
func (p RollPolicy) Valid() bool {
	switch p {
	case RollPolicyUniform, RollPolicy4d6DropLowest, RollPolicy3d6:
		return true
	}
	return false
}

// Point-buy limits
const (
	PointBuyBudget = 27
	PointBuyMin    = 8
	PointBuyMax    = 15
)

var pointBuyCosts = map[int]int{
	8:  0,
	9:  1,
	10: 2,
	11: 3,
	12: 4,
	13: 5,
	14: 7,
	15: 9,
}

// PointBuyCost returns the cost of a score. Scores below the table cost 0;
// scores above it cost the same as PointBuyMax.
func PointBuyCost(score int) int {
	if score > PointBuyMax {
		return pointBuyCosts[PointBuyMax]
	}
	return pointBuyCosts[score]
}

// StandardArray returns the fixed standard array, highest first.
func StandardArray() []int {
	return []int{15, 14, 13, 12, 10, 8}
}

func inStandardArray(v int) bool {
	for _, s := range StandardArray() {
		if s == v {
			return true
		}
	}
	return false
}

// StartingScores returns the scores a method starts from when the caller
// asks for a fresh allocation.
func StartingScores(method Method) dnd5e.AbilityScores {
	if method == MethodPointBuy {
		return dnd5e.UniformScores(PointBuyMin)
	}
	return dnd5e.UniformScores(dnd5e.DefaultScore)
}

// Result is the outcome of an allocation operation. Rejected operations
// return Applied=false with the scores unchanged.
type Result struct {
	Applied bool
	Scores  dnd5e.AbilityScores
}

// Config holds the dependencies for the allocator
type Config struct {
	Roller dice.Roller
	Policy RollPolicy
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Policy != "" && !c.Policy.Valid() {
		vb.InvalidField("Policy", "unknown roll policy: "+string(c.Policy))
	}

	return vb.Build()
}

// Allocator applies allocation operations to a State and a set of scores.
// It holds no per-session data and is safe for concurrent use as long as
// callers do not share a State.
type Allocator struct {
	roller dice.Roller
	policy RollPolicy
}

// New creates an allocator. An empty policy means RollPolicyUniform.
func New(cfg *Config) (*Allocator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	policy := cfg.Policy
	if policy == "" {
		policy = RollPolicyUniform
	}

	return &Allocator{
		roller: cfg.Roller,
		policy: policy,
	}, nil
}

// Policy returns the configured roll policy.
func (a *Allocator) Policy() RollPolicy {
	return a.policy
}

// ValidatePointBuy records a field error when scores are not a legal
// point-buy spread: every score in [PointBuyMin, PointBuyMax] and a total
// cost within PointBuyBudget.
func ValidatePointBuy(field string, scores dnd5e.AbilityScores, vb *errors.ValidationBuilder) {
	total := 0
	for _, ability := range dnd5e.Abilities {
		v := scores.Get(ability)
		errors.ValidateRange(field+"."+string(ability), v, PointBuyMin, PointBuyMax, vb)
		total += PointBuyCost(v)
	}
	if total > PointBuyBudget {
		vb.Fieldf(field, "point cost %d exceeds budget of %d", total, PointBuyBudget)
	}
}
