package allocation

import (
	"fmt"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
)

// SetScore sets a single ability under the active method. Point-buy
// enforces the [8, 15] range and refuses any move that adds cost past the
// budget, standard array delegates to
// Assign, and roll accepts any value in the general score range. Illegal
// values are rejected silently.
func (a *Allocator) SetScore(state *State, scores dnd5e.AbilityScores, ability dnd5e.Ability, value int) Result {
	rejected := Result{Scores: scores}
	if state == nil || !ability.Valid() {
		return rejected
	}

	switch state.Method {
	case MethodPointBuy:
		if value < PointBuyMin || value > PointBuyMax {
			return rejected
		}
		spent := state.PointsSpent - PointBuyCost(scores.Get(ability)) + PointBuyCost(value)
		// Scores carried over from another method can leave the budget
		// overspent; moves that do not add cost stay allowed.
		if spent > PointBuyBudget && spent > state.PointsSpent {
			return rejected
		}
		state.PointsSpent = spent
	case MethodStandardArray:
		return a.Assign(state, scores, ability, value)
	case MethodRoll:
		if value < dnd5e.MinAbilityScore || value > dnd5e.MaxAbilityScore {
			return rejected
		}
	default:
		return rejected
	}

	scores.Set(ability, value)
	return Result{Applied: true, Scores: scores}
}

// Assign gives ability a standard array value. The value must be in the
// array and not held by a different ability; the ability's previous value
// is released back to the pool.
func (a *Allocator) Assign(state *State, scores dnd5e.AbilityScores, ability dnd5e.Ability, value int) Result {
	rejected := Result{Scores: scores}
	if state == nil || state.Method != MethodStandardArray || !ability.Valid() || !inStandardArray(value) {
		return rejected
	}
	if owner := holder(state, value); owner != "" && owner != ability {
		return rejected
	}

	if state.Assigned == nil {
		state.Assigned = make(map[dnd5e.Ability]int)
	}
	state.Assigned[ability] = value
	scores.Set(ability, value)

	return Result{Applied: true, Scores: scores}
}

// AutoAssign shuffles the standard array and assigns it positionally in
// ability order.
func (a *Allocator) AutoAssign(state *State, scores dnd5e.AbilityScores) (Result, error) {
	if state == nil || state.Method != MethodStandardArray {
		return Result{Scores: scores}, nil
	}

	values := StandardArray()
	// Fisher-Yates on the roller so tests can fix the order.
	for i := len(values) - 1; i > 0; i-- {
		r, err := a.roller.Roll(i + 1)
		if err != nil {
			return Result{Scores: scores}, errors.Wrap(err, "failed to shuffle standard array")
		}
		j := r - 1
		values[i], values[j] = values[j], values[i]
	}

	state.Assigned = make(map[dnd5e.Ability]int, len(dnd5e.Abilities))
	for i, ability := range dnd5e.Abilities {
		state.Assigned[ability] = values[i]
		scores.Set(ability, values[i])
	}

	return Result{Applied: true, Scores: scores}, nil
}

// RollAbility draws a new value for one ability under the roll method.
func (a *Allocator) RollAbility(state *State, scores dnd5e.AbilityScores, ability dnd5e.Ability) (Result, error) {
	if state == nil || state.Method != MethodRoll || !ability.Valid() {
		return Result{Scores: scores}, nil
	}

	v, err := a.Draw()
	if err != nil {
		return Result{Scores: scores}, err
	}
	scores.Set(ability, v)

	return Result{Applied: true, Scores: scores}, nil
}

// RollAll draws every ability independently under the roll method.
func (a *Allocator) RollAll(state *State, scores dnd5e.AbilityScores) (Result, error) {
	if state == nil || state.Method != MethodRoll {
		return Result{Scores: scores}, nil
	}

	for _, ability := range dnd5e.Abilities {
		v, err := a.Draw()
		if err != nil {
			return Result{Scores: scores}, err
		}
		scores.Set(ability, v)
	}

	return Result{Applied: true, Scores: scores}, nil
}

// Draw produces one score under the configured roll policy.
func (a *Allocator) Draw() (int, error) {
	switch a.policy {
	case RollPolicy4d6DropLowest:
		rolls, err := a.roller.RollN(4, 6)
		if err != nil {
			return 0, errors.Wrap(err, "failed to roll 4d6")
		}
		total, lowest := 0, rolls[0]
		for _, r := range rolls {
			total += r
			if r < lowest {
				lowest = r
			}
		}
		return total - lowest, nil
	case RollPolicy3d6:
		rolls, err := a.roller.RollN(3, 6)
		if err != nil {
			return 0, errors.Wrap(err, "failed to roll 3d6")
		}
		total := 0
		for _, r := range rolls {
			total += r
		}
		return total, nil
	default:
		r, err := a.roller.Roll(uniformRollCeiling - uniformRollFloor + 1)
		if err != nil {
			return 0, errors.Wrap(err, "failed to roll ability score")
		}
		return r + uniformRollFloor - 1, nil
	}
}

// Violation describes a score that is illegal under the active method.
type Violation struct {
	Ability dnd5e.Ability `json:"ability,omitempty"`
	Message string        `json:"message"`
}

// Violations reports legality problems with the current scores. It never
// changes them; after a method switch the caller decides what to do.
func Violations(state *State, scores dnd5e.AbilityScores) []Violation {
	if state == nil {
		return nil
	}

	var out []Violation
	switch state.Method {
	case MethodPointBuy:
		total := 0
		for _, ability := range dnd5e.Abilities {
			v := scores.Get(ability)
			total += PointBuyCost(v)
			if v < PointBuyMin || v > PointBuyMax {
				out = append(out, Violation{
					Ability: ability,
					Message: fmt.Sprintf("%s %d is outside %d-%d", ability.Title(), v, PointBuyMin, PointBuyMax),
				})
			}
		}
		if total > PointBuyBudget {
			out = append(out, Violation{
				Message: fmt.Sprintf("point cost %d exceeds budget of %d", total, PointBuyBudget),
			})
		}
	case MethodStandardArray:
		seen := make(map[int]dnd5e.Ability)
		for _, ability := range dnd5e.Abilities {
			v := scores.Get(ability)
			if !inStandardArray(v) {
				out = append(out, Violation{
					Ability: ability,
					Message: fmt.Sprintf("%s %d is not in the standard array", ability.Title(), v),
				})
				continue
			}
			if prev, ok := seen[v]; ok {
				out = append(out, Violation{
					Ability: ability,
					Message: fmt.Sprintf("%s reuses %d already held by %s", ability.Title(), v, prev.Title()),
				})
				continue
			}
			seen[v] = ability
		}
	case MethodRoll:
		for _, ability := range dnd5e.Abilities {
			v := scores.Get(ability)
			if v < dnd5e.MinAbilityScore || v > dnd5e.MaxAbilityScore {
				out = append(out, Violation{
					Ability: ability,
					Message: fmt.Sprintf("%s %d is outside %d-%d", ability.Title(), v, dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore),
				})
			}
		}
	}

	return out
}
