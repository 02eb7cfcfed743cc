package allocation

import (
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
)

// State is the allocation bookkeeping stored with a wizard session.
type State = dnd5e.AllocationState

// NewState returns bookkeeping for method derived from the current scores.
func NewState(method Method, scores dnd5e.AbilityScores) (*State, error) {
	s := &State{}
	if err := SwitchMethod(s, method, scores); err != nil {
		return nil, err
	}
	return s, nil
}

// RemainingPoints is the unspent point-buy budget, never below zero.
func RemainingPoints(s *State) int {
	if s.PointsSpent >= PointBuyBudget {
		return 0
	}
	return PointBuyBudget - s.PointsSpent
}

// SwitchMethod makes method active and rebuilds the bookkeeping from the
// scores as they are. Score values are never changed.
func SwitchMethod(s *State, method Method, scores dnd5e.AbilityScores) error {
	if !method.Valid() {
		return errors.InvalidArgumentf("unknown allocation method: %s", method)
	}

	s.Method = method
	s.PointsSpent = 0
	s.Assigned = nil

	switch method {
	case MethodPointBuy:
		for _, ability := range dnd5e.Abilities {
			s.PointsSpent += PointBuyCost(scores.Get(ability))
		}
	case MethodStandardArray:
		s.Assigned = make(map[dnd5e.Ability]int)
		for _, ability := range dnd5e.Abilities {
			v := scores.Get(ability)
			if inStandardArray(v) && holder(s, v) == "" {
				s.Assigned[ability] = v
			}
		}
	}

	return nil
}

// holder returns the ability holding standard array value v, if any.
func holder(s *State, v int) dnd5e.Ability {
	for ability, assigned := range s.Assigned {
		if assigned == v {
			return ability
		}
	}
	return ""
}
