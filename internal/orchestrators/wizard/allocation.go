package wizard

import (
	"context"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/allocation"
)

// commitScores merges allocator output into the character; derived stats
// follow through the record.
func (o *orchestrator) commitScores(ctx context.Context, s *entities.WizardSession, result allocation.Result) error {
	scores := result.Scores
	return o.merge(ctx, s, &dnd5e.CharacterUpdate{AbilityScores: &scores})
}

// SetAllocationMethod switches the active method. Scores are kept unless
// ResetScores asks for the method's starting values.
func (o *orchestrator) SetAllocationMethod(ctx context.Context, input *SetAllocationMethodInput) (*SetAllocationMethodOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Method.Valid() {
		return nil, errors.InvalidArgumentf("unknown allocation method: %s", input.Method)
	}

	session, err := o.mutate(ctx, input.SessionID, func(s *entities.WizardSession, _ *sessionLock) (bool, error) {
		if input.ResetScores {
			start := allocation.StartingScores(input.Method)
			if err := o.merge(ctx, s, &dnd5e.CharacterUpdate{AbilityScores: &start}); err != nil {
				return false, err
			}
		}
		if err := allocation.SwitchMethod(s.Allocation, input.Method, s.Character.AbilityScores); err != nil {
			return false, err
		}
		s.LastError = ""
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &SetAllocationMethodOutput{
		Session:    session,
		Allocation: allocationView(session.Allocation, session.Character.AbilityScores),
	}, nil
}

// SetAbilityScore sets one ability under the active method. A value the
// method does not allow changes nothing and reports Applied=false.
func (o *orchestrator) SetAbilityScore(ctx context.Context, input *SetAbilityScoreInput) (*SetAbilityScoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Ability.Valid() {
		return nil, errors.InvalidArgumentf("unknown ability: %s", input.Ability)
	}

	var applied bool
	session, err := o.mutate(ctx, input.SessionID, func(s *entities.WizardSession, _ *sessionLock) (bool, error) {
		result := o.allocator.SetScore(s.Allocation, s.Character.AbilityScores, input.Ability, input.Value)
		if !result.Applied {
			return false, nil
		}
		applied = true
		if err := o.commitScores(ctx, s, result); err != nil {
			return false, err
		}
		s.LastError = ""
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &SetAbilityScoreOutput{
		Applied:    applied,
		Session:    session,
		Allocation: allocationView(session.Allocation, session.Character.AbilityScores),
	}, nil
}

// RollAbilityScores rolls under the roll method and shuffles the array
// under standard array. Point-buy has nothing to roll.
func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Ability != "" && !input.Ability.Valid() {
		return nil, errors.InvalidArgumentf("unknown ability: %s", input.Ability)
	}

	var applied bool
	session, err := o.mutate(ctx, input.SessionID, func(s *entities.WizardSession, _ *sessionLock) (bool, error) {
		var (
			result allocation.Result
			err    error
		)
		scores := s.Character.AbilityScores

		switch s.Allocation.Method {
		case allocation.MethodRoll:
			if input.Ability != "" {
				result, err = o.allocator.RollAbility(s.Allocation, scores, input.Ability)
			} else {
				result, err = o.allocator.RollAll(s.Allocation, scores)
			}
		case allocation.MethodStandardArray:
			result, err = o.allocator.AutoAssign(s.Allocation, scores)
		default:
			return false, nil
		}
		if err != nil {
			return false, errors.Wrap(err, "failed to roll ability scores")
		}
		if !result.Applied {
			return false, nil
		}

		applied = true
		if err := o.commitScores(ctx, s, result); err != nil {
			return false, err
		}
		s.LastError = ""
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &RollAbilityScoresOutput{
		Applied:    applied,
		Session:    session,
		Allocation: allocationView(session.Allocation, session.Character.AbilityScores),
	}, nil
}

// allocationSwitch rebuilds the bookkeeping for the active method after
// the scores changed outside the allocator.
func allocationSwitch(s *entities.WizardSession) error {
	return allocation.SwitchMethod(s.Allocation, s.Allocation.Method, s.Character.AbilityScores)
}
