package allocation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/allocation"
)

// scriptedRoller returns queued values; Roll falls back to 1 when empty.
type scriptedRoller struct {
	rolls  []int
	rollNs [][]int
	err    error
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(r.rolls) == 0 {
		return 1, nil
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return v, nil
}

func (r *scriptedRoller) RollN(_, _ int) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	v := r.rollNs[0]
	r.rollNs = r.rollNs[1:]
	return v, nil
}

type AllocatorTestSuite struct {
	suite.Suite
	roller    *scriptedRoller
	allocator *allocation.Allocator
}

func (s *AllocatorTestSuite) SetupTest() {
	s.roller = &scriptedRoller{}
	var err error
	s.allocator, err = allocation.New(&allocation.Config{Roller: s.roller})
	s.Require().NoError(err)
}

func (s *AllocatorTestSuite) newState(method allocation.Method, scores dnd5e.AbilityScores) *allocation.State {
	state, err := allocation.NewState(method, scores)
	s.Require().NoError(err)
	return state
}

func (s *AllocatorTestSuite) TestNewRequiresRoller() {
	_, err := allocation.New(&allocation.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = allocation.New(&allocation.Config{Roller: s.roller, Policy: "5d4"})
	s.Require().Error(err)
}

func (s *AllocatorTestSuite) TestDefaultPolicyIsUniform() {
	s.Equal(allocation.RollPolicyUniform, s.allocator.Policy())
}

func (s *AllocatorTestSuite) TestPointBuyCosts() {
	s.Equal(0, allocation.PointBuyCost(8))
	s.Equal(5, allocation.PointBuyCost(13))
	s.Equal(7, allocation.PointBuyCost(14))
	s.Equal(9, allocation.PointBuyCost(15))
	s.Equal(9, allocation.PointBuyCost(18))
	s.Equal(0, allocation.PointBuyCost(3))
}

func (s *AllocatorTestSuite) TestPointBuyAfterRolledScores() {
	scores := dnd5e.UniformScores(18)
	state := s.newState(allocation.MethodRoll, scores)

	s.Require().NoError(allocation.SwitchMethod(state, allocation.MethodPointBuy, scores))
	s.Equal(54, state.PointsSpent)
	s.Equal(0, allocation.RemainingPoints(state))

	// lowering toward a legal spread is allowed while overspent
	res := s.allocator.SetScore(state, scores, dnd5e.AbilityStrength, 8)
	s.Require().True(res.Applied)
	s.Equal(45, state.PointsSpent)

	res = s.allocator.SetScore(state, res.Scores, dnd5e.AbilityDexterity, 15)
	s.True(res.Applied)
	s.Equal(45, state.PointsSpent)

	// raising while overspent is refused
	res = s.allocator.SetScore(state, res.Scores, dnd5e.AbilityStrength, 9)
	s.False(res.Applied)
	s.Equal(8, res.Scores.Strength)
	s.Equal(45, state.PointsSpent)
}

func (s *AllocatorTestSuite) TestPointBuySetScore() {
	scores := allocation.StartingScores(allocation.MethodPointBuy)
	state := s.newState(allocation.MethodPointBuy, scores)
	s.Equal(27, allocation.RemainingPoints(state))

	res := s.allocator.SetScore(state, scores, dnd5e.AbilityStrength, 15)
	s.True(res.Applied)
	s.Equal(15, res.Scores.Strength)
	s.Equal(18, allocation.RemainingPoints(state))

	res = s.allocator.SetScore(state, res.Scores, dnd5e.AbilityDexterity, 15)
	s.True(res.Applied)
	s.Equal(9, allocation.RemainingPoints(state))

	// 15 would cost 9, leaving exactly 0
	res = s.allocator.SetScore(state, res.Scores, dnd5e.AbilityConstitution, 15)
	s.True(res.Applied)
	s.Equal(0, allocation.RemainingPoints(state))

	res = s.allocator.SetScore(state, res.Scores, dnd5e.AbilityWisdom, 9)
	s.False(res.Applied)
	s.Equal(8, res.Scores.Wisdom)
	s.Equal(0, allocation.RemainingPoints(state))

	// lowering refunds the old cost
	res = s.allocator.SetScore(state, res.Scores, dnd5e.AbilityStrength, 13)
	s.True(res.Applied)
	s.Equal(4, allocation.RemainingPoints(state))
}

func (s *AllocatorTestSuite) TestPointBuyRejectsOutOfRange() {
	scores := allocation.StartingScores(allocation.MethodPointBuy)
	state := s.newState(allocation.MethodPointBuy, scores)

	for _, v := range []int{7, 16, 20, 3} {
		res := s.allocator.SetScore(state, scores, dnd5e.AbilityCharisma, v)
		s.False(res.Applied, v)
		s.Equal(scores, res.Scores)
	}
	s.Equal(0, state.PointsSpent)
}

func (s *AllocatorTestSuite) TestStandardArrayAssignUniqueness() {
	scores := dnd5e.UniformScores(dnd5e.DefaultScore)
	state := s.newState(allocation.MethodStandardArray, scores)

	// 10 is in the array, so the first ability claims it on switch
	s.Equal(10, state.Assigned[dnd5e.AbilityStrength])

	res := s.allocator.Assign(state, scores, dnd5e.AbilityDexterity, 15)
	s.True(res.Applied)

	res = s.allocator.Assign(state, res.Scores, dnd5e.AbilityWisdom, 15)
	s.False(res.Applied)
	s.Equal(10, res.Scores.Wisdom)

	// reassigning the holder releases its previous value
	res = s.allocator.Assign(state, res.Scores, dnd5e.AbilityDexterity, 14)
	s.True(res.Applied)
	res = s.allocator.Assign(state, res.Scores, dnd5e.AbilityWisdom, 15)
	s.True(res.Applied)

	res = s.allocator.Assign(state, res.Scores, dnd5e.AbilityCharisma, 11)
	s.False(res.Applied)
}

func (s *AllocatorTestSuite) TestSetScoreDelegatesToAssignForStandardArray() {
	scores := dnd5e.UniformScores(9)
	state := s.newState(allocation.MethodStandardArray, scores)

	res := s.allocator.SetScore(state, scores, dnd5e.AbilityIntelligence, 13)
	s.True(res.Applied)
	s.Equal(13, res.Scores.Intelligence)
}

func (s *AllocatorTestSuite) TestAutoAssignUsesEveryValueOnce() {
	// Roll(i+1) returning 1 swaps each slot with the first
	scores := dnd5e.UniformScores(dnd5e.DefaultScore)
	state := s.newState(allocation.MethodStandardArray, scores)

	res, err := s.allocator.AutoAssign(state, scores)
	s.Require().NoError(err)
	s.True(res.Applied)

	got := map[int]bool{}
	for _, ability := range dnd5e.Abilities {
		got[res.Scores.Get(ability)] = true
	}
	s.Len(got, 6)
	s.Empty(allocation.Violations(state, res.Scores))
}

func (s *AllocatorTestSuite) TestAutoAssignIgnoredOutsideStandardArray() {
	scores := dnd5e.UniformScores(dnd5e.DefaultScore)
	state := s.newState(allocation.MethodRoll, scores)

	res, err := s.allocator.AutoAssign(state, scores)
	s.Require().NoError(err)
	s.False(res.Applied)
}

func (s *AllocatorTestSuite) TestRollUniformRange() {
	scores := dnd5e.UniformScores(dnd5e.DefaultScore)
	state := s.newState(allocation.MethodRoll, scores)
	s.roller.rolls = []int{1, 13, 5, 2, 7, 9}

	res, err := s.allocator.RollAll(state, scores)
	s.Require().NoError(err)
	s.True(res.Applied)
	s.Equal(dnd5e.AbilityScores{
		Strength:     8,
		Dexterity:    20,
		Constitution: 12,
		Intelligence: 9,
		Wisdom:       14,
		Charisma:     16,
	}, res.Scores)
}

func (s *AllocatorTestSuite) TestRollPolicies() {
	roller := &scriptedRoller{rollNs: [][]int{{1, 6, 3, 5}, {2, 2, 2}}}

	dropLowest, err := allocation.New(&allocation.Config{Roller: roller, Policy: allocation.RollPolicy4d6DropLowest})
	s.Require().NoError(err)
	v, err := dropLowest.Draw()
	s.Require().NoError(err)
	s.Equal(14, v)

	classic, err := allocation.New(&allocation.Config{Roller: roller, Policy: allocation.RollPolicy3d6})
	s.Require().NoError(err)
	v, err = classic.Draw()
	s.Require().NoError(err)
	s.Equal(6, v)
}

func (s *AllocatorTestSuite) TestRollAbilityOnlyUnderRoll() {
	scores := dnd5e.UniformScores(dnd5e.DefaultScore)
	state := s.newState(allocation.MethodPointBuy, scores)

	res, err := s.allocator.RollAbility(state, scores, dnd5e.AbilityWisdom)
	s.Require().NoError(err)
	s.False(res.Applied)

	s.Require().NoError(allocation.SwitchMethod(state, allocation.MethodRoll, scores))
	s.roller.rolls = []int{11}
	res, err = s.allocator.RollAbility(state, scores, dnd5e.AbilityWisdom)
	s.Require().NoError(err)
	s.True(res.Applied)
	s.Equal(18, res.Scores.Wisdom)
}

func (s *AllocatorTestSuite) TestRollerErrorIsWrapped() {
	s.roller.err = errors.Unavailable("no entropy")
	scores := dnd5e.UniformScores(dnd5e.DefaultScore)
	state := s.newState(allocation.MethodRoll, scores)

	res, err := s.allocator.RollAll(state, scores)
	s.Require().Error(err)
	s.False(res.Applied)
	s.Equal(scores, res.Scores)
}

func (s *AllocatorTestSuite) TestSwitchMethodKeepsValues() {
	scores := allocation.StartingScores(allocation.MethodPointBuy)
	state := s.newState(allocation.MethodPointBuy, scores)
	res := s.allocator.SetScore(state, scores, dnd5e.AbilityStrength, 14)
	s.Require().True(res.Applied)
	scores = res.Scores

	s.Require().NoError(allocation.SwitchMethod(state, allocation.MethodStandardArray, scores))
	s.Equal(0, state.PointsSpent)
	s.Equal(14, scores.Strength)

	// five abilities sit at 8; only one can hold it
	violations := allocation.Violations(state, scores)
	s.Len(violations, 4)
	for _, v := range violations {
		s.Contains(v.Message, "reuses 8")
	}
}

func (s *AllocatorTestSuite) TestSwitchMethodRecomputesPointBudget() {
	scores := dnd5e.UniformScores(dnd5e.DefaultScore)
	state := s.newState(allocation.MethodRoll, scores)

	s.Require().NoError(allocation.SwitchMethod(state, allocation.MethodPointBuy, scores))
	s.Equal(12, state.PointsSpent)
	s.Equal(15, allocation.RemainingPoints(state))
}

func (s *AllocatorTestSuite) TestSwitchMethodRejectsUnknown() {
	state := s.newState(allocation.MethodRoll, dnd5e.AbilityScores{})
	err := allocation.SwitchMethod(state, "draft", dnd5e.AbilityScores{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(allocation.MethodRoll, state.Method)
}

func (s *AllocatorTestSuite) TestViolationsPointBuy() {
	scores := dnd5e.UniformScores(15)
	state := &allocation.State{Method: allocation.MethodPointBuy}

	violations := allocation.Violations(state, scores)
	s.Require().Len(violations, 1)
	s.Contains(violations[0].Message, "exceeds budget")

	scores.Charisma = 18
	violations = allocation.Violations(state, scores)
	s.Len(violations, 2)
}

func (s *AllocatorTestSuite) TestStateClone() {
	state := s.newState(allocation.MethodStandardArray, dnd5e.UniformScores(15))
	clone := state.Clone()
	clone.Assigned[dnd5e.AbilityWisdom] = 8
	s.NotContains(state.Assigned, dnd5e.AbilityWisdom)
}

func TestAllocatorTestSuite(t *testing.T) {
	suite.Run(t, new(AllocatorTestSuite))
}
