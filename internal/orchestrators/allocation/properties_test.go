package allocation_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/allocation"
)

// rapidRoller draws die faces from the property's generator.
type rapidRoller struct {
	t *rapid.T
}

func (r rapidRoller) Roll(size int) (int, error) {
	return rapid.IntRange(1, size).Draw(r.t, "face"), nil
}

func (r rapidRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = rapid.IntRange(1, size).Draw(r.t, "face")
	}
	return out, nil
}

func newRapidAllocator(t *rapid.T, policy allocation.RollPolicy) *allocation.Allocator {
	a, err := allocation.New(&allocation.Config{Roller: rapidRoller{t: t}, Policy: policy})
	if err != nil {
		t.Fatalf("new allocator: %v", err)
	}
	return a
}

func totalCost(scores dnd5e.AbilityScores) int {
	total := 0
	for _, ability := range dnd5e.Abilities {
		total += allocation.PointBuyCost(scores.Get(ability))
	}
	return total
}

func TestPointBuyNeverExceedsBudget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newRapidAllocator(t, allocation.RollPolicyUniform)
		scores := allocation.StartingScores(allocation.MethodPointBuy)
		state, err := allocation.NewState(allocation.MethodPointBuy, scores)
		if err != nil {
			t.Fatal(err)
		}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			ability := rapid.SampledFrom(dnd5e.Abilities).Draw(t, "ability")
			value := rapid.IntRange(5, 18).Draw(t, "value")

			before := scores
			res := a.SetScore(state, scores, ability, value)
			if !res.Applied && res.Scores != before {
				t.Fatalf("rejected set changed scores: %+v -> %+v", before, res.Scores)
			}
			scores = res.Scores

			if state.PointsSpent > allocation.PointBuyBudget {
				t.Fatalf("spent %d exceeds budget", state.PointsSpent)
			}
			if got := totalCost(scores); got != state.PointsSpent {
				t.Fatalf("counter %d drifted from cost %d", state.PointsSpent, got)
			}
		}
	})
}

func TestStandardArrayValuesStayUnique(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newRapidAllocator(t, allocation.RollPolicyUniform)
		scores := dnd5e.UniformScores(dnd5e.DefaultScore)
		state, err := allocation.NewState(allocation.MethodStandardArray, scores)
		if err != nil {
			t.Fatal(err)
		}

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.IntRange(0, 9).Draw(t, "op") == 0 {
				res, err := a.AutoAssign(state, scores)
				if err != nil {
					t.Fatal(err)
				}
				scores = res.Scores
			} else {
				ability := rapid.SampledFrom(dnd5e.Abilities).Draw(t, "ability")
				value := rapid.SampledFrom(allocation.StandardArray()).Draw(t, "value")
				scores = a.Assign(state, scores, ability, value).Scores
			}

			held := map[int]dnd5e.Ability{}
			for ability, v := range state.Assigned {
				if other, ok := held[v]; ok {
					t.Fatalf("%d held by %s and %s", v, ability, other)
				}
				held[v] = ability
				if scores.Get(ability) != v {
					t.Fatalf("%s assigned %d but scores hold %d", ability, v, scores.Get(ability))
				}
			}
		}
	})
}

func TestDrawStaysInPolicyRange(t *testing.T) {
	ranges := map[allocation.RollPolicy][2]int{
		allocation.RollPolicyUniform:       {8, 20},
		allocation.RollPolicy4d6DropLowest: {3, 18},
		allocation.RollPolicy3d6:           {3, 18},
	}

	rapid.Check(t, func(t *rapid.T) {
		policy := rapid.SampledFrom([]allocation.RollPolicy{
			allocation.RollPolicyUniform,
			allocation.RollPolicy4d6DropLowest,
			allocation.RollPolicy3d6,
		}).Draw(t, "policy")

		v, err := newRapidAllocator(t, policy).Draw()
		if err != nil {
			t.Fatal(err)
		}
		bounds := ranges[policy]
		if v < bounds[0] || v > bounds[1] {
			t.Fatalf("%s drew %d outside %v", policy, v, bounds)
		}
	})
}
