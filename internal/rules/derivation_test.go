package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/rules"
)

func TestModifier(t *testing.T) {
	testCases := []struct {
		score int
		want  int
	}{
		{score: 1, want: -5},
		{score: 3, want: -4},
		{score: 7, want: -2},
		{score: 8, want: -1},
		{score: 9, want: -1},
		{score: 10, want: 0},
		{score: 11, want: 0},
		{score: 14, want: 2},
		{score: 15, want: 2},
		{score: 20, want: 5},
		{score: 30, want: 10},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, rules.Modifier(tc.score), "modifier(%d)", tc.score)
	}
}

func TestHitDie(t *testing.T) {
	want := map[dnd5e.Class]int{
		dnd5e.ClassBarbarian: 12,
		dnd5e.ClassFighter:   10,
		dnd5e.ClassPaladin:   10,
		dnd5e.ClassRanger:    10,
		dnd5e.ClassMonk:      8,
		dnd5e.ClassRogue:     8,
		dnd5e.ClassBard:      8,
		dnd5e.ClassCleric:    8,
		dnd5e.ClassDruid:     8,
		dnd5e.ClassWarlock:   8,
		dnd5e.ClassWizard:    6,
		dnd5e.ClassSorcerer:  6,
	}
	for _, class := range dnd5e.Classes {
		assert.Equal(t, want[class], rules.HitDie(class), class)
	}
	assert.Equal(t, 8, rules.HitDie("Artificer"))
}

func TestSpeed(t *testing.T) {
	for _, race := range dnd5e.Races {
		switch race {
		case dnd5e.RaceDwarf, dnd5e.RaceHalfling, dnd5e.RaceGnome:
			assert.Equal(t, 25, rules.Speed(race), race)
		default:
			assert.Equal(t, 30, rules.Speed(race), race)
		}
	}
	assert.Equal(t, 30, rules.Speed("Goliath"))
}

func TestDerive(t *testing.T) {
	t.Run("fighter with constitution 14", func(t *testing.T) {
		scores := dnd5e.AbilityScores{
			Strength: 15, Dexterity: 13, Constitution: 14,
			Intelligence: 8, Wisdom: 12, Charisma: 10,
		}
		stats := rules.Derive(scores, dnd5e.RaceHuman, dnd5e.ClassFighter)

		assert.Equal(t, dnd5e.HitPoints{Current: 12, Maximum: 12, Pair: true}, stats.HitPoints)
		assert.Equal(t, 11, stats.ArmorClass)
		assert.Equal(t, 1, stats.Initiative)
		assert.Equal(t, 30, stats.Speed)
	})

	t.Run("default template", func(t *testing.T) {
		stats := rules.Derive(dnd5e.UniformScores(10), dnd5e.RaceHuman, dnd5e.ClassFighter)
		assert.Equal(t, 10, stats.HitPoints.Maximum)
		assert.Equal(t, 10, stats.ArmorClass)
		assert.Equal(t, 0, stats.Initiative)
	})

	t.Run("frail gnome wizard", func(t *testing.T) {
		scores := dnd5e.UniformScores(8)
		stats := rules.Derive(scores, dnd5e.RaceGnome, dnd5e.ClassWizard)
		assert.Equal(t, 5, stats.HitPoints.Maximum)
		assert.Equal(t, 9, stats.ArmorClass)
		assert.Equal(t, -1, stats.Initiative)
		assert.Equal(t, 25, stats.Speed)
	})
}
