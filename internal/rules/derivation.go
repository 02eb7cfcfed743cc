// Package rules holds the pure 5e derivations and the static reference
// tables they read. Nothing here performs I/O.
package rules

import (
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
)

const (
	baseArmorClass = 10
	defaultHitDie  = 8
	defaultSpeed   = 30
)

// Modifier returns floor((score-10)/2) for any integer score.
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		// Go division truncates toward zero
		return (diff - 1) / 2
	}
	return diff / 2
}

// HitDie returns the hit die size for a class. Unknown classes use d8.
func HitDie(class dnd5e.Class) int {
	switch class {
	case dnd5e.ClassBarbarian:
		return 12
	case dnd5e.ClassFighter, dnd5e.ClassPaladin, dnd5e.ClassRanger:
		return 10
	case dnd5e.ClassMonk, dnd5e.ClassRogue, dnd5e.ClassBard,
		dnd5e.ClassCleric, dnd5e.ClassDruid, dnd5e.ClassWarlock:
		return 8
	case dnd5e.ClassWizard, dnd5e.ClassSorcerer:
		return 6
	}
	return defaultHitDie
}

// BaseHitPoints is the level-1 hit point base for a class.
func BaseHitPoints(class dnd5e.Class) int {
	return HitDie(class)
}

// HitPoints is the level-1 maximum: the class hit die plus the
// constitution modifier. Higher levels are not modeled.
func HitPoints(class dnd5e.Class, constitution int) int {
	return BaseHitPoints(class) + Modifier(constitution)
}

// ArmorClass is the unarmored baseline.
func ArmorClass(dexterity int) int {
	return baseArmorClass + Modifier(dexterity)
}

// Initiative is the dexterity modifier.
func Initiative(dexterity int) int {
	return Modifier(dexterity)
}

// Speed returns a race's walking speed in feet. Unknown races walk 30.
func Speed(race dnd5e.Race) int {
	switch race {
	case dnd5e.RaceDwarf, dnd5e.RaceHalfling, dnd5e.RaceGnome:
		return 25
	case dnd5e.RaceHuman, dnd5e.RaceElf, dnd5e.RaceHalfElf,
		dnd5e.RaceHalfOrc, dnd5e.RaceTiefling, dnd5e.RaceDragonborn:
		return 30
	}
	return defaultSpeed
}

// CombatStats is the full set of derived values.
type CombatStats struct {
	HitPoints  dnd5e.HitPoints
	ArmorClass int
	Initiative int
	Speed      int
}

// Derive computes every combat stat. Hit points come back in pair form
// with current equal to maximum.
func Derive(scores dnd5e.AbilityScores, race dnd5e.Race, class dnd5e.Class) CombatStats {
	return CombatStats{
		HitPoints:  dnd5e.FullHitPoints(HitPoints(class, scores.Constitution)),
		ArmorClass: ArmorClass(scores.Dexterity),
		Initiative: Initiative(scores.Dexterity),
		Speed:      Speed(race),
	}
}
