package dnd5e

// Race is one of the nine playable races. Values are the display names used
// on the wire and by the text-generation backend.
type Race string

// Races
const (
	RaceHuman      Race = "Human"
	RaceElf        Race = "Elf"
	RaceDwarf      Race = "Dwarf"
	RaceHalfling   Race = "Halfling"
	RaceGnome      Race = "Gnome"
	RaceHalfElf    Race = "Half-Elf"
	RaceHalfOrc    Race = "Half-Orc"
	RaceTiefling   Race = "Tiefling"
	RaceDragonborn Race = "Dragonborn"
)

// Races lists every race in selector order.
var Races = []Race{
	RaceHuman, RaceElf, RaceDwarf, RaceHalfling, RaceGnome,
	RaceHalfElf, RaceHalfOrc, RaceTiefling, RaceDragonborn,
}

// Valid reports whether r is a known race
func (r Race) Valid() bool {
	switch r {
	case RaceHuman, RaceElf, RaceDwarf, RaceHalfling, RaceGnome,
		RaceHalfElf, RaceHalfOrc, RaceTiefling, RaceDragonborn:
		return true
	}
	return false
}

// Class is one of the twelve character classes.
type Class string

// Classes
const (
	ClassBarbarian Class = "Barbarian"
	ClassBard      Class = "Bard"
	ClassCleric    Class = "Cleric"
	ClassDruid     Class = "Druid"
	ClassFighter   Class = "Fighter"
	ClassMonk      Class = "Monk"
	ClassPaladin   Class = "Paladin"
	ClassRanger    Class = "Ranger"
	ClassRogue     Class = "Rogue"
	ClassSorcerer  Class = "Sorcerer"
	ClassWarlock   Class = "Warlock"
	ClassWizard    Class = "Wizard"
)

// Classes lists every class alphabetically.
var Classes = []Class{
	ClassBarbarian, ClassBard, ClassCleric, ClassDruid, ClassFighter, ClassMonk,
	ClassPaladin, ClassRanger, ClassRogue, ClassSorcerer, ClassWarlock, ClassWizard,
}

// Valid reports whether c is a known class
func (c Class) Valid() bool {
	switch c {
	case ClassBarbarian, ClassBard, ClassCleric, ClassDruid, ClassFighter, ClassMonk,
		ClassPaladin, ClassRanger, ClassRogue, ClassSorcerer, ClassWarlock, ClassWizard:
		return true
	}
	return false
}

// Background is one of the thirteen character backgrounds.
type Background string

// Backgrounds
const (
	BackgroundAcolyte      Background = "Acolyte"
	BackgroundCharlatan    Background = "Charlatan"
	BackgroundCriminal     Background = "Criminal"
	BackgroundEntertainer  Background = "Entertainer"
	BackgroundFolkHero     Background = "Folk Hero"
	BackgroundGuildArtisan Background = "Guild Artisan"
	BackgroundHermit       Background = "Hermit"
	BackgroundNoble        Background = "Noble"
	BackgroundOutlander    Background = "Outlander"
	BackgroundSage         Background = "Sage"
	BackgroundSailor       Background = "Sailor"
	BackgroundSoldier      Background = "Soldier"
	BackgroundUrchin       Background = "Urchin"
)

// Backgrounds lists every background alphabetically.
var Backgrounds = []Background{
	BackgroundAcolyte, BackgroundCharlatan, BackgroundCriminal, BackgroundEntertainer,
	BackgroundFolkHero, BackgroundGuildArtisan, BackgroundHermit, BackgroundNoble,
	BackgroundOutlander, BackgroundSage, BackgroundSailor, BackgroundSoldier, BackgroundUrchin,
}

// Valid reports whether b is a known background
func (b Background) Valid() bool {
	switch b {
	case BackgroundAcolyte, BackgroundCharlatan, BackgroundCriminal, BackgroundEntertainer,
		BackgroundFolkHero, BackgroundGuildArtisan, BackgroundHermit, BackgroundNoble,
		BackgroundOutlander, BackgroundSage, BackgroundSailor, BackgroundSoldier, BackgroundUrchin:
		return true
	}
	return false
}

// Alignment is a cell of the law/chaos, good/evil grid.
type Alignment string

// Alignments
const (
	AlignmentLawfulGood     Alignment = "Lawful Good"
	AlignmentNeutralGood    Alignment = "Neutral Good"
	AlignmentChaoticGood    Alignment = "Chaotic Good"
	AlignmentLawfulNeutral  Alignment = "Lawful Neutral"
	AlignmentTrueNeutral    Alignment = "True Neutral"
	AlignmentChaoticNeutral Alignment = "Chaotic Neutral"
	AlignmentLawfulEvil     Alignment = "Lawful Evil"
	AlignmentNeutralEvil    Alignment = "Neutral Evil"
	AlignmentChaoticEvil    Alignment = "Chaotic Evil"
)

// Alignments lists the grid row by row.
var Alignments = []Alignment{
	AlignmentLawfulGood, AlignmentNeutralGood, AlignmentChaoticGood,
	AlignmentLawfulNeutral, AlignmentTrueNeutral, AlignmentChaoticNeutral,
	AlignmentLawfulEvil, AlignmentNeutralEvil, AlignmentChaoticEvil,
}

// Valid reports whether a is a known alignment
func (a Alignment) Valid() bool {
	switch a {
	case AlignmentLawfulGood, AlignmentNeutralGood, AlignmentChaoticGood,
		AlignmentLawfulNeutral, AlignmentTrueNeutral, AlignmentChaoticNeutral,
		AlignmentLawfulEvil, AlignmentNeutralEvil, AlignmentChaoticEvil:
		return true
	}
	return false
}

// Ability names one of the six ability scores.
type Ability string

// Abilities
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists the six abilities in sheet order.
var Abilities = []Ability{
	AbilityStrength, AbilityDexterity, AbilityConstitution,
	AbilityIntelligence, AbilityWisdom, AbilityCharisma,
}

// Valid reports whether a is one of the six abilities
func (a Ability) Valid() bool {
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	}
	return false
}

// Title returns the capitalized ability name for display
func (a Ability) Title() string {
	switch a {
	case AbilityStrength:
		return "Strength"
	case AbilityDexterity:
		return "Dexterity"
	case AbilityConstitution:
		return "Constitution"
	case AbilityIntelligence:
		return "Intelligence"
	case AbilityWisdom:
		return "Wisdom"
	case AbilityCharisma:
		return "Charisma"
	}
	return string(a)
}

// Score bounds
const (
	MinAbilityScore = 3
	MaxAbilityScore = 20
	DefaultScore    = 10
)

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 20
)
