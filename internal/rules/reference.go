package rules

import (
	"strings"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
)

// RaceTraits returns the racial traits shown when picking a race.
func RaceTraits(race dnd5e.Race) []string {
	switch race {
	case dnd5e.RaceHuman:
		return []string{"+1 to All Ability Scores", "Extra Language", "Adaptable"}
	case dnd5e.RaceElf:
		return []string{"+2 Dexterity", "Darkvision", "Keen Senses", "Fey Ancestry", "Trance"}
	case dnd5e.RaceDwarf:
		return []string{"+2 Constitution", "Darkvision", "Dwarven Resilience", "Stonecunning"}
	case dnd5e.RaceHalfling:
		return []string{"+2 Dexterity", "Lucky", "Brave", "Halfling Nimbleness"}
	case dnd5e.RaceGnome:
		return []string{"+2 Intelligence", "Darkvision", "Gnome Cunning"}
	case dnd5e.RaceHalfElf:
		return []string{"+2 Charisma, +1 to Two Others", "Darkvision", "Fey Ancestry", "Skill Versatility"}
	case dnd5e.RaceHalfOrc:
		return []string{"+2 Strength, +1 Constitution", "Darkvision", "Relentless Endurance", "Savage Attacks"}
	case dnd5e.RaceTiefling:
		return []string{"+2 Charisma, +1 Intelligence", "Darkvision", "Hellish Resistance", "Infernal Legacy"}
	case dnd5e.RaceDragonborn:
		return []string{"+2 Strength, +1 Charisma", "Draconic Ancestry", "Breath Weapon", "Damage Resistance"}
	}
	return nil
}

// RaceDescription is a one-line summary of a race.
func RaceDescription(race dnd5e.Race) string {
	switch race {
	case dnd5e.RaceHuman:
		return "Adaptable and ambitious, humans settle everywhere and vary widely in custom and creed."
	case dnd5e.RaceElf:
		return "Graceful and long-lived, elves love nature, magic and art."
	case dnd5e.RaceDwarf:
		return "Bold and hardy warriors, miners and smiths who can live past 400 years."
	case dnd5e.RaceHalfling:
		return "Small folk who survive among larger peoples by avoiding notice or offense."
	case dnd5e.RaceGnome:
		return "Tiny, energetic tinkerers whose enthusiasm for life is impossible to miss."
	case dnd5e.RaceHalfElf:
		return "Heirs to human ambition and elven grace, at home in both worlds and neither."
	case dnd5e.RaceHalfOrc:
		return "Fierce and enduring, half-orcs prove their worth as chiefs, wanderers or warriors."
	case dnd5e.RaceTiefling:
		return "Marked by an ancient infernal pact, tieflings meet suspicion wherever they go."
	case dnd5e.RaceDragonborn:
		return "Proud draconic humanoids who walk a world that fears them."
	}
	return ""
}

// PrimaryAbilities returns the abilities a class leans on, as shown to the
// player. Entries like "Strength or Dexterity" are intentional.
func PrimaryAbilities(class dnd5e.Class) []string {
	switch class {
	case dnd5e.ClassBarbarian:
		return []string{"Strength", "Constitution"}
	case dnd5e.ClassBard:
		return []string{"Charisma", "Dexterity"}
	case dnd5e.ClassCleric:
		return []string{"Wisdom", "Strength or Constitution"}
	case dnd5e.ClassDruid:
		return []string{"Wisdom", "Constitution"}
	case dnd5e.ClassFighter:
		return []string{"Strength or Dexterity", "Constitution"}
	case dnd5e.ClassMonk:
		return []string{"Dexterity", "Wisdom"}
	case dnd5e.ClassPaladin:
		return []string{"Strength", "Charisma"}
	case dnd5e.ClassRanger:
		return []string{"Dexterity", "Wisdom"}
	case dnd5e.ClassRogue:
		return []string{"Dexterity", "Intelligence or Charisma"}
	case dnd5e.ClassSorcerer, dnd5e.ClassWarlock:
		return []string{"Charisma", "Constitution"}
	case dnd5e.ClassWizard:
		return []string{"Intelligence", "Constitution"}
	}
	return nil
}

// RecommendedAbilities renders the primary abilities as "A and B" for the
// ability score step.
func RecommendedAbilities(class dnd5e.Class) string {
	return strings.Join(PrimaryAbilities(class), " and ")
}

// ClassProficiencies returns armor, weapon and tool proficiencies.
func ClassProficiencies(class dnd5e.Class) []string {
	switch class {
	case dnd5e.ClassBarbarian:
		return []string{"Light and medium armor", "Shields", "Simple and martial weapons"}
	case dnd5e.ClassBard:
		return []string{"Light armor", "Simple weapons, hand crossbows, longswords, rapiers, shortswords", "Musical instruments"}
	case dnd5e.ClassCleric:
		return []string{"Light and medium armor", "Shields", "Simple weapons"}
	case dnd5e.ClassDruid:
		return []string{"Light and medium armor (nonmetal)", "Shields (nonmetal)", "Clubs, daggers, darts, javelins, maces, quarterstaffs, scimitars, sickles, slings, spears"}
	case dnd5e.ClassFighter, dnd5e.ClassPaladin:
		return []string{"All armor", "Shields", "Simple and martial weapons"}
	case dnd5e.ClassMonk:
		return []string{"Simple weapons, shortswords", "No armor or shields"}
	case dnd5e.ClassRanger:
		return []string{"Light and medium armor", "Shields", "Simple and martial weapons"}
	case dnd5e.ClassRogue:
		return []string{"Light armor", "Simple weapons, hand crossbows, longswords, rapiers, shortswords", "Thieves' tools"}
	case dnd5e.ClassSorcerer, dnd5e.ClassWizard:
		return []string{"Daggers, darts, slings, quarterstaffs, light crossbows", "No armor or shields"}
	case dnd5e.ClassWarlock:
		return []string{"Light armor", "Simple weapons"}
	}
	return nil
}

// ClassDescription is a one-line summary of a class.
func ClassDescription(class dnd5e.Class) string {
	switch class {
	case dnd5e.ClassBarbarian:
		return "A fierce warrior who fights with primal rage."
	case dnd5e.ClassBard:
		return "A performer whose music and stories carry real magic."
	case dnd5e.ClassCleric:
		return "A priestly champion wielding divine magic."
	case dnd5e.ClassDruid:
		return "A priest of the Old Faith who commands nature and changes shape."
	case dnd5e.ClassFighter:
		return "A master of martial combat with any weapon or armor."
	case dnd5e.ClassMonk:
		return "A martial artist channeling the power of body and soul."
	case dnd5e.ClassPaladin:
		return "A holy warrior bound to a sacred oath."
	case dnd5e.ClassRanger:
		return "A hunter and tracker at the edges of civilization."
	case dnd5e.ClassRogue:
		return "A scoundrel relying on stealth, precision and trickery."
	case dnd5e.ClassSorcerer:
		return "A caster whose magic comes from an innate gift or bloodline."
	case dnd5e.ClassWarlock:
		return "A wielder of power granted by an otherworldly patron."
	case dnd5e.ClassWizard:
		return "A scholar who bends reality through study."
	}
	return ""
}

// BackgroundDescription is a one-line summary of a background.
func BackgroundDescription(background dnd5e.Background) string {
	switch background {
	case dnd5e.BackgroundAcolyte:
		return "You served a temple as an intermediary between the holy and the mortal."
	case dnd5e.BackgroundCharlatan:
		return "You read people easily and know exactly what they want to hear."
	case dnd5e.BackgroundCriminal:
		return "You have a history of breaking the law and still know the underworld."
	case dnd5e.BackgroundEntertainer:
		return "You thrive in front of an audience and know how to move it."
	case dnd5e.BackgroundFolkHero:
		return "Humble by birth, you are your village's champion against tyrants and monsters."
	case dnd5e.BackgroundGuildArtisan:
		return "You belong to an artisan's guild and the mercantile world it supports."
	case dnd5e.BackgroundHermit:
		return "You lived apart from society and found some answers in solitude."
	case dnd5e.BackgroundNoble:
		return "You carry a title and your family wields land, wealth and influence."
	case dnd5e.BackgroundOutlander:
		return "You grew up in the wilds, far from towns and their comforts."
	case dnd5e.BackgroundSage:
		return "You spent years studying the lore of the multiverse."
	case dnd5e.BackgroundSailor:
		return "You sailed for years through storms and worse."
	case dnd5e.BackgroundSoldier:
		return "War has been your life since you trained as a youth."
	case dnd5e.BackgroundUrchin:
		return "You grew up alone and poor on the streets and learned to fend for yourself."
	}
	return ""
}

// EquipmentSuggestions returns the suggested item names per equipment
// category, keyed by the category names used on equipment items.
func EquipmentSuggestions() map[string][]string {
	return map[string][]string{
		dnd5e.EquipmentCategoryWeapon: {
			"Dagger", "Shortsword", "Longsword", "Greatsword", "Rapier",
			"Battleaxe", "Greataxe", "Warhammer", "Maul", "Quarterstaff",
			"Shortbow", "Longbow", "Light Crossbow", "Heavy Crossbow", "Hand Crossbow",
		},
		dnd5e.EquipmentCategoryArmor: {
			"Leather Armor", "Studded Leather", "Hide Armor", "Chain Shirt",
			"Scale Mail", "Breastplate", "Half Plate", "Ring Mail",
			"Chain Mail", "Splint", "Plate",
		},
		dnd5e.EquipmentCategoryGear: {
			"Backpack", "Bedroll", "Mess Kit", "Tinderbox", "Torch",
			"Rations (1 day)", "Waterskin", "Rope (50 ft)", "Climber's Kit",
			"Healer's Kit", "Explorer's Pack", "Burglar's Pack", "Diplomat's Pack",
		},
		dnd5e.EquipmentCategoryMagical: {
			"Potion of Healing", "Scroll of Identify", "Bag of Holding",
			"Cloak of Protection", "Ring of Warmth", "Boots of Elvenkind",
			"Wand of Magic Detection", "Gloves of Swimming and Climbing",
		},
	}
}
