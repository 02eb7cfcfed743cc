package record

import (
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/rules"
)

// Apply merges u into a copy of c. Only fields set on u change. When u
// touches ability scores, race or class, every derived combat stat that u
// does not set itself is recomputed from the merged values.
func Apply(c *dnd5e.Character, u *dnd5e.CharacterUpdate) *dnd5e.Character {
	out := c.Clone()
	if u.IsEmpty() {
		return out
	}

	setIf(&out.ID, u.ID)
	setIf(&out.Name, u.Name)
	setIf(&out.Race, u.Race)
	setIf(&out.Class, u.Class)
	setIf(&out.Level, u.Level)
	setIf(&out.Background, u.Background)
	setIf(&out.Alignment, u.Alignment)
	setIf(&out.Experience, u.Experience)
	setIf(&out.AbilityScores, u.AbilityScores)
	setIf(&out.ArmorClass, u.ArmorClass)
	setIf(&out.Speed, u.Speed)
	setIf(&out.Initiative, u.Initiative)
	setIf(&out.PersonalityTraits, u.PersonalityTraits)
	setIf(&out.Ideals, u.Ideals)
	setIf(&out.Bonds, u.Bonds)
	setIf(&out.Flaws, u.Flaws)
	setIf(&out.Backstory, u.Backstory)
	setIf(&out.Appearance, u.Appearance)
	if u.HitPoints != nil {
		out.HitPoints = u.HitPoints.Clamp()
	}

	if u.Equipment != nil {
		out.Equipment = append([]dnd5e.EquipmentItem{}, u.Equipment...)
	}
	if u.Features != nil {
		out.Features = append([]dnd5e.Feature{}, u.Features...)
	}
	if u.Proficiencies != nil {
		out.Proficiencies = append([]string{}, u.Proficiencies...)
	}
	if u.Languages != nil {
		out.Languages = append([]string{}, u.Languages...)
	}
	if u.Spells != nil {
		out.Spells = append([]dnd5e.Spell{}, u.Spells...)
	}

	if u.TouchesDerivationInputs() {
		stats := rules.Derive(out.AbilityScores, out.Race, out.Class)
		if u.HitPoints == nil {
			out.HitPoints = stats.HitPoints
		}
		if u.ArmorClass == nil {
			out.ArmorClass = stats.ArmorClass
		}
		if u.Initiative == nil {
			out.Initiative = stats.Initiative
		}
		if u.Speed == nil {
			out.Speed = stats.Speed
		}
	}

	return out
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
