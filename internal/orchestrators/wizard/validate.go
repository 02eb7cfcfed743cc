package wizard

import (
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/allocation"
)

// validateUpdate checks a user-supplied update before it reaches the
// record. Scores under point-buy must also be a legal spread.
func validateUpdate(u *dnd5e.CharacterUpdate, method allocation.Method) error {
	vb := errors.NewValidationBuilder()

	if u.Race != nil {
		errors.ValidateEnum("race", string(*u.Race), names(dnd5e.Races), vb)
	}
	if u.Class != nil {
		errors.ValidateEnum("class", string(*u.Class), names(dnd5e.Classes), vb)
	}
	if u.Background != nil {
		errors.ValidateEnum("background", string(*u.Background), names(dnd5e.Backgrounds), vb)
	}
	if u.Alignment != nil {
		errors.ValidateEnum("alignment", string(*u.Alignment), names(dnd5e.Alignments), vb)
	}
	if u.Level != nil {
		errors.ValidateRange("level", *u.Level, dnd5e.MinLevel, dnd5e.MaxLevel, vb)
	}
	if u.Experience != nil && *u.Experience < 0 {
		vb.InvalidField("experience", "must not be negative")
	}
	if u.ArmorClass != nil && *u.ArmorClass < 0 {
		vb.InvalidField("armorClass", "must not be negative")
	}
	if u.Speed != nil && *u.Speed < 0 {
		vb.InvalidField("speed", "must not be negative")
	}
	if u.HitPoints != nil && (u.HitPoints.Current < 0 || u.HitPoints.Maximum < 0) {
		vb.InvalidField("hitPoints", "must not be negative")
	}

	switch {
	case u.AbilityScores == nil:
	case method == allocation.MethodPointBuy:
		allocation.ValidatePointBuy("abilityScores", *u.AbilityScores, vb)
	default:
		for _, ability := range dnd5e.Abilities {
			errors.ValidateRange("abilityScores."+string(ability), u.AbilityScores.Get(ability),
				dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore, vb)
		}
	}

	return vb.Build()
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
