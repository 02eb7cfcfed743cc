package wizard

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/rules"
)

// GetReference returns the race, class, background and equipment catalog.
// When reference lookups are enabled, languages and saving throws are
// added; lookup failures only cost those extras.
func (o *orchestrator) GetReference(ctx context.Context, input *GetReferenceInput) (*GetReferenceOutput, error) {
	out := &GetReferenceOutput{
		Races:                make([]RaceReference, 0, len(dnd5e.Races)),
		Classes:              make([]ClassReference, 0, len(dnd5e.Classes)),
		Backgrounds:          make([]BackgroundReference, 0, len(dnd5e.Backgrounds)),
		Alignments:           append([]dnd5e.Alignment(nil), dnd5e.Alignments...),
		EquipmentSuggestions: rules.EquipmentSuggestions(),
	}

	for _, race := range dnd5e.Races {
		ref := RaceReference{
			Race:        race,
			Description: rules.RaceDescription(race),
			Traits:      rules.RaceTraits(race),
			Speed:       rules.Speed(race),
		}
		if o.external != nil {
			data, err := o.external.GetRaceData(ctx, race)
			if err != nil {
				slog.Warn("race reference lookup failed", "race", race, "error", err)
			} else {
				ref.Languages = data.Languages
			}
		}
		out.Races = append(out.Races, ref)
	}

	for _, class := range dnd5e.Classes {
		ref := ClassReference{
			Class:            class,
			Description:      rules.ClassDescription(class),
			PrimaryAbilities: rules.PrimaryAbilities(class),
			Proficiencies:    rules.ClassProficiencies(class),
			HitDie:           rules.HitDie(class),
		}
		if o.external != nil {
			data, err := o.external.GetClassData(ctx, class)
			if err != nil {
				slog.Warn("class reference lookup failed", "class", class, "error", err)
			} else {
				ref.SavingThrows = data.SavingThrows
			}
		}
		out.Classes = append(out.Classes, ref)
	}

	for _, background := range dnd5e.Backgrounds {
		out.Backgrounds = append(out.Backgrounds, BackgroundReference{
			Background:  background,
			Description: rules.BackgroundDescription(background),
		})
	}

	if input != nil && input.SessionID != "" {
		session, err := o.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
		if err != nil {
			return nil, err
		}
		out.RecommendedAbilities = rules.RecommendedAbilities(session.Session.Character.Class)
	}

	return out, nil
}
