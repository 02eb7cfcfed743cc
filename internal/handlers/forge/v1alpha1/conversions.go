package v1alpha1

import (
	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/wizard"
)

func toSession(s *entities.WizardSession) *Session {
	if s == nil {
		return nil
	}

	return &Session{
		ID:        s.ID,
		Step:      s.Step.String(),
		Character: s.Character,
		Generated: s.Generated,
		LastError: s.LastError,
		ExpiresAt: s.ExpiresAt,
	}
}

func toAllocation(v *wizard.AllocationView) *Allocation {
	if v == nil {
		return nil
	}

	out := &Allocation{
		Method:          string(v.Method),
		PointsSpent:     v.PointsSpent,
		RemainingPoints: v.RemainingPoints,
		Violations:      v.Violations,
	}
	if len(v.Assigned) > 0 {
		out.Assigned = make(map[string]int, len(v.Assigned))
		for ability, value := range v.Assigned {
			out.Assigned[string(ability)] = value
		}
	}
	return out
}

func toReference(out *wizard.GetReferenceOutput) *GetReferenceResponse {
	resp := &GetReferenceResponse{
		Races:                make([]RaceInfo, 0, len(out.Races)),
		Classes:              make([]ClassInfo, 0, len(out.Classes)),
		Backgrounds:          make([]BackgroundInfo, 0, len(out.Backgrounds)),
		Alignments:           make([]string, 0, len(out.Alignments)),
		EquipmentSuggestions: out.EquipmentSuggestions,
		RecommendedAbilities: out.RecommendedAbilities,
	}

	for _, r := range out.Races {
		resp.Races = append(resp.Races, RaceInfo{
			Name:        string(r.Race),
			Description: r.Description,
			Traits:      r.Traits,
			Speed:       r.Speed,
			Languages:   r.Languages,
		})
	}
	for _, c := range out.Classes {
		resp.Classes = append(resp.Classes, ClassInfo{
			Name:             string(c.Class),
			Description:      c.Description,
			PrimaryAbilities: c.PrimaryAbilities,
			Proficiencies:    c.Proficiencies,
			HitDie:           c.HitDie,
			SavingThrows:     c.SavingThrows,
		})
	}
	for _, b := range out.Backgrounds {
		resp.Backgrounds = append(resp.Backgrounds, BackgroundInfo{
			Name:        string(b.Background),
			Description: b.Description,
		})
	}
	for _, a := range out.Alignments {
		resp.Alignments = append(resp.Alignments, string(a))
	}

	return resp
}
