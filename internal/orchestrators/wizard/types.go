package wizard

import (
	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/allocation"
)

// AllocationView is the allocation bookkeeping as a client needs it.
type AllocationView struct {
	Method          dnd5e.AllocationMethod
	PointsSpent     int
	RemainingPoints int
	Assigned        map[dnd5e.Ability]int
	Violations      []allocation.Violation
}

// StartSessionInput defines the request for a new wizard session
type StartSessionInput struct {
	// Method is the initial allocation method; empty means point-buy.
	Method dnd5e.AllocationMethod
}

// StartSessionOutput defines the response for a new wizard session
type StartSessionOutput struct {
	Session    *entities.WizardSession
	Allocation *AllocationView
}

// GetSessionInput defines the request for a session snapshot
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for a session snapshot
type GetSessionOutput struct {
	Session    *entities.WizardSession
	Allocation *AllocationView
}

// UpdateCharacterInput defines the request for merging changes into the character
type UpdateCharacterInput struct {
	SessionID string
	Update    *dnd5e.CharacterUpdate
}

// UpdateCharacterOutput defines the response for a merge
type UpdateCharacterOutput struct {
	Session *entities.WizardSession
}

// NavigateInput defines the request for moving through the wizard
type NavigateInput struct {
	SessionID string
	Action    NavigateAction
}

// NavigateOutput defines the response for a move
type NavigateOutput struct {
	Session *entities.WizardSession
	// CanceledGenerations is how many in-flight generations the move
	// superseded.
	CanceledGenerations int
}

// StartOverInput defines the request for resetting a session
type StartOverInput struct {
	SessionID string
}

// StartOverOutput defines the response for a reset
type StartOverOutput struct {
	Session    *entities.WizardSession
	Allocation *AllocationView
}

// SetAllocationMethodInput defines the request for switching allocation method
type SetAllocationMethodInput struct {
	SessionID string
	Method    dnd5e.AllocationMethod
	// ResetScores replaces the scores with the method's starting values:
	// all 8 for point-buy, all 10 otherwise.
	ResetScores bool
}

// SetAllocationMethodOutput defines the response for a method switch
type SetAllocationMethodOutput struct {
	Session    *entities.WizardSession
	Allocation *AllocationView
}

// SetAbilityScoreInput defines the request for setting one ability
type SetAbilityScoreInput struct {
	SessionID string
	Ability   dnd5e.Ability
	Value     int
}

// SetAbilityScoreOutput defines the response for setting one ability.
// Applied is false when the allocator rejected the value; nothing changed.
type SetAbilityScoreOutput struct {
	Applied    bool
	Session    *entities.WizardSession
	Allocation *AllocationView
}

// RollAbilityScoresInput defines the request for rolling or auto-assigning
type RollAbilityScoresInput struct {
	SessionID string
	// Ability limits a roll to one ability; empty rolls them all.
	Ability dnd5e.Ability
}

// RollAbilityScoresOutput defines the response for rolling or auto-assigning
type RollAbilityScoresOutput struct {
	Applied    bool
	Session    *entities.WizardSession
	Allocation *AllocationView
}

// GenerateCharacterInput defines the request for full character generation
type GenerateCharacterInput struct {
	SessionID string
	Seeds     Seeds
}

// GenerateCharacterOutput defines the response for full character generation
type GenerateCharacterOutput struct {
	Session  *entities.WizardSession
	Warnings []string
}

// GenerateBackstoryInput defines the request for backstory generation
type GenerateBackstoryInput struct {
	SessionID string
}

// GenerateBackstoryOutput defines the response for backstory generation
type GenerateBackstoryOutput struct {
	Session   *entities.WizardSession
	Backstory string
}

// RaceReference describes one race.
type RaceReference struct {
	Race        dnd5e.Race
	Description string
	Traits      []string
	Speed       int
	// Languages is only filled when reference lookups are enabled.
	Languages []string
}

// ClassReference describes one class.
type ClassReference struct {
	Class            dnd5e.Class
	Description      string
	PrimaryAbilities []string
	Proficiencies    []string
	HitDie           int
	// SavingThrows is only filled when reference lookups are enabled.
	SavingThrows []string
}

// BackgroundReference describes one background.
type BackgroundReference struct {
	Background  dnd5e.Background
	Description string
}

// GetReferenceInput defines the request for the reference catalog
type GetReferenceInput struct {
	// SessionID, when set, fills RecommendedAbilities for the session's
	// class.
	SessionID string
}

// GetReferenceOutput defines the reference catalog
type GetReferenceOutput struct {
	Races                []RaceReference
	Classes              []ClassReference
	Backgrounds          []BackgroundReference
	Alignments           []dnd5e.Alignment
	EquipmentSuggestions map[string][]string
	RecommendedAbilities string
}

// StatusInput defines the request for service status
type StatusInput struct{}

// StatusOutput reports whether generation is available
type StatusOutput struct {
	AIEnabled bool
	Model     string
}
