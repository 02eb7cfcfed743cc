package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/allocation"
)

// Session is the wire form of a wizard session.
type Session struct {
	ID        string           `json:"id"`
	Step      string           `json:"step"`
	Character *dnd5e.Character `json:"character"`
	Generated bool             `json:"generated"`
	LastError string           `json:"lastError,omitempty"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

// Allocation is the wire form of the allocation bookkeeping.
type Allocation struct {
	Method          string                 `json:"method"`
	PointsSpent     int                    `json:"pointsSpent"`
	RemainingPoints int                    `json:"remainingPoints"`
	Assigned        map[string]int         `json:"assigned,omitempty"`
	Violations      []allocation.Violation `json:"violations,omitempty"`
}

// StartSessionRequest starts a wizard session.
type StartSessionRequest struct {
	Method string `json:"method,omitempty"`
}

// SessionResponse is returned by every call that hands back the session.
type SessionResponse struct {
	Session    *Session    `json:"session"`
	Allocation *Allocation `json:"allocation,omitempty"`
}

// GetSessionRequest fetches a session snapshot.
type GetSessionRequest struct {
	SessionID string `json:"sessionId"`
}

// UpdateCharacterRequest merges changes into the character.
type UpdateCharacterRequest struct {
	SessionID string                 `json:"sessionId"`
	Update    *dnd5e.CharacterUpdate `json:"update"`
}

// NavigateRequest moves through the wizard.
type NavigateRequest struct {
	SessionID string `json:"sessionId"`
	Action    string `json:"action"`
}

// NavigateResponse reports the new position.
type NavigateResponse struct {
	Session             *Session `json:"session"`
	CanceledGenerations int      `json:"canceledGenerations,omitempty"`
}

// StartOverRequest resets a session.
type StartOverRequest struct {
	SessionID string `json:"sessionId"`
}

// SetAllocationMethodRequest switches the allocation method.
type SetAllocationMethodRequest struct {
	SessionID   string `json:"sessionId"`
	Method      string `json:"method"`
	ResetScores bool   `json:"resetScores,omitempty"`
}

// SetAbilityScoreRequest sets or assigns one ability.
type SetAbilityScoreRequest struct {
	SessionID string `json:"sessionId"`
	Ability   string `json:"ability"`
	Value     int    `json:"value"`
}

// RollAbilityScoresRequest rolls scores or auto-assigns the standard array.
type RollAbilityScoresRequest struct {
	SessionID string `json:"sessionId"`
	Ability   string `json:"ability,omitempty"`
}

// ApplyResponse is SessionResponse plus whether the change took.
type ApplyResponse struct {
	Applied    bool        `json:"applied"`
	Session    *Session    `json:"session"`
	Allocation *Allocation `json:"allocation,omitempty"`
}

// GenerateCharacterRequest asks for a full generated character. Every
// seed is optional.
type GenerateCharacterRequest struct {
	SessionID  string `json:"sessionId"`
	Name       string `json:"name,omitempty"`
	Race       string `json:"race,omitempty"`
	Class      string `json:"class,omitempty"`
	Level      int    `json:"level,omitempty"`
	Background string `json:"background,omitempty"`
	Alignment  string `json:"alignment,omitempty"`
}

// GenerateCharacterResponse carries the merged session.
type GenerateCharacterResponse struct {
	Session  *Session `json:"session"`
	Warnings []string `json:"warnings,omitempty"`
}

// GenerateBackstoryRequest asks for a backstory.
type GenerateBackstoryRequest struct {
	SessionID string `json:"sessionId"`
}

// GenerateBackstoryResponse carries the merged session and the text.
type GenerateBackstoryResponse struct {
	Session   *Session `json:"session"`
	Backstory string   `json:"backstory"`
}

// GetReferenceRequest fetches the reference catalog.
type GetReferenceRequest struct {
	SessionID string `json:"sessionId,omitempty"`
}

// RaceInfo describes one race.
type RaceInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Speed       int      `json:"speed"`
	Languages   []string `json:"languages,omitempty"`
}

// ClassInfo describes one class.
type ClassInfo struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	PrimaryAbilities []string `json:"primaryAbilities"`
	Proficiencies    []string `json:"proficiencies"`
	HitDie           int      `json:"hitDie"`
	SavingThrows     []string `json:"savingThrows,omitempty"`
}

// BackgroundInfo describes one background.
type BackgroundInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetReferenceResponse is the reference catalog.
type GetReferenceResponse struct {
	Races                []RaceInfo          `json:"races"`
	Classes              []ClassInfo         `json:"classes"`
	Backgrounds          []BackgroundInfo    `json:"backgrounds"`
	Alignments           []string            `json:"alignments"`
	EquipmentSuggestions map[string][]string `json:"equipmentSuggestions"`
	RecommendedAbilities string              `json:"recommendedAbilities,omitempty"`
}

// RollDiceRequest rolls a die or a notation such as 2d6+3.
type RollDiceRequest struct {
	SessionID string `json:"sessionId"`
	Notation  string `json:"notation"`
}

// RollDiceResponse carries the committed roll, the animation frames shown
// before it and the session's recent history.
type RollDiceResponse struct {
	Roll    entities.DiceRoll   `json:"roll"`
	Frames  []int               `json:"frames"`
	History []entities.DiceRoll `json:"history"`
}

// DiceHistoryRequest addresses a session's dice history.
type DiceHistoryRequest struct {
	SessionID string `json:"sessionId"`
}

// GetDiceHistoryResponse lists recent rolls, newest first.
type GetDiceHistoryResponse struct {
	Rolls []entities.DiceRoll `json:"rolls"`
}

// ClearDiceHistoryResponse reports how many rolls were dropped.
type ClearDiceHistoryResponse struct {
	RollsDeleted int `json:"rollsDeleted"`
}

// ExportCharacterSheetRequest renders the session's character.
type ExportCharacterSheetRequest struct {
	SessionID string `json:"sessionId"`
}

// ExportCharacterSheetResponse carries the PDF.
type ExportCharacterSheetResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"content"`
}

// StatusRequest asks for service status.
type StatusRequest struct{}

// StatusResponse reports whether generation is available.
type StatusResponse struct {
	AIEnabled bool   `json:"aiEnabled"`
	Model     string `json:"model,omitempty"`
}
