// Package entities provides core data structures for character-forge.
package entities

import (
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
)

// WizardStep is an ordinal position in the creation wizard.
type WizardStep int

// Wizard steps, in order
const (
	StepRace WizardStep = iota
	StepClass
	StepAbilityScores
	StepBackground
	StepDetails
	StepEquipment
	StepReview
	StepComplete
)

var stepNames = []string{
	"race", "class", "ability_scores", "background",
	"details", "equipment", "review", "complete",
}

// String returns the wire name of the step.
func (s WizardStep) String() string {
	if s < StepRace || s > StepComplete {
		return "unknown"
	}
	return stepNames[s]
}

// Valid reports whether s is one of the eight steps.
func (s WizardStep) Valid() bool {
	return s >= StepRace && s <= StepComplete
}

// ParseWizardStep maps a wire name back to a step.
func ParseWizardStep(name string) (WizardStep, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stepNames {
		if n == name {
			return WizardStep(i), true
		}
	}
	return 0, false
}

// WizardSession is everything persisted for one character being built.
type WizardSession struct {
	ID         string                 `json:"id"`
	Step       WizardStep             `json:"step"`
	Character  *dnd5e.Character       `json:"character"`
	Allocation *dnd5e.AllocationState `json:"allocation"`
	// Generated is set once full generation has populated the character,
	// which unlocks the jump to review.
	Generated bool `json:"generated"`
	// LastError holds the most recent upstream failure message. It is
	// cleared by the next successful action.
	LastError string    `json:"lastError,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Clone returns a deep copy of the session.
func (s *WizardSession) Clone() *WizardSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Character = s.Character.Clone()
	out.Allocation = s.Allocation.Clone()
	return &out
}
