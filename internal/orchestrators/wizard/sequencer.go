package wizard

import (
	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
)

// NavigateAction is a move through the wizard.
type NavigateAction string

// Navigation actions
const (
	ActionNext     NavigateAction = "next"
	ActionPrevious NavigateAction = "previous"
	ActionReview   NavigateAction = "review"
	ActionComplete NavigateAction = "complete"
)

// Next advances one step and stays at Complete.
func Next(step entities.WizardStep) entities.WizardStep {
	if step >= entities.StepComplete {
		return entities.StepComplete
	}
	return step + 1
}

// Previous goes back one step and stays at Race.
func Previous(step entities.WizardStep) entities.WizardStep {
	if step <= entities.StepRace {
		return entities.StepRace
	}
	return step - 1
}

// JumpToReview moves straight to Review once generation has filled the
// character.
func JumpToReview(step entities.WizardStep, generated bool) (entities.WizardStep, error) {
	if !generated {
		return step, errors.FailedPrecondition("review is available after the character has been generated")
	}
	return entities.StepReview, nil
}

// Complete finishes the wizard; only Review can complete.
func Complete(step entities.WizardStep) (entities.WizardStep, error) {
	if step != entities.StepReview {
		return step, errors.FailedPreconditionf("cannot complete from step %s", step)
	}
	return entities.StepComplete, nil
}

// Move applies action to step.
func Move(step entities.WizardStep, action NavigateAction, generated bool) (entities.WizardStep, error) {
	switch action {
	case ActionNext:
		return Next(step), nil
	case ActionPrevious:
		return Previous(step), nil
	case ActionReview:
		return JumpToReview(step, generated)
	case ActionComplete:
		return Complete(step)
	default:
		return step, errors.InvalidArgumentf("unknown navigation action: %s", action)
	}
}
