package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/wizard"
)

func TestNextAndPreviousClamp(t *testing.T) {
	assert.Equal(t, entities.StepClass, wizard.Next(entities.StepRace))
	assert.Equal(t, entities.StepComplete, wizard.Next(entities.StepReview))
	assert.Equal(t, entities.StepComplete, wizard.Next(entities.StepComplete))

	assert.Equal(t, entities.StepRace, wizard.Previous(entities.StepRace))
	assert.Equal(t, entities.StepReview, wizard.Previous(entities.StepComplete))
}

func TestWalkForwardVisitsEveryStep(t *testing.T) {
	step := entities.StepRace
	visited := []string{step.String()}
	for step != entities.StepComplete {
		step = wizard.Next(step)
		visited = append(visited, step.String())
	}

	assert.Equal(t, []string{
		"race", "class", "ability_scores", "background",
		"details", "equipment", "review", "complete",
	}, visited)
}

func TestJumpToReview(t *testing.T) {
	step, err := wizard.JumpToReview(entities.StepClass, false)
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Equal(t, entities.StepClass, step)

	step, err = wizard.JumpToReview(entities.StepClass, true)
	require.NoError(t, err)
	assert.Equal(t, entities.StepReview, step)
}

func TestComplete(t *testing.T) {
	for _, from := range []entities.WizardStep{entities.StepRace, entities.StepEquipment, entities.StepComplete} {
		_, err := wizard.Complete(from)
		assert.True(t, errors.IsFailedPrecondition(err), "from %s", from)
	}

	step, err := wizard.Complete(entities.StepReview)
	require.NoError(t, err)
	assert.Equal(t, entities.StepComplete, step)
}

func TestMoveRejectsUnknownAction(t *testing.T) {
	_, err := wizard.Move(entities.StepRace, "sideways", false)
	assert.True(t, errors.IsInvalidArgument(err))
}
