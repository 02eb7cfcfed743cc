package dice

import (
	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
)

// TickFunc receives each intermediate value of an animated roll.
type TickFunc func(frame, value int)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	SessionID string
	// Notation is either a bare die ("d20") or a full expression ("2d6+3").
	Notation string
	// OnTick, when set, is called for every intermediate value before the
	// final one is committed.
	OnTick TickFunc
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll entities.DiceRoll
	// Frames are the intermediate values shown before the commit.
	Frames []int
	// History is newest first and includes Roll.
	History []entities.DiceRoll
}

// GetHistoryInput defines the request for a session's recent rolls
type GetHistoryInput struct {
	SessionID string
}

// GetHistoryOutput defines the response for a session's recent rolls
type GetHistoryOutput struct {
	Rolls []entities.DiceRoll
}

// ClearHistoryInput defines the request for dropping a session's rolls
type ClearHistoryInput struct {
	SessionID string
}

// ClearHistoryOutput defines the response for dropping a session's rolls
type ClearHistoryOutput struct {
	RollsDeleted int
}
